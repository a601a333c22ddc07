package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-scheduling/config"
	deliveryHttp "clinic-scheduling/internal/delivery/http"
	"clinic-scheduling/internal/delivery/http/handler"
	"clinic-scheduling/internal/delivery/http/middleware"
	"clinic-scheduling/internal/repository"
	"clinic-scheduling/internal/usecase"
	"clinic-scheduling/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Services bundles every usecase over one shared set of in-memory
// collections. All state lives here; construct it once at startup and hand
// it to whichever shell is running.
type Services struct {
	Patients    usecase.PatientUsecase
	Doctors     usecase.DoctorUsecase
	Exams       usecase.ExamUsecase
	Medications usecase.MedicationUsecase
	Scheduler   usecase.SchedulerUsecase
	Payments    usecase.PaymentUsecase
}

// NewServices wires repositories and usecases. The scheduler also serves as
// the payment ledger's visit source so there is exactly one authoritative
// appointment collection.
func NewServices(log *logrus.Logger) *Services {
	patientRegistry := repository.NewPatientRegistry()
	doctorRegistry := repository.NewDoctorRegistry()
	examCatalog := repository.NewExamCatalog()
	medicationCatalog := repository.NewMedicationCatalog()

	scheduler := usecase.NewSchedulerUsecase(log, patientRegistry, doctorRegistry,
		examCatalog, medicationCatalog, usecase.AnyPaymentOnFile)
	visits, _ := scheduler.(usecase.VisitSource)

	return &Services{
		Patients:    usecase.NewPatientUsecase(log, patientRegistry),
		Doctors:     usecase.NewDoctorUsecase(log, doctorRegistry),
		Exams:       usecase.NewExamUsecase(log, examCatalog),
		Medications: usecase.NewMedicationUsecase(log, medicationCatalog),
		Scheduler:   scheduler,
		Payments:    usecase.NewPaymentUsecase(log, patientRegistry, visits),
	}
}

// App holds all dependencies for the HTTP service
type App struct {
	Config   *config.Config
	Log      *logrus.Logger
	Services *Services
	Server   *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := SetupLogger(cfg)
	log.Info("Configuration loaded successfully")

	services := NewServices(log)

	if cfg.App.Env == "development" {
		SeedDemoData(log, services)
	}

	return &App{
		Config:   cfg,
		Log:      log,
		Services: services,
		Server:   initializeServer(cfg, services),
	}, nil
}

// SetupLogger configures the logrus standard logger from the config.
func SetupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, services *Services) *http.Server {
	customValidator := validator.NewValidator()

	appointmentHandler := handler.NewAppointmentHandler(services.Scheduler, customValidator)
	patientHandler := handler.NewPatientHandler(services.Patients, customValidator)
	doctorHandler := handler.NewDoctorHandler(services.Doctors, customValidator)
	examHandler := handler.NewExamHandler(services.Exams, customValidator)
	medicationHandler := handler.NewMedicationHandler(services.Medications, customValidator)
	paymentHandler := handler.NewPaymentHandler(services.Payments, customValidator)

	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(appointmentHandler, patientHandler, doctorHandler,
		examHandler, medicationHandler, paymentHandler, corsMiddleware)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Nothing persists past this point: all collections are in-memory.
	app.Log.Info("Server shutdown complete")
}
