package http

import (
	"net/http"

	"clinic-scheduling/internal/delivery/http/handler"
	"clinic-scheduling/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	appointmentHandler *handler.AppointmentHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	examHandler        *handler.ExamHandler
	medicationHandler  *handler.MedicationHandler
	paymentHandler     *handler.PaymentHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	examHandler *handler.ExamHandler,
	medicationHandler *handler.MedicationHandler,
	paymentHandler *handler.PaymentHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		appointmentHandler: appointmentHandler,
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		examHandler:        examHandler,
		medicationHandler:  medicationHandler,
		paymentHandler:     paymentHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patient registry
	api.HandleFunc("/patients", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{idKey}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{idKey}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{idKey}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctor registry
	api.HandleFunc("/doctors", r.doctorHandler.RegisterDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{license}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{license}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{license}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Exam catalog
	api.HandleFunc("/exams", r.examHandler.CreateExam).Methods(http.MethodPost)
	api.HandleFunc("/exams", r.examHandler.GetAllExams).Methods(http.MethodGet)
	api.HandleFunc("/exams/{index}", r.examHandler.UpdateExam).Methods(http.MethodPut)
	api.HandleFunc("/exams/{index}", r.examHandler.DeleteExam).Methods(http.MethodDelete)

	// Medication catalog
	api.HandleFunc("/medications", r.medicationHandler.CreateMedication).Methods(http.MethodPost)
	api.HandleFunc("/medications", r.medicationHandler.GetAllMedications).Methods(http.MethodGet)
	api.HandleFunc("/medications/{index}", r.medicationHandler.UpdateMedication).Methods(http.MethodPut)
	api.HandleFunc("/medications/{index}", r.medicationHandler.DeleteMedication).Methods(http.MethodDelete)

	// Scheduler
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{index}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{index}", r.appointmentHandler.RemoveAppointment).Methods(http.MethodDelete)

	// Computed visit histories
	api.HandleFunc("/patients/{idKey}/appointments", r.appointmentHandler.PatientAppointments).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{license}/appointments", r.appointmentHandler.DoctorAppointments).Methods(http.MethodGet)

	// Billing ledger
	api.HandleFunc("/patients/{idKey}/outstanding", r.paymentHandler.GetOutstanding).Methods(http.MethodGet)
	api.HandleFunc("/patients/{idKey}/payments", r.paymentHandler.SettlePayment).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
