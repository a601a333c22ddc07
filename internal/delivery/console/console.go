// Package console is the interactive text shell: a menu loop over the same
// usecases the HTTP delivery exposes. It owns all prompting and formatting;
// every rule lives in the core.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"clinic-scheduling/internal/domain/entity"
	"clinic-scheduling/internal/usecase"

	"github.com/shopspring/decimal"
)

type Console struct {
	in          *bufio.Scanner
	out         io.Writer
	patients    usecase.PatientUsecase
	doctors     usecase.DoctorUsecase
	exams       usecase.ExamUsecase
	medications usecase.MedicationUsecase
	scheduler   usecase.SchedulerUsecase
	payments    usecase.PaymentUsecase
}

func New(
	in io.Reader,
	out io.Writer,
	patients usecase.PatientUsecase,
	doctors usecase.DoctorUsecase,
	exams usecase.ExamUsecase,
	medications usecase.MedicationUsecase,
	scheduler usecase.SchedulerUsecase,
	payments usecase.PaymentUsecase,
) *Console {
	return &Console{
		in:          bufio.NewScanner(in),
		out:         out,
		patients:    patients,
		doctors:     doctors,
		exams:       exams,
		medications: medications,
		scheduler:   scheduler,
		payments:    payments,
	}
}

// Run drives the top-level menu until the user quits or input ends.
func (c *Console) Run() {
	for {
		c.printf("==========================================\n")
		c.printf(" Clinic Management System\n")
		c.printf("==========================================\n")
		c.printf("1. Manage patients\n")
		c.printf("2. Manage doctors\n")
		c.printf("3. Appointment scheduling\n")
		c.printf("4. Exams and medications\n")
		c.printf("5. Payments\n")
		c.printf("6. Quit\n")

		choice, ok := c.promptInt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			if !c.patientMenu() {
				return
			}
		case 2:
			if !c.doctorMenu() {
				return
			}
		case 3:
			if !c.appointmentMenu() {
				return
			}
		case 4:
			if !c.prescriptionMenu() {
				return
			}
		case 5:
			c.settlePayment()
		case 6:
			c.printf("Goodbye!\n")
			return
		default:
			c.printf("Invalid option, try again.\n")
		}
	}
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// readLine returns the next input line; ok is false once input ends.
func (c *Console) readLine(prompt string) (string, bool) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptInt re-prompts until the user types a number.
func (c *Console) promptInt(prompt string) (int, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			c.printf("Invalid value, enter a number.\n")
			continue
		}
		return value, true
	}
}

// promptNonEmpty re-prompts until the user types something.
func (c *Console) promptNonEmpty(prompt string) (string, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return "", false
		}
		if line == "" {
			c.printf("A value is required.\n")
			continue
		}
		return line, true
	}
}

// promptDate re-prompts until the input parses as DD-MM-YYYY.
func (c *Console) promptDate(prompt string) (string, bool) {
	for {
		line, ok := c.promptNonEmpty(prompt)
		if !ok {
			return "", false
		}
		if _, err := time.Parse(entity.DateLayout, line); err != nil {
			c.printf("Invalid date format, use DD-MM-YYYY.\n")
			continue
		}
		return line, true
	}
}

// promptDecimal re-prompts until the input parses as a number.
func (c *Console) promptDecimal(prompt string) (decimal.Decimal, bool) {
	for {
		line, ok := c.promptNonEmpty(prompt)
		if !ok {
			return decimal.Zero, false
		}
		value, err := decimal.NewFromString(line)
		if err != nil {
			c.printf("Invalid value, enter a number.\n")
			continue
		}
		return value, true
	}
}