package console

import (
	"context"
	"strings"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
)

func (c *Console) prescriptionMenu() bool {
	for {
		c.printf("\n--- Exams and Medications ---\n")
		c.printf("1. Record exam\n")
		c.printf("2. List exams\n")
		c.printf("3. Update exam\n")
		c.printf("4. Remove exam\n")
		c.printf("5. Record medication\n")
		c.printf("6. List medications\n")
		c.printf("7. Update medication\n")
		c.printf("8. Remove medication\n")
		c.printf("9. Back\n")

		choice, ok := c.promptInt("Select an option: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			if !c.recordExam() {
				return false
			}
		case 2:
			c.listExams()
		case 3:
			if !c.updateExam() {
				return false
			}
		case 4:
			if !c.removeExam() {
				return false
			}
		case 5:
			if !c.recordMedication() {
				return false
			}
		case 6:
			c.listMedications()
		case 7:
			if !c.updateMedication() {
				return false
			}
		case 8:
			if !c.removeMedication() {
				return false
			}
		case 9:
			return true
		default:
			c.printf("Invalid option, try again.\n")
		}
	}
}

func (c *Console) promptExamType(prompt string) (string, bool) {
	for {
		line, ok := c.promptNonEmpty(prompt)
		if !ok {
			return "", false
		}
		// Case-insensitive on input, like the status token.
		if !entity.ExamType(strings.ToUpper(line)).IsValid() {
			c.printf("Invalid exam type, use SANGUE, RAIO_X or ULTRASSOM.\n")
			continue
		}
		return line, true
	}
}

func (c *Console) recordExam() bool {
	examType, ok := c.promptExamType("Type (SANGUE/RAIO_X/ULTRASSOM): ")
	if !ok {
		return false
	}
	prescriptionDate, ok := c.promptDate("Prescription date (DD-MM-YYYY): ")
	if !ok {
		return false
	}
	performedDate, ok := c.promptDate("Performed date (DD-MM-YYYY): ")
	if !ok {
		return false
	}
	result, ok := c.promptNonEmpty("Result: ")
	if !ok {
		return false
	}
	cost, ok := c.promptDecimal("Cost: ")
	if !ok {
		return false
	}

	exam, err := c.exams.Create(context.Background(), &dto.CreateExamRequest{
		Type:             examType,
		PrescriptionDate: prescriptionDate,
		PerformedDate:    performedDate,
		Result:           result,
		Cost:             cost,
	})
	if err != nil {
		c.printf("Could not record exam: %v\n", err)
		return true
	}
	c.printf("Exam %s recorded.\n", exam.Type)
	return true
}

func (c *Console) listExams() {
	exams := c.exams.List(context.Background())
	if len(exams) == 0 {
		c.printf("No exams recorded.\n")
		return
	}
	for i, e := range exams {
		c.printf("%d. %s | prescribed %s | performed %s | %s | cost %s\n",
			i, e.Type,
			e.PrescriptionDate.Format(entity.DateLayout),
			e.PerformedDate.Format(entity.DateLayout),
			e.Result, e.Cost.StringFixed(2))
	}
}

func (c *Console) updateExam() bool {
	index, ok := c.promptInt("Exam number: ")
	if !ok {
		return false
	}
	c.printf("Leave a field blank to keep the current value.\n")

	examType, ok := c.readLine("Type (SANGUE/RAIO_X/ULTRASSOM): ")
	if !ok {
		return false
	}
	prescriptionDate, ok := c.readLine("Prescription date (DD-MM-YYYY): ")
	if !ok {
		return false
	}
	performedDate, ok := c.readLine("Performed date (DD-MM-YYYY): ")
	if !ok {
		return false
	}
	result, ok := c.readLine("Result: ")
	if !ok {
		return false
	}

	updated, err := c.exams.Update(context.Background(), index, &dto.UpdateExamRequest{
		Type:             examType,
		PrescriptionDate: prescriptionDate,
		PerformedDate:    performedDate,
		Result:           result,
	})
	if err != nil {
		c.printf("Could not update exam: %v\n", err)
		return true
	}
	c.printf("Exam %s updated.\n", updated.Type)
	return true
}

func (c *Console) removeExam() bool {
	index, ok := c.promptInt("Exam number: ")
	if !ok {
		return false
	}
	if err := c.exams.Remove(context.Background(), index); err != nil {
		c.printf("Could not remove exam: %v\n", err)
		return true
	}
	c.printf("Exam removed.\n")
	return true
}

func (c *Console) recordMedication() bool {
	name, ok := c.promptNonEmpty("Name: ")
	if !ok {
		return false
	}
	dosage, ok := c.promptNonEmpty("Dosage: ")
	if !ok {
		return false
	}
	instructions, ok := c.promptNonEmpty("Instructions: ")
	if !ok {
		return false
	}
	price, ok := c.promptDecimal("Price: ")
	if !ok {
		return false
	}

	medication, err := c.medications.Create(context.Background(), &dto.CreateMedicationRequest{
		Name:         name,
		Dosage:       dosage,
		Instructions: instructions,
		Price:        price,
	})
	if err != nil {
		c.printf("Could not record medication: %v\n", err)
		return true
	}
	c.printf("Medication %s recorded.\n", medication.Name)
	return true
}

func (c *Console) listMedications() {
	medications := c.medications.List(context.Background())
	if len(medications) == 0 {
		c.printf("No medications recorded.\n")
		return
	}
	for i, m := range medications {
		c.printf("%d. %s %s | %s | price %s\n", i, m.Name, m.Dosage, m.Instructions, m.Price.StringFixed(2))
	}
}

func (c *Console) updateMedication() bool {
	index, ok := c.promptInt("Medication number: ")
	if !ok {
		return false
	}
	c.printf("Leave a field blank to keep the current value.\n")

	name, ok := c.readLine("Name: ")
	if !ok {
		return false
	}
	dosage, ok := c.readLine("Dosage: ")
	if !ok {
		return false
	}
	instructions, ok := c.readLine("Instructions: ")
	if !ok {
		return false
	}

	updated, err := c.medications.Update(context.Background(), index, &dto.UpdateMedicationRequest{
		Name:         name,
		Dosage:       dosage,
		Instructions: instructions,
	})
	if err != nil {
		c.printf("Could not update medication: %v\n", err)
		return true
	}
	c.printf("Medication %s updated.\n", updated.Name)
	return true
}

func (c *Console) removeMedication() bool {
	index, ok := c.promptInt("Medication number: ")
	if !ok {
		return false
	}
	if err := c.medications.Remove(context.Background(), index); err != nil {
		c.printf("Could not remove medication: %v\n", err)
		return true
	}
	c.printf("Medication removed.\n")
	return true
}
