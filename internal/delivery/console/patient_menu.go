package console

import (
	"context"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
)

// patientMenu returns false once input ends.
func (c *Console) patientMenu() bool {
	for {
		c.printf("\n--- Patients ---\n")
		c.printf("1. Register patient\n")
		c.printf("2. List patients\n")
		c.printf("3. Update patient\n")
		c.printf("4. Remove patient\n")
		c.printf("5. Back\n")

		choice, ok := c.promptInt("Select an option: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			if !c.registerPatient() {
				return false
			}
		case 2:
			c.listPatients()
		case 3:
			if !c.updatePatient() {
				return false
			}
		case 4:
			if !c.removePatient() {
				return false
			}
		case 5:
			return true
		default:
			c.printf("Invalid option, try again.\n")
		}
	}
}

func (c *Console) registerPatient() bool {
	name, ok := c.promptNonEmpty("Name: ")
	if !ok {
		return false
	}
	nationalID, ok := c.promptNonEmpty("National ID (11 digits): ")
	if !ok {
		return false
	}
	birthDate, ok := c.promptDate("Birth date (DD-MM-YYYY): ")
	if !ok {
		return false
	}

	patient, err := c.patients.Register(context.Background(), &dto.RegisterPatientRequest{
		Name:       name,
		NationalID: nationalID,
		BirthDate:  birthDate,
	})
	if err != nil {
		c.printf("Could not register patient: %v\n", err)
		return true
	}
	c.printf("Patient %s registered with ID %s.\n", patient.Identity.Name, patient.Identity.IDKey)
	return true
}

func (c *Console) listPatients() {
	patients := c.patients.List(context.Background())
	if len(patients) == 0 {
		c.printf("No patients registered.\n")
		return
	}
	for _, p := range patients {
		c.printf("- %s | ID %s | born %s\n", p.Identity.Name, p.Identity.IDKey, p.Identity.BirthDate.Format(entity.DateLayout))
	}
}

func (c *Console) updatePatient() bool {
	idKey, ok := c.promptNonEmpty("Patient national ID: ")
	if !ok {
		return false
	}
	current, err := c.patients.GetByIDKey(context.Background(), idKey)
	if err != nil {
		c.printf("%v\n", err)
		return true
	}
	c.printf("Updating %s. Leave a field blank to keep the current value.\n", current.Identity.Name)

	name, ok := c.readLine("Name: ")
	if !ok {
		return false
	}
	nationalID, ok := c.readLine("National ID: ")
	if !ok {
		return false
	}
	birthDate, ok := c.readLine("Birth date (DD-MM-YYYY): ")
	if !ok {
		return false
	}

	updated, err := c.patients.Update(context.Background(), idKey, &dto.UpdatePatientRequest{
		Name:       name,
		NationalID: nationalID,
		BirthDate:  birthDate,
	})
	if err != nil {
		c.printf("Could not update patient: %v\n", err)
		return true
	}
	c.printf("Patient %s updated.\n", updated.Identity.Name)
	return true
}

func (c *Console) removePatient() bool {
	idKey, ok := c.promptNonEmpty("Patient national ID: ")
	if !ok {
		return false
	}
	if err := c.patients.Remove(context.Background(), idKey); err != nil {
		c.printf("Could not remove patient: %v\n", err)
		return true
	}
	c.printf("Patient removed.\n")
	return true
}
