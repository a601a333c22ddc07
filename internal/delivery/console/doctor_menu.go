package console

import (
	"context"

	"clinic-scheduling/internal/delivery/dto"
)

func (c *Console) doctorMenu() bool {
	for {
		c.printf("\n--- Doctors ---\n")
		c.printf("1. Register doctor\n")
		c.printf("2. List doctors\n")
		c.printf("3. Update doctor\n")
		c.printf("4. Remove doctor\n")
		c.printf("5. Back\n")

		choice, ok := c.promptInt("Select an option: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			if !c.registerDoctor() {
				return false
			}
		case 2:
			c.listDoctors()
		case 3:
			if !c.updateDoctor() {
				return false
			}
		case 4:
			if !c.removeDoctor() {
				return false
			}
		case 5:
			return true
		default:
			c.printf("Invalid option, try again.\n")
		}
	}
}

func (c *Console) registerDoctor() bool {
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
	license, ok := c.promptNonEmpty("License number: ")
	if !ok {
		return false
	}
	specialty, ok := c.promptNonEmpty("Specialty: ")
	if !ok {
		return false
	}

	doctor, err := c.doctors.Register(context.Background(), &dto.RegisterDoctorRequest{
		Name:       name,
		NationalID: nationalID,
		BirthDate:  birthDate,
		License:    license,
		Specialty:  specialty,
	})
	if err != nil {
		c.printf("Could not register doctor: %v\n", err)
		return true
	}
	c.printf("Doctor %s registered with license %s.\n", doctor.Identity.Name, doctor.License)
	return true
}

func (c *Console) listDoctors() {
	doctors := c.doctors.List(context.Background())
	if len(doctors) == 0 {
		c.printf("No doctors registered.\n")
		return
	}
	for _, d := range doctors {
		c.printf("- %s | license %s | %s\n", d.Identity.Name, d.License, d.Specialty)
	}
}

func (c *Console) updateDoctor() bool {
	license, ok := c.promptNonEmpty("Doctor license: ")
	if !ok {
		return false
	}
	current, err := c.doctors.GetByLicense(context.Background(), license)
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
	newLicense, ok := c.readLine("License number: ")
	if !ok {
		return false
	}
	specialty, ok := c.readLine("Specialty: ")
	if !ok {
		return false
	}

	updated, err := c.doctors.Update(context.Background(), license, &dto.UpdateDoctorRequest{
		Name:       name,
		NationalID: nationalID,
		BirthDate:  birthDate,
		License:    newLicense,
		Specialty:  specialty,
	})
	if err != nil {
		c.printf("Could not update doctor: %v\n", err)
		return true
	}
	c.printf("Doctor %s updated.\n", updated.Identity.Name)
	return true
}

func (c *Console) removeDoctor() bool {
	license, ok := c.promptNonEmpty("Doctor license: ")
	if !ok {
		return false
	}
	if err := c.doctors.Remove(context.Background(), license); err != nil {
		c.printf("Could not remove doctor: %v\n", err)
		return true
	}
	c.printf("Doctor removed.\n")
	return true
}
