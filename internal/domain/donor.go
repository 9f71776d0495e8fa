package domain

// Donor models a blood donor. The entity is part of the schema but has
// no exposed operations.
type Donor struct {
	ID                    int64
	Gender                string
	Birthdate             string
	Name                  string
	Contact               string
	BloodBankID           int64
	MedicationsCode       int64
	MedicalConditionsCode int64
}
