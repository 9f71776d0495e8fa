package domain

// Staff models an employee record of a blood bank.
type Staff struct {
	ID          int64
	BloodBankID int64
	AddressID   int64
	Category    string
	Gender      string
	JobTitle    string
	Name        string
	Birthdate   string
}
