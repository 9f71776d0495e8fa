package dto

import "github.com/spec-kit/bloodbank-service/internal/domain"

// StaffCreateRequest payload. Pointer fields distinguish absent keys
// from empty values: an empty string is a valid value, a missing key
// is a validation failure.
type StaffCreateRequest struct {
	BloodBankID *int64  `json:"BLOOD_BANKS_id"`
	AddressID   *int64  `json:"ADDRESS_id"`
	Category    *string `json:"category"`
	Gender      *string `json:"gender"`
	JobTitle    *string `json:"job_title"`
	Name        *string `json:"name"`
	Birthdate   *string `json:"birthdate"`
}

// StaffUpdateRequest payload; any subset of the updatable fields.
// The record id is never updatable.
type StaffUpdateRequest struct {
	BloodBankID *int64  `json:"BLOOD_BANKS_id"`
	AddressID   *int64  `json:"ADDRESS_id"`
	Category    *string `json:"category"`
	Gender      *string `json:"gender"`
	JobTitle    *string `json:"job_title"`
	Name        *string `json:"name"`
	Birthdate   *string `json:"birthdate"`
}

// Empty reports whether none of the updatable fields were supplied.
func (r StaffUpdateRequest) Empty() bool {
	return r.BloodBankID == nil &&
		r.AddressID == nil &&
		r.Category == nil &&
		r.Gender == nil &&
		r.JobTitle == nil &&
		r.Name == nil &&
		r.Birthdate == nil
}

// StaffResponse mirrors the persisted column names on the wire.
type StaffResponse struct {
	ID          int64  `json:"id"`
	BloodBankID int64  `json:"BLOOD_BANKS_id"`
	AddressID   int64  `json:"ADDRESS_id"`
	Category    string `json:"category"`
	Gender      string `json:"gender"`
	JobTitle    string `json:"job_title"`
	Name        string `json:"name"`
	Birthdate   string `json:"birthdate"`
}

// NewStaffResponse maps a domain record to its wire shape.
func NewStaffResponse(staff *domain.Staff) StaffResponse {
	return StaffResponse{
		ID:          staff.ID,
		BloodBankID: staff.BloodBankID,
		AddressID:   staff.AddressID,
		Category:    staff.Category,
		Gender:      staff.Gender,
		JobTitle:    staff.JobTitle,
		Name:        staff.Name,
		Birthdate:   staff.Birthdate,
	}
}
