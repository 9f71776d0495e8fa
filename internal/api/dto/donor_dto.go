package dto

import "github.com/spec-kit/bloodbank-service/internal/domain"

// DonorResponse is the wire shape for donor records. Donors expose no
// operations yet; the mapping is kept alongside the staff shapes for
// schema completeness.
type DonorResponse struct {
	ID                    int64  `json:"id"`
	Gender                string `json:"gender"`
	Birthdate             string `json:"birthdate"`
	Name                  string `json:"name"`
	Contact               string `json:"contact"`
	BloodBankID           int64  `json:"BLOOD_BANKS_id"`
	MedicationsCode       int64  `json:"MEDICATIONS_code"`
	MedicalConditionsCode int64  `json:"MEDICAL_CONDITIONS_code"`
}

// NewDonorResponse maps a donor 1:1 onto its wire shape. The medication
// and medical-condition codes map to their own fields.
func NewDonorResponse(donor *domain.Donor) DonorResponse {
	return DonorResponse{
		ID:                    donor.ID,
		Gender:                donor.Gender,
		Birthdate:             donor.Birthdate,
		Name:                  donor.Name,
		Contact:               donor.Contact,
		BloodBankID:           donor.BloodBankID,
		MedicationsCode:       donor.MedicationsCode,
		MedicalConditionsCode: donor.MedicalConditionsCode,
	}
}
