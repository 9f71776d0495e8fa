package dto

import (
	"encoding/json"
	"testing"

	"github.com/spec-kit/bloodbank-service/internal/domain"
)

// The medication and medical-condition codes must serialize
// independently; the two fields are easy to cross-wire.
func TestDonorResponseMapsCodesIndependently(t *testing.T) {
	donor := &domain.Donor{
		ID:                    7,
		Gender:                "Male",
		Birthdate:             "1985-05-15",
		Name:                  "John Smith",
		Contact:               "1234567890",
		BloodBankID:           1,
		MedicationsCode:       2,
		MedicalConditionsCode: 3,
	}

	data, err := json.Marshal(NewDonorResponse(donor))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if wire["MEDICATIONS_code"] != float64(2) {
		t.Fatalf("expected MEDICATIONS_code 2, got %v", wire["MEDICATIONS_code"])
	}
	if wire["MEDICAL_CONDITIONS_code"] != float64(3) {
		t.Fatalf("expected MEDICAL_CONDITIONS_code 3, got %v", wire["MEDICAL_CONDITIONS_code"])
	}
	if wire["BLOOD_BANKS_id"] != float64(1) {
		t.Fatalf("expected BLOOD_BANKS_id 1, got %v", wire["BLOOD_BANKS_id"])
	}
	if wire["contact"] != "1234567890" {
		t.Fatalf("expected contact preserved, got %v", wire["contact"])
	}
}

func TestStaffUpdateRequestEmpty(t *testing.T) {
	var req StaffUpdateRequest
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !req.Empty() {
		t.Fatal("expected empty object to report Empty")
	}

	if err := json.Unmarshal([]byte(`{"gender":""}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Empty() {
		t.Fatal("empty string value is a supplied field")
	}
}
