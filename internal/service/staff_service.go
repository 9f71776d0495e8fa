package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bloodbank-service/internal/domain"
	"github.com/spec-kit/bloodbank-service/internal/events"
	"github.com/spec-kit/bloodbank-service/internal/repository"
	apperrors "github.com/spec-kit/bloodbank-service/pkg/util"
)

// StaffCreateInput carries the create payload. Pointer fields preserve
// the distinction between an absent key and an empty value.
type StaffCreateInput struct {
	BloodBankID *int64
	AddressID   *int64
	Category    *string
	Gender      *string
	JobTitle    *string
	Name        *string
	Birthdate   *string
}

// StaffUpdateInput carries a partial update; nil fields are left untouched.
type StaffUpdateInput struct {
	BloodBankID *int64
	AddressID   *int64
	Category    *string
	Gender      *string
	JobTitle    *string
	Name        *string
	Birthdate   *string
}

// Empty reports whether no updatable field was supplied.
func (in StaffUpdateInput) Empty() bool {
	return in.BloodBankID == nil &&
		in.AddressID == nil &&
		in.Category == nil &&
		in.Gender == nil &&
		in.JobTitle == nil &&
		in.Name == nil &&
		in.Birthdate == nil
}

// StaffService implements the CRUD contract for staff records.
type StaffService struct {
	staff      repository.StaffRepository
	dispatcher events.Dispatcher
}

// NewStaffService constructs the service.
func NewStaffService(staff repository.StaffRepository, dispatcher events.Dispatcher) *StaffService {
	return &StaffService{staff: staff, dispatcher: dispatcher}
}

// List returns all staff records.
func (s *StaffService) List(ctx context.Context) ([]domain.Staff, error) {
	list, err := s.staff.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return list, nil
}

// Get returns the record with the given id.
func (s *StaffService) Get(ctx context.Context, id int64) (*domain.Staff, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Staff")
		}
		return nil, apperrors.NewInternalError(err)
	}
	return staff, nil
}

// Create validates required fields and persists a new record. The first
// absent field, scanning in the fixed wire order, wins.
func (s *StaffService) Create(ctx context.Context, actor events.Actor, in StaffCreateInput) (*domain.Staff, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"BLOOD_BANKS_id", in.BloodBankID != nil},
		{"ADDRESS_id", in.AddressID != nil},
		{"category", in.Category != nil},
		{"gender", in.Gender != nil},
		{"job_title", in.JobTitle != nil},
		{"name", in.Name != nil},
		{"birthdate", in.Birthdate != nil},
	}
	for _, field := range required {
		if !field.present {
			return nil, apperrors.NewValidationError("Missing field: " + field.name)
		}
	}

	staff := &domain.Staff{
		BloodBankID: *in.BloodBankID,
		AddressID:   *in.AddressID,
		Category:    *in.Category,
		Gender:      *in.Gender,
		JobTitle:    *in.JobTitle,
		Name:        *in.Name,
		Birthdate:   *in.Birthdate,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventStaffCreated, staff.ID, actor, events.StaffCreatedPayload{
		Name:     staff.Name,
		Category: staff.Category,
		JobTitle: staff.JobTitle,
	})
	return staff, nil
}

// Update overwrites only the supplied subset of fields and persists the
// record. An empty payload is rejected before the record is looked up.
func (s *StaffService) Update(ctx context.Context, actor events.Actor, id int64, in StaffUpdateInput) (*domain.Staff, error) {
	if in.Empty() {
		return nil, apperrors.NewValidationError("Invalid JSON")
	}

	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Staff")
		}
		return nil, apperrors.NewInternalError(err)
	}

	var changed []string
	if in.BloodBankID != nil {
		staff.BloodBankID = *in.BloodBankID
		changed = append(changed, "BLOOD_BANKS_id")
	}
	if in.AddressID != nil {
		staff.AddressID = *in.AddressID
		changed = append(changed, "ADDRESS_id")
	}
	if in.Category != nil {
		staff.Category = *in.Category
		changed = append(changed, "category")
	}
	if in.Gender != nil {
		staff.Gender = *in.Gender
		changed = append(changed, "gender")
	}
	if in.JobTitle != nil {
		staff.JobTitle = *in.JobTitle
		changed = append(changed, "job_title")
	}
	if in.Name != nil {
		staff.Name = *in.Name
		changed = append(changed, "name")
	}
	if in.Birthdate != nil {
		staff.Birthdate = *in.Birthdate
		changed = append(changed, "birthdate")
	}

	if err := s.staff.Update(ctx, staff); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Staff")
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventStaffUpdated, staff.ID, actor, events.StaffUpdatedPayload{ChangedFields: changed})
	return staff, nil
}

// Delete removes the record. A subsequent Get for the same id reports
// not found.
func (s *StaffService) Delete(ctx context.Context, actor events.Actor, id int64) error {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Staff")
		}
		return apperrors.NewInternalError(err)
	}

	if err := s.staff.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Staff")
		}
		return apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventStaffDeleted, id, actor, events.StaffDeletedPayload{Name: staff.Name})
	return nil
}

func (s *StaffService) publish(ctx context.Context, eventType events.EventType, staffID int64, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		StaffID:   staffID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
