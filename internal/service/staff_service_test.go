package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/bloodbank-service/internal/domain"
	"github.com/spec-kit/bloodbank-service/internal/events"
	apperrors "github.com/spec-kit/bloodbank-service/pkg/util"
)

// memStaffRepo is an in-memory StaffRepository for exercising the
// service contract without a database.
type memStaffRepo struct {
	records map[int64]domain.Staff
	nextID  int64
	failAll error
}

func newMemStaffRepo() *memStaffRepo {
	return &memStaffRepo{records: make(map[int64]domain.Staff), nextID: 1}
}

func (m *memStaffRepo) List(_ context.Context) ([]domain.Staff, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	result := make([]domain.Staff, 0, len(m.records))
	for id := int64(1); id < m.nextID; id++ {
		if staff, ok := m.records[id]; ok {
			result = append(result, staff)
		}
	}
	return result, nil
}

func (m *memStaffRepo) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	staff, ok := m.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &staff, nil
}

func (m *memStaffRepo) Create(_ context.Context, staff *domain.Staff) error {
	if m.failAll != nil {
		return m.failAll
	}
	staff.ID = m.nextID
	m.nextID++
	m.records[staff.ID] = *staff
	return nil
}

func (m *memStaffRepo) Update(_ context.Context, staff *domain.Staff) error {
	if m.failAll != nil {
		return m.failAll
	}
	if _, ok := m.records[staff.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.records[staff.ID] = *staff
	return nil
}

func (m *memStaffRepo) Delete(_ context.Context, id int64) error {
	if m.failAll != nil {
		return m.failAll
	}
	if _, ok := m.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.records, id)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func fullCreateInput() StaffCreateInput {
	return StaffCreateInput{
		BloodBankID: intPtr(1),
		AddressID:   intPtr(1),
		Category:    strPtr("Nurse"),
		Gender:      strPtr("Female"),
		JobTitle:    strPtr("Staff Nurse"),
		Name:        strPtr("Jane Doe"),
		Birthdate:   strPtr("1990-01-01"),
	}
}

func testActor() events.Actor {
	return events.Actor{Identity: domain.IdentityStaff, Role: domain.RoleAdmin}
}

func TestCreateAssignsIDAndPersists(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, nil)

	staff, err := svc.Create(context.Background(), testActor(), fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if staff.ID == 0 {
		t.Fatal("expected generated id")
	}

	got, err := svc.Get(context.Background(), staff.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != *staff {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, staff)
	}
}

func TestCreateReportsFirstMissingFieldInOrder(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, nil)

	// Both BLOOD_BANKS_id and birthdate absent; the scan order decides.
	in := fullCreateInput()
	in.BloodBankID = nil
	in.Birthdate = nil

	_, err := svc.Create(context.Background(), testActor(), in)
	if err == nil {
		t.Fatal("expected validation error")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation code, got %q", domainErr.Code)
	}
	if domainErr.Message != "Missing field: BLOOD_BANKS_id" {
		t.Fatalf("unexpected message %q", domainErr.Message)
	}
}

func TestCreateMissingBirthdate(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, nil)

	in := fullCreateInput()
	in.Birthdate = nil

	_, err := svc.Create(context.Background(), testActor(), in)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := apperrors.ToDomainError(err).Message; got != "Missing field: birthdate" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestCreateAcceptsEmptyStringValues(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, nil)

	in := fullCreateInput()
	in.Category = strPtr("")
	in.Name = strPtr("")

	staff, err := svc.Create(context.Background(), testActor(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if staff.Category != "" || staff.Name != "" {
		t.Fatalf("expected empty values preserved, got %+v", staff)
	}
}

func TestCreatePersistenceFailure(t *testing.T) {
	repo := newMemStaffRepo()
	repo.failAll = errors.New("connection reset")
	svc := NewStaffService(repo, nil)

	_, err := svc.Create(context.Background(), testActor(), fullCreateInput())
	if err == nil {
		t.Fatal("expected internal error")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != apperrors.CodeInternal {
		t.Fatalf("expected internal code, got %q", domainErr.Code)
	}
	if domainErr.Message != "connection reset" {
		t.Fatalf("expected cause passed through, got %q", domainErr.Message)
	}
}

func TestUpdateOverwritesOnlySuppliedFields(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, nil)

	staff, err := svc.Create(context.Background(), testActor(), fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), testActor(), staff.ID, StaffUpdateInput{
		JobTitle: strPtr("Head Nurse"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.JobTitle != "Head Nurse" {
		t.Fatalf("expected job title updated, got %q", updated.JobTitle)
	}
	if updated.Name != "Jane Doe" || updated.Category != "Nurse" || updated.Birthdate != "1990-01-01" {
		t.Fatalf("expected other fields retained, got %+v", updated)
	}
	if updated.ID != staff.ID {
		t.Fatalf("id must be immutable, got %d", updated.ID)
	}
}

func TestUpdateEmptyPayload(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, nil)

	staff, err := svc.Create(context.Background(), testActor(), fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(context.Background(), testActor(), staff.ID, StaffUpdateInput{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != apperrors.CodeValidation || domainErr.Message != "Invalid JSON" {
		t.Fatalf("unexpected error %+v", domainErr)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, nil)

	_, err := svc.Update(context.Background(), testActor(), 42, StaffUpdateInput{Name: strPtr("x")})
	if err == nil {
		t.Fatal("expected not found")
	}
	if got := apperrors.ToDomainError(err).Code; got != apperrors.CodeNotFound {
		t.Fatalf("expected not found code, got %q", got)
	}
}

func TestDeleteThenGetReportsNotFound(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, nil)

	staff, err := svc.Create(context.Background(), testActor(), fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), testActor(), staff.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Get(context.Background(), staff.ID); err == nil {
		t.Fatal("expected not found after delete")
	} else if got := apperrors.ToDomainError(err).Code; got != apperrors.CodeNotFound {
		t.Fatalf("expected not found code, got %q", got)
	}

	if err := svc.Delete(context.Background(), testActor(), staff.ID); err == nil {
		t.Fatal("expected not found on second delete")
	}
}

func TestMutationsPublishEvents(t *testing.T) {
	repo := newMemStaffRepo()
	dispatcher := events.NewInMemoryDispatcher(nil)

	var seen []events.EventType
	record := func(_ context.Context, event events.Event) error {
		seen = append(seen, event.Type)
		return nil
	}
	dispatcher.Subscribe(events.EventStaffCreated, record)
	dispatcher.Subscribe(events.EventStaffUpdated, record)
	dispatcher.Subscribe(events.EventStaffDeleted, record)

	svc := NewStaffService(repo, dispatcher)

	staff, err := svc.Create(context.Background(), testActor(), fullCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(context.Background(), testActor(), staff.ID, StaffUpdateInput{Name: strPtr("J. Doe")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.Delete(context.Background(), testActor(), staff.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := []events.EventType{events.EventStaffCreated, events.EventStaffUpdated, events.EventStaffDeleted}
	if len(seen) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("event %d: expected %q, got %q", i, want[i], seen[i])
		}
	}
}
