package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bloodbank-service/internal/domain"
)

// StaffRepository handles persistence for staff records.
type StaffRepository interface {
	List(ctx context.Context) ([]domain.Staff, error)
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	Create(ctx context.Context, staff *domain.Staff) error
	Update(ctx context.Context, staff *domain.Staff) error
	Delete(ctx context.Context, id int64) error
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	const query = `
        SELECT id, blood_banks_id, address_id, category, gender, job_title, name, birthdate
        FROM staff ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Staff
	for rows.Next() {
		var staff domain.Staff
		if err := rows.Scan(
			&staff.ID,
			&staff.BloodBankID,
			&staff.AddressID,
			&staff.Category,
			&staff.Gender,
			&staff.JobTitle,
			&staff.Name,
			&staff.Birthdate,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	const query = `
        SELECT id, blood_banks_id, address_id, category, gender, job_title, name, birthdate
        FROM staff WHERE id=$1`

	var staff domain.Staff
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&staff.ID,
		&staff.BloodBankID,
		&staff.AddressID,
		&staff.Category,
		&staff.Gender,
		&staff.JobTitle,
		&staff.Name,
		&staff.Birthdate,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

// Create inserts the record in a single statement; the generated id is
// scanned back. A failure leaves no partial row behind.
func (r *staffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	const query = `
        INSERT INTO staff (blood_banks_id, address_id, category, gender, job_title, name, birthdate)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		staff.BloodBankID,
		staff.AddressID,
		staff.Category,
		staff.Gender,
		staff.JobTitle,
		staff.Name,
		staff.Birthdate,
	).Scan(&staff.ID)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.Staff) error {
	const query = `
        UPDATE staff
        SET blood_banks_id=$1, address_id=$2, category=$3, gender=$4, job_title=$5, name=$6, birthdate=$7
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		staff.BloodBankID,
		staff.AddressID,
		staff.Category,
		staff.Gender,
		staff.JobTitle,
		staff.Name,
		staff.Birthdate,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM staff WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
