package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"etuition/internal/errdefs"
	"etuition/internal/model"
	"etuition/internal/service"
)

const applicationColumns = `
	id, tuition_id, tutor_email, tutor_name, student_email,
	expected_salary, qualifications, experience,
	status, payment_status, tracking_id,
	applied_at, payment_date
`

type ApplicationRepository struct {
	db Querier
}

func NewApplicationRepository(db Querier) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// NewApplicationCreationTx opens a transaction covering the application
// insert and the post counter increment, so the pair commits or aborts
// together.
func (r *ApplicationRepository) NewApplicationCreationTx(ctx context.Context) (service.ApplicationCreationTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	return &ApplicationCreationRepository{tx: tx}, nil
}

func (r *ApplicationRepository) GetApplication(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	query := `SELECT` + applicationColumns + `FROM applications WHERE id = $1`

	var app model.Application
	err := pgxscan.Get(ctx, r.db, &app, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetApplicationByPostAndTutor(ctx context.Context, tuitionId uuid.UUID, tutorEmail string) (*model.Application, error) {
	query := `SELECT` + applicationColumns + `FROM applications WHERE tuition_id = $1 AND tutor_email = $2`

	var app model.Application
	err := pgxscan.Get(ctx, r.db, &app, query, tuitionId, tutorEmail)
	if err != nil {
		return nil, handleError(err)
	}
	return &app, nil
}

func (r *ApplicationRepository) ListApplications(ctx context.Context) ([]*model.Application, error) {
	query := `SELECT` + applicationColumns + `FROM applications ORDER BY applied_at DESC`

	var apps []*model.Application
	err := pgxscan.Select(ctx, r.db, &apps, query)
	if err != nil {
		return nil, handleError(err)
	}
	return apps, nil
}

func (r *ApplicationRepository) ListApplicationsByStatus(ctx context.Context, status model.ApplicationStatus) ([]*model.Application, error) {
	query := `SELECT` + applicationColumns + `FROM applications WHERE status = $1 ORDER BY applied_at DESC`

	var apps []*model.Application
	err := pgxscan.Select(ctx, r.db, &apps, query, status)
	if err != nil {
		return nil, handleError(err)
	}
	return apps, nil
}

func (r *ApplicationRepository) ListApplicationsByTutor(ctx context.Context, tutorEmail string) ([]*model.Application, error) {
	query := `SELECT` + applicationColumns + `FROM applications WHERE tutor_email = $1 ORDER BY applied_at DESC`

	var apps []*model.Application
	err := pgxscan.Select(ctx, r.db, &apps, query, tutorEmail)
	if err != nil {
		return nil, handleError(err)
	}
	return apps, nil
}

// ListOngoing returns Approved applications filtered by the caller-identifying
// column: student_email for students, tutor_email for tutors.
func (r *ApplicationRepository) ListOngoing(ctx context.Context, column service.OngoingFilter, email string) ([]*model.Application, error) {
	query := `SELECT` + applicationColumns + `FROM applications WHERE status = 'Approved' AND `
	switch column {
	case service.OngoingFilterStudent:
		query += `student_email = $1`
	case service.OngoingFilterTutor:
		query += `tutor_email = $1`
	default:
		return nil, errdefs.ErrForbidden
	}
	query += ` ORDER BY applied_at DESC`

	var apps []*model.Application
	err := pgxscan.Select(ctx, r.db, &apps, query, email)
	if err != nil {
		return nil, handleError(err)
	}
	return apps, nil
}

func (r *ApplicationRepository) UpdateApplication(ctx context.Context, id uuid.UUID, input *model.UpdateApplicationInput) (*model.Application, error) {
	query, args, err := buildApplicationUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var app model.Application
	err = pgxscan.Get(ctx, r.db, &app, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &app, nil
}

func (r *ApplicationRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) (*model.Application, error) {
	query := `
UPDATE applications
SET status = $1
WHERE id = $2
RETURNING` + applicationColumns

	var app model.Application
	err := pgxscan.Get(ctx, r.db, &app, query, status, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &app, nil
}

func (r *ApplicationRepository) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM applications WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

type ApplicationCreationRepository struct {
	tx pgx.Tx
}

func (r *ApplicationCreationRepository) CreateApplication(ctx context.Context, input *model.RepositoryCreateApplicationInput) (*model.Application, error) {
	query := `
INSERT INTO applications (
	id, tuition_id, tutor_email, tutor_name, student_email,
	expected_salary, qualifications, experience,
	status, payment_status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING` + applicationColumns

	var app model.Application
	err := pgxscan.Get(ctx, r.tx, &app, query,
		input.Id,
		input.TuitionId,
		input.TutorEmail,
		input.TutorName,
		input.StudentEmail,
		input.ExpectedSalary,
		input.Qualifications,
		input.Experience,
		input.Status,
		input.PaymentStatus,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &app, nil
}

func (r *ApplicationCreationRepository) IncrementAppliedCount(ctx context.Context, tuitionId uuid.UUID) error {
	query := `UPDATE tuition_posts SET applied_tutors_count = applied_tutors_count + 1 WHERE id = $1`
	tag, err := r.tx.Exec(ctx, query, tuitionId)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *ApplicationCreationRepository) Commit(ctx context.Context) error {
	err := r.tx.Commit(ctx)
	return err
}

func (r *ApplicationCreationRepository) Rollback(ctx context.Context) error {
	err := r.tx.Rollback(ctx)
	return err
}
