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

const paymentColumns = `
	id, tutor_email, student_email, tuition_id, tutor_name,
	amount, transaction_id, tracking_id, payment_date
`

type PaymentRepository struct {
	db Querier
}

func NewPaymentRepository(db Querier) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// NewSettlementTx opens a transaction covering the payment insert and the
// application settlement update, so a confirmed checkout either records both
// or neither.
func (r *PaymentRepository) NewSettlementTx(ctx context.Context) (service.SettlementTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	return &SettlementRepository{tx: tx}, nil
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, input *model.RepositoryCreatePaymentInput) (*model.Payment, error) {
	query := `
INSERT INTO payments (
	id, tutor_email, student_email, tuition_id, tutor_name,
	amount, transaction_id, tracking_id, payment_date
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING` + paymentColumns

	var payment model.Payment
	err := pgxscan.Get(ctx, r.db, &payment, query,
		input.Id,
		input.TutorEmail,
		input.StudentEmail,
		input.TuitionId,
		input.TutorName,
		input.Amount,
		input.TransactionId,
		input.TrackingId,
		input.PaymentDate,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &payment, nil
}

// GetPaymentByTransactionId is the settlement idempotency probe.
func (r *PaymentRepository) GetPaymentByTransactionId(ctx context.Context, transactionId string) (*model.Payment, error) {
	query := `SELECT` + paymentColumns + `FROM payments WHERE transaction_id = $1`

	var payment model.Payment
	err := pgxscan.Get(ctx, r.db, &payment, query, transactionId)
	if err != nil {
		return nil, handleError(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) TrackingIdExists(ctx context.Context, trackingId string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE tracking_id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, trackingId).Scan(&exists)
	if err != nil {
		return false, handleError(err)
	}
	return exists, nil
}

func (r *PaymentRepository) ListPaymentsByTutor(ctx context.Context, tutorEmail string) ([]*model.Payment, error) {
	query := `SELECT` + paymentColumns + `FROM payments WHERE tutor_email = $1 ORDER BY payment_date DESC`

	var payments []*model.Payment
	err := pgxscan.Select(ctx, r.db, &payments, query, tutorEmail)
	if err != nil {
		return nil, handleError(err)
	}
	return payments, nil
}

func (r *PaymentRepository) ListPaymentsByStudent(ctx context.Context, studentEmail string) ([]*model.Payment, error) {
	query := `SELECT` + paymentColumns + `FROM payments WHERE student_email = $1 ORDER BY payment_date DESC`

	var payments []*model.Payment
	err := pgxscan.Select(ctx, r.db, &payments, query, studentEmail)
	if err != nil {
		return nil, handleError(err)
	}
	return payments, nil
}

func (r *PaymentRepository) ListPayments(ctx context.Context, limit int64, offset int64) ([]*model.Payment, error) {
	query := `SELECT` + paymentColumns + `FROM payments ORDER BY payment_date DESC LIMIT $1 OFFSET $2`

	var payments []*model.Payment
	err := pgxscan.Select(ctx, r.db, &payments, query, limit, offset)
	if err != nil {
		return nil, handleError(err)
	}
	return payments, nil
}

func (r *PaymentRepository) CountPayments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&count)
	if err != nil {
		return 0, handleError(err)
	}
	return count, nil
}

// SumAmounts totals the entire payment set, regardless of pagination.
func (r *PaymentRepository) SumAmounts(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments`).Scan(&total)
	if err != nil {
		return 0, handleError(err)
	}
	return total, nil
}

func (r *PaymentRepository) DeletePayment(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM payments WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

type SettlementRepository struct {
	tx pgx.Tx
}

func (r *SettlementRepository) CreatePayment(ctx context.Context, input *model.RepositoryCreatePaymentInput) (*model.Payment, error) {
	query := `
INSERT INTO payments (
	id, tutor_email, student_email, tuition_id, tutor_name,
	amount, transaction_id, tracking_id, payment_date
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING` + paymentColumns

	var payment model.Payment
	err := pgxscan.Get(ctx, r.tx, &payment, query,
		input.Id,
		input.TutorEmail,
		input.StudentEmail,
		input.TuitionId,
		input.TutorName,
		input.Amount,
		input.TransactionId,
		input.TrackingId,
		input.PaymentDate,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &payment, nil
}

func (r *SettlementRepository) SettleApplication(ctx context.Context, input *model.RepositorySettleApplicationInput) error {
	query := `
UPDATE applications
SET payment_status = 'Paid', status = 'Approved',
	payment_date = $1, tracking_id = $2
WHERE tuition_id = $3 AND tutor_email = $4
`
	_, err := r.tx.Exec(ctx, query,
		input.PaymentDate,
		input.TrackingId,
		input.TuitionId,
		input.TutorEmail,
	)
	if err != nil {
		return handleError(err)
	}
	return nil
}

func (r *SettlementRepository) Commit(ctx context.Context) error {
	err := r.tx.Commit(ctx)
	return err
}

func (r *SettlementRepository) Rollback(ctx context.Context) error {
	err := r.tx.Rollback(ctx)
	return err
}
