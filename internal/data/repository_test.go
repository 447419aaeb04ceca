package data

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etuition/internal/errdefs"
	"etuition/internal/model"
)

type AnyTime struct{}

func (a AnyTime) Match(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok
}

var userColumns = []string{"id", "email", "display_name", "photo_url", "phone", "firebase_uid", "role", "created_at"}

var nilStr *string

func TestUserRepository_CreateUser(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserRepository(mockPool)
	ctx := context.Background()
	id := uuid.New()
	name := "Jamie"

	mockPool.ExpectQuery("INSERT INTO users").
		WithArgs(id, "jamie@example.com", &name, nilStr, nilStr, nilStr, model.RoleStudent).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(id, "jamie@example.com", &name, nil, nil, nil, model.RoleStudent, time.Now()))

	user, err := repo.CreateUser(ctx, &model.RepositoryCreateUserInput{
		Id:          id,
		Email:       "jamie@example.com",
		DisplayName: &name,
		Role:        model.RoleStudent,
	})
	assert.NoError(t, err)
	assert.Equal(t, id, user.Id)
	assert.Equal(t, model.RoleStudent, user.Role)
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserRepository(mockPool)

	mockPool.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.CreateUser(context.Background(), &model.RepositoryCreateUserInput{
		Id:    uuid.New(),
		Email: "dup@example.com",
	})
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
}

func TestUserRepository_GetUserByEmail_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserRepository(mockPool)

	mockPool.ExpectQuery("SELECT (.+) FROM users WHERE email =").
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestUserRepository_UpdateProfile_NoFields(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserRepository(mockPool)

	_, err = repo.UpdateProfile(context.Background(), "x@example.com", &model.UpdateProfileInput{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestUserRepository_DeleteUser_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectExec("DELETE FROM users WHERE id =").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repo.DeleteUser(context.Background(), id)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

var postRows = []string{
	"id", "user_email", "subject", "location", "budget",
	"status", "applied_tutors_count", "created_at", "updated_at", "approved_at",
}

func TestTuitionRepository_CreatePost(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewTuitionRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectQuery("INSERT INTO tuition_posts").
		WithArgs(id, "s@example.com", "Math", "Dhaka", int64(5000), model.PostStatusPending).
		WillReturnRows(pgxmock.NewRows(postRows).
			AddRow(id, "s@example.com", "Math", "Dhaka", int64(5000),
				model.PostStatusPending, int32(0), time.Now(), nil, nil))

	post, err := repo.CreatePost(context.Background(), &model.RepositoryCreatePostInput{
		Id:        id,
		UserEmail: "s@example.com",
		Subject:   "Math",
		Location:  "Dhaka",
		Budget:    5000,
		Status:    model.PostStatusPending,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.PostStatusPending, post.Status)
}

func TestTuitionRepository_GetApprovedPost_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewTuitionRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectQuery("SELECT (.+) FROM tuition_posts WHERE id = (.+) AND status = 'Approved'").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetApprovedPost(context.Background(), id)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestTuitionRepository_SetStatus(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewTuitionRepository(mockPool)
	id := uuid.New()
	now := time.Now()

	mockPool.ExpectQuery("UPDATE tuition_posts").
		WithArgs(model.PostStatusApproved, &now, id).
		WillReturnRows(pgxmock.NewRows(postRows).
			AddRow(id, "s@example.com", "Math", "Dhaka", int64(5000),
				model.PostStatusApproved, int32(2), now, &now, &now))

	post, err := repo.SetStatus(context.Background(), id, model.PostStatusApproved, &now)
	assert.NoError(t, err)
	assert.Equal(t, model.PostStatusApproved, post.Status)
	assert.NotNil(t, post.ApprovedAt)
}

var applicationRows = []string{
	"id", "tuition_id", "tutor_email", "tutor_name", "student_email",
	"expected_salary", "qualifications", "experience",
	"status", "payment_status", "tracking_id", "applied_at", "payment_date",
}

func TestApplicationRepository_CreationTx(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewApplicationRepository(mockPool)
	ctx := context.Background()
	id := uuid.New()
	tuitionId := uuid.New()

	mockPool.ExpectBegin()
	mockPool.ExpectQuery("INSERT INTO applications").
		WithArgs(id, tuitionId, "tutor@example.com", nilStr, "student@example.com",
			int64(4000), nilStr, nilStr, model.ApplicationStatusPending, model.PaymentStateUnpaid).
		WillReturnRows(pgxmock.NewRows(applicationRows).
			AddRow(id, tuitionId, "tutor@example.com", nil, "student@example.com",
				int64(4000), nil, nil,
				model.ApplicationStatusPending, model.PaymentStateUnpaid, nil, time.Now(), nil))
	mockPool.ExpectExec("UPDATE tuition_posts SET applied_tutors_count").
		WithArgs(tuitionId).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectCommit()

	tx, err := repo.NewApplicationCreationTx(ctx)
	require.NoError(t, err)

	app, err := tx.CreateApplication(ctx, &model.RepositoryCreateApplicationInput{
		Id:             id,
		TuitionId:      tuitionId,
		TutorEmail:     "tutor@example.com",
		StudentEmail:   "student@example.com",
		ExpectedSalary: 4000,
		Status:         model.ApplicationStatusPending,
		PaymentStatus:  model.PaymentStateUnpaid,
	})
	assert.NoError(t, err)
	assert.Equal(t, id, app.Id)

	assert.NoError(t, tx.IncrementAppliedCount(ctx, tuitionId))
	assert.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestApplicationRepository_IncrementAppliedCount_MissingPost(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewApplicationRepository(mockPool)
	ctx := context.Background()
	tuitionId := uuid.New()

	mockPool.ExpectBegin()
	mockPool.ExpectExec("UPDATE tuition_posts SET applied_tutors_count").
		WithArgs(tuitionId).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mockPool.ExpectRollback()

	tx, err := repo.NewApplicationCreationTx(ctx)
	require.NoError(t, err)

	err = tx.IncrementAppliedCount(ctx, tuitionId)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
	assert.NoError(t, tx.Rollback(ctx))
}

func TestApplicationRepository_GetByPostAndTutor_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewApplicationRepository(mockPool)
	tuitionId := uuid.New()

	mockPool.ExpectQuery("SELECT (.+) FROM applications WHERE tuition_id =").
		WithArgs(tuitionId, "tutor@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetApplicationByPostAndTutor(context.Background(), tuitionId, "tutor@example.com")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

var paymentRows = []string{
	"id", "tutor_email", "student_email", "tuition_id", "tutor_name",
	"amount", "transaction_id", "tracking_id", "payment_date",
}

func TestPaymentRepository_SettlementTx(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPaymentRepository(mockPool)
	ctx := context.Background()
	id := uuid.New()
	tuitionId := uuid.New()
	now := time.Now()

	mockPool.ExpectBegin()
	mockPool.ExpectQuery("INSERT INTO payments").
		WithArgs(id, "tutor@example.com", "student@example.com", tuitionId, "Jamie",
			int64(5000), "pi_test_123", "ETBD-20260829-AB12CD34", AnyTime{}).
		WillReturnRows(pgxmock.NewRows(paymentRows).
			AddRow(id, "tutor@example.com", "student@example.com", tuitionId, "Jamie",
				int64(5000), "pi_test_123", "ETBD-20260829-AB12CD34", now))
	mockPool.ExpectExec("UPDATE applications").
		WithArgs(AnyTime{}, "ETBD-20260829-AB12CD34", tuitionId, "tutor@example.com").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectCommit()

	tx, err := repo.NewSettlementTx(ctx)
	require.NoError(t, err)

	payment, err := tx.CreatePayment(ctx, &model.RepositoryCreatePaymentInput{
		Id:            id,
		TutorEmail:    "tutor@example.com",
		StudentEmail:  "student@example.com",
		TuitionId:     tuitionId,
		TutorName:     "Jamie",
		Amount:        5000,
		TransactionId: "pi_test_123",
		TrackingId:    "ETBD-20260829-AB12CD34",
		PaymentDate:   now,
	})
	assert.NoError(t, err)
	assert.Equal(t, "pi_test_123", payment.TransactionId)

	err = tx.SettleApplication(ctx, &model.RepositorySettleApplicationInput{
		TuitionId:   tuitionId,
		TutorEmail:  "tutor@example.com",
		TrackingId:  "ETBD-20260829-AB12CD34",
		PaymentDate: now,
	})
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestPaymentRepository_CreatePayment_DuplicateTransaction(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPaymentRepository(mockPool)

	mockPool.ExpectQuery("INSERT INTO payments").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.CreatePayment(context.Background(), &model.RepositoryCreatePaymentInput{
		Id:            uuid.New(),
		TransactionId: "pi_dup",
	})
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
}

func TestPaymentRepository_TrackingIdExists(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPaymentRepository(mockPool)

	mockPool.ExpectQuery("SELECT EXISTS").
		WithArgs("ETBD-20260829-AB12CD34").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.TrackingIdExists(context.Background(), "ETBD-20260829-AB12CD34")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestPaymentRepository_SumAmounts(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPaymentRepository(mockPool)

	mockPool.ExpectQuery("SELECT COALESCE").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(12500)))

	total, err := repo.SumAmounts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12500), total)
}
