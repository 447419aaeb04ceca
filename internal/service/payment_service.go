package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"etuition/internal/checkout"
	"etuition/internal/errdefs"
	"etuition/internal/logging"
	"etuition/internal/model"
	"etuition/internal/retry"
)

const (
	trackingIdPrefix = "ETBD"
	productName      = "E Tuition Payment"

	maxProviderRetries = 3
	providerRetryDelay = 200 * time.Millisecond

	// Tracking suffixes carry 32 bits of randomness per day; collisions are
	// near-impossible but probed for anyway before insert.
	maxTrackingAttempts = 3
)

type PaymentService struct {
	paymentRepository     PaymentRepository
	applicationRepository ApplicationRepository
	provider              CheckoutProvider
	events                EventPublisher
	successURL            string
	cancelURL             string
}

func NewPaymentService(
	paymentRepository PaymentRepository,
	applicationRepository ApplicationRepository,
	provider CheckoutProvider,
	events EventPublisher,
	domain string,
) *PaymentService {
	return &PaymentService{
		paymentRepository:     paymentRepository,
		applicationRepository: applicationRepository,
		provider:              provider,
		events:                events,
		successURL:            domain + "/dashboard/student/payment-success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:             domain + "/dashboard/student/payment-cancelled",
	}
}

// CreateCheckoutSession opens a hosted checkout session with the provider and
// returns the redirect URL. Nothing is persisted locally: the payment enters
// the system of record only on confirmation.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, input *model.CheckoutInput) (string, error) {
	if input.TuitionId == "" || input.TutorEmail == "" || input.ExpectedSalary == 0 {
		return "", errdefs.ErrValidation
	}

	sessionInput := &checkout.SessionInput{
		AmountMinor:   input.ExpectedSalary * 100,
		ProductName:   productName,
		CustomerEmail: input.TutorEmail,
		SuccessURL:    s.successURL,
		CancelURL:     s.cancelURL,
		Metadata: checkout.SessionMetadata{
			TutorEmail:   input.TutorEmail,
			StudentEmail: input.StudentEmail,
			TuitionId:    input.TuitionId,
			TutorName:    input.TutorName,
		},
	}

	session, err := retry.WithBackoff(ctx, maxProviderRetries, providerRetryDelay, checkout.IsRetriable,
		func() (*checkout.Session, error) {
			return s.provider.CreateSession(ctx, sessionInput)
		})
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return session.URL, nil
}

// ConfirmPayment reconciles a provider redirect into local state. The
// provider transaction id is the idempotency key: confirming the same session
// again (refresh, back button) replays the prior result without new writes.
func (s *PaymentService) ConfirmPayment(ctx context.Context, sessionId string) (*model.ConfirmPaymentResult, error) {
	if sessionId == "" {
		return nil, errdefs.ErrMissingParameter
	}

	session, err := retry.WithBackoff(ctx, maxProviderRetries, providerRetryDelay, checkout.IsRetriable,
		func() (*checkout.Session, error) {
			return s.provider.GetSession(ctx, sessionId)
		})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	if existing, err := s.paymentRepository.GetPaymentByTransactionId(ctx, session.TransactionId); err == nil {
		return &model.ConfirmPaymentResult{
			TransactionId: existing.TransactionId,
			TrackingId:    existing.TrackingId,
		}, nil
	} else if !errors.Is(err, errdefs.ErrNotFound) {
		return nil, err
	}

	if !session.Paid() {
		return nil, errdefs.ErrPaymentNotCompleted
	}

	tuitionId, err := uuid.Parse(session.Metadata.TuitionId)
	if err != nil {
		return nil, errdefs.ErrValidation
	}

	trackingId, err := s.newTrackingId(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	tutorName := session.Metadata.TutorName
	if tutorName == "" {
		tutorName = "N/A"
	}

	paymentDate := time.Now()

	tx, err := s.paymentRepository.NewSettlementTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func(tx SettlementTx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil {
			logger, ok := logging.GetFromContext(ctx)
			if ok {
				logger.Error(ctx, "Failed to Rollback", zap.Error(err))
			}
		}
	}(tx, ctx)

	payment, err := tx.CreatePayment(ctx, &model.RepositoryCreatePaymentInput{
		Id:            id,
		TutorEmail:    session.Metadata.TutorEmail,
		StudentEmail:  session.Metadata.StudentEmail,
		TuitionId:     tuitionId,
		TutorName:     tutorName,
		Amount:        session.AmountMinor / 100,
		TransactionId: session.TransactionId,
		TrackingId:    trackingId,
		PaymentDate:   paymentDate,
	})
	if err != nil {
		return nil, err
	}

	err = tx.SettleApplication(ctx, &model.RepositorySettleApplicationInput{
		TuitionId:   tuitionId,
		TutorEmail:  session.Metadata.TutorEmail,
		TrackingId:  trackingId,
		PaymentDate: paymentDate,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.events.PublishPaymentSettled(ctx, payment); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "failed to publish payment.settled", zap.Error(err))
		}
	}

	return &model.ConfirmPaymentResult{
		TransactionId: payment.TransactionId,
		TrackingId:    payment.TrackingId,
	}, nil
}

func (s *PaymentService) RecordPayment(ctx context.Context, input *model.RecordPaymentInput) (*model.Payment, error) {
	if input.TuitionId == "" || input.TutorEmail == "" || input.TransactionId == "" {
		return nil, errdefs.ErrValidation
	}
	tuitionId, err := uuid.Parse(input.TuitionId)
	if err != nil {
		return nil, errdefs.ErrValidation
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	trackingId := input.TrackingId
	if trackingId == "" {
		trackingId, err = s.newTrackingId(ctx)
		if err != nil {
			return nil, err
		}
	}

	return s.paymentRepository.CreatePayment(ctx, &model.RepositoryCreatePaymentInput{
		Id:            id,
		TutorEmail:    input.TutorEmail,
		StudentEmail:  input.StudentEmail,
		TuitionId:     tuitionId,
		TutorName:     input.TutorName,
		Amount:        input.Amount,
		TransactionId: input.TransactionId,
		TrackingId:    trackingId,
		PaymentDate:   paymentDate,
	})
}

func (s *PaymentService) ListStudentPayments(ctx context.Context, studentEmail string) ([]*model.Payment, error) {
	if studentEmail == "" {
		return nil, errdefs.ErrValidation
	}
	return s.paymentRepository.ListPaymentsByStudent(ctx, studentEmail)
}

func (s *PaymentService) TutorRevenue(ctx context.Context, tutorEmail string) (*model.RevenueReport, error) {
	if tutorEmail == "" {
		return nil, errdefs.ErrValidation
	}

	payments, err := s.paymentRepository.ListPaymentsByTutor(ctx, tutorEmail)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, p := range payments {
		total += p.Amount
	}
	return &model.RevenueReport{
		TotalRevenue:   total,
		PaymentHistory: payments,
	}, nil
}

// Earnings pages through the platform payment history. Total earnings cover
// the whole set, not the requested page.
func (s *PaymentService) Earnings(ctx context.Context, page int64, limit int64) (*model.EarningsReport, error) {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	count, err := s.paymentRepository.CountPayments(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepository.ListPayments(ctx, limit, page*limit)
	if err != nil {
		return nil, err
	}

	total, err := s.paymentRepository.SumAmounts(ctx)
	if err != nil {
		return nil, err
	}

	return &model.EarningsReport{
		TotalEarnings:   total,
		AllTransactions: payments,
		TotalCount:      count,
		TotalPages:      (count + limit - 1) / limit,
	}, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return s.paymentRepository.DeletePayment(ctx, id)
}

// newTrackingId issues ETBD-YYYYMMDD-XXXXXXXX and probes the store for a
// collision before handing it out.
func (s *PaymentService) newTrackingId(ctx context.Context) (string, error) {
	for range maxTrackingAttempts {
		trackingId, err := generateTrackingId()
		if err != nil {
			return "", err
		}

		exists, err := s.paymentRepository.TrackingIdExists(ctx, trackingId)
		if err != nil {
			return "", err
		}
		if !exists {
			return trackingId, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique tracking id after %d attempts", maxTrackingAttempts)
}

func generateTrackingId() (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	date := time.Now().UTC().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", trackingIdPrefix, date, strings.ToUpper(hex.EncodeToString(suffix))), nil
}
