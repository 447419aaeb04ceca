//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"etuition/internal/checkout"
	"etuition/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	UpdateProfile(ctx context.Context, email string, input *model.UpdateProfileInput) (*model.User, error)
	AdminUpdateUser(ctx context.Context, id uuid.UUID, input *model.AdminUpdateUserInput) (*model.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type TuitionRepository interface {
	CreatePost(ctx context.Context, input *model.RepositoryCreatePostInput) (*model.TuitionPost, error)
	GetPost(ctx context.Context, id uuid.UUID) (*model.TuitionPost, error)
	GetApprovedPost(ctx context.Context, id uuid.UUID) (*model.TuitionPost, error)
	ListPosts(ctx context.Context, ownerEmail string) ([]*model.TuitionPost, error)
	ListApprovedPosts(ctx context.Context) ([]*model.TuitionPost, error)
	UpdatePost(ctx context.Context, id uuid.UUID, input *model.UpdatePostInput) (*model.TuitionPost, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.PostStatus, approvedAt *time.Time) (*model.TuitionPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}

// OngoingFilter selects which identity column the ongoing-engagements view
// filters by.
type OngoingFilter string

const (
	OngoingFilterStudent OngoingFilter = "student"
	OngoingFilterTutor   OngoingFilter = "tutor"
)

type ApplicationRepository interface {
	NewApplicationCreationTx(ctx context.Context) (ApplicationCreationTx, error)

	GetApplication(ctx context.Context, id uuid.UUID) (*model.Application, error)
	GetApplicationByPostAndTutor(ctx context.Context, tuitionId uuid.UUID, tutorEmail string) (*model.Application, error)
	ListApplications(ctx context.Context) ([]*model.Application, error)
	ListApplicationsByStatus(ctx context.Context, status model.ApplicationStatus) ([]*model.Application, error)
	ListApplicationsByTutor(ctx context.Context, tutorEmail string) ([]*model.Application, error)
	ListOngoing(ctx context.Context, filter OngoingFilter, email string) ([]*model.Application, error)
	UpdateApplication(ctx context.Context, id uuid.UUID, input *model.UpdateApplicationInput) (*model.Application, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) (*model.Application, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error
}

type ApplicationCreationTx interface {
	CreateApplication(ctx context.Context, input *model.RepositoryCreateApplicationInput) (*model.Application, error)
	IncrementAppliedCount(ctx context.Context, tuitionId uuid.UUID) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PaymentRepository interface {
	NewSettlementTx(ctx context.Context) (SettlementTx, error)

	CreatePayment(ctx context.Context, input *model.RepositoryCreatePaymentInput) (*model.Payment, error)
	GetPaymentByTransactionId(ctx context.Context, transactionId string) (*model.Payment, error)
	TrackingIdExists(ctx context.Context, trackingId string) (bool, error)
	ListPaymentsByTutor(ctx context.Context, tutorEmail string) ([]*model.Payment, error)
	ListPaymentsByStudent(ctx context.Context, studentEmail string) ([]*model.Payment, error)
	ListPayments(ctx context.Context, limit int64, offset int64) ([]*model.Payment, error)
	CountPayments(ctx context.Context) (int64, error)
	SumAmounts(ctx context.Context) (int64, error)
	DeletePayment(ctx context.Context, id uuid.UUID) error
}

type SettlementTx interface {
	CreatePayment(ctx context.Context, input *model.RepositoryCreatePaymentInput) (*model.Payment, error)
	SettleApplication(ctx context.Context, input *model.RepositorySettleApplicationInput) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// CheckoutProvider is the hosted checkout integration. Session creation and
// retrieval both go to the external provider; no local state is involved.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, input *checkout.SessionInput) (*checkout.Session, error)
	GetSession(ctx context.Context, sessionId string) (*checkout.Session, error)
}

// EventPublisher pushes notification events. Publishing is best-effort: a
// broker failure must not fail the request that triggered the event.
type EventPublisher interface {
	PublishApplicationCreated(ctx context.Context, app *model.Application) error
	PublishPaymentSettled(ctx context.Context, payment *model.Payment) error
}
