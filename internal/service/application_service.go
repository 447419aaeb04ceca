package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"etuition/internal/errdefs"
	"etuition/internal/logging"
	"etuition/internal/model"
)

type ApplicationService struct {
	applicationRepository ApplicationRepository
	tuitionRepository     TuitionRepository
	events                EventPublisher
}

func NewApplicationService(
	applicationRepository ApplicationRepository,
	tuitionRepository TuitionRepository,
	events EventPublisher,
) *ApplicationService {
	return &ApplicationService{
		applicationRepository: applicationRepository,
		tuitionRepository:     tuitionRepository,
		events:                events,
	}
}

// Apply enforces the one-application-per-(post, tutor) invariant and bumps
// the post's applied-tutor counter in the same transaction as the insert.
func (s *ApplicationService) Apply(ctx context.Context, input *model.ApplyInput) (*model.Application, error) {
	if input.TuitionId == "" || input.TutorEmail == "" || input.ExpectedSalary == 0 {
		return nil, errdefs.ErrValidation
	}

	tuitionId, err := uuid.Parse(input.TuitionId)
	if err != nil {
		return nil, errdefs.ErrValidation
	}

	_, err = s.applicationRepository.GetApplicationByPostAndTutor(ctx, tuitionId, input.TutorEmail)
	if err == nil {
		return nil, errdefs.ErrAlreadyExists
	}
	if !errors.Is(err, errdefs.ErrNotFound) {
		return nil, err
	}

	post, err := s.tuitionRepository.GetPost(ctx, tuitionId)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	tx, err := s.applicationRepository.NewApplicationCreationTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func(tx ApplicationCreationTx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil {
			logger, ok := logging.GetFromContext(ctx)
			if ok {
				logger.Error(ctx, "Failed to Rollback", zap.Error(err))
			}
		}
	}(tx, ctx)

	app, err := tx.CreateApplication(ctx, &model.RepositoryCreateApplicationInput{
		Id:             id,
		TuitionId:      tuitionId,
		TutorEmail:     input.TutorEmail,
		TutorName:      input.TutorName,
		StudentEmail:   post.UserEmail,
		ExpectedSalary: input.ExpectedSalary,
		Qualifications: input.Qualifications,
		Experience:     input.Experience,
		Status:         model.ApplicationStatusPending,
		PaymentStatus:  model.PaymentStateUnpaid,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.IncrementAppliedCount(ctx, tuitionId); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.events.PublishApplicationCreated(ctx, app); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "failed to publish application.created", zap.Error(err))
		}
	}

	return app, nil
}

func (s *ApplicationService) GetApplication(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return s.applicationRepository.GetApplication(ctx, id)
}

func (s *ApplicationService) ListApplications(ctx context.Context) ([]*model.Application, error) {
	return s.applicationRepository.ListApplications(ctx)
}

func (s *ApplicationService) ListPendingApplications(ctx context.Context) ([]*model.Application, error) {
	return s.applicationRepository.ListApplicationsByStatus(ctx, model.ApplicationStatusPending)
}

// ListByTutor joins each application with its post for the tutor dashboard.
// A post deleted after the application stays in the list with nil details.
func (s *ApplicationService) ListByTutor(ctx context.Context, tutorEmail string) ([]*model.ApplicationWithPost, error) {
	if tutorEmail == "" {
		return nil, errdefs.ErrValidation
	}

	apps, err := s.applicationRepository.ListApplicationsByTutor(ctx, tutorEmail)
	if err != nil {
		return nil, err
	}

	result := make([]*model.ApplicationWithPost, 0, len(apps))
	for _, app := range apps {
		withPost := &model.ApplicationWithPost{Application: *app}
		post, err := s.tuitionRepository.GetPost(ctx, app.TuitionId)
		if err == nil {
			withPost.TuitionDetails = post
		} else if !errors.Is(err, errdefs.ErrNotFound) {
			return nil, err
		}
		result = append(result, withPost)
	}
	return result, nil
}

// ListOngoing is the ongoing-engagements view: Approved applications,
// filtered by the column matching the caller's role.
func (s *ApplicationService) ListOngoing(ctx context.Context, email string, role string) ([]*model.Application, error) {
	if email == "" || role == "" {
		return nil, errdefs.ErrValidation
	}

	switch strings.ToLower(role) {
	case string(model.RoleStudent):
		return s.applicationRepository.ListOngoing(ctx, OngoingFilterStudent, email)
	case string(model.RoleTutor):
		return s.applicationRepository.ListOngoing(ctx, OngoingFilterTutor, email)
	default:
		return nil, errdefs.ErrForbidden
	}
}

func (s *ApplicationService) UpdateApplication(ctx context.Context, id uuid.UUID, input *model.UpdateApplicationInput) (*model.Application, error) {
	return s.applicationRepository.UpdateApplication(ctx, id, input)
}

func (s *ApplicationService) RejectApplication(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return s.applicationRepository.SetStatus(ctx, id, model.ApplicationStatusRejected)
}

func (s *ApplicationService) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	return s.applicationRepository.DeleteApplication(ctx, id)
}
