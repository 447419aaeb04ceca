package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"etuition/internal/errdefs"
	"etuition/internal/model"
	"etuition/internal/service"
	"etuition/internal/service/mocks"
)

type applicationServiceMocks struct {
	applicationRepo *mocks.MockApplicationRepository
	tuitionRepo     *mocks.MockTuitionRepository
	events          *mocks.MockEventPublisher
	tx              *mocks.MockApplicationCreationTx
}

func setupApplicationService(t *testing.T) (*gomock.Controller, *service.ApplicationService, applicationServiceMocks) {
	ctrl := gomock.NewController(t)
	m := applicationServiceMocks{
		applicationRepo: mocks.NewMockApplicationRepository(ctrl),
		tuitionRepo:     mocks.NewMockTuitionRepository(ctrl),
		events:          mocks.NewMockEventPublisher(ctrl),
		tx:              mocks.NewMockApplicationCreationTx(ctrl),
	}
	svc := service.NewApplicationService(m.applicationRepo, m.tuitionRepo, m.events)
	return ctrl, svc, m
}

func TestApply(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl, svc, m := setupApplicationService(t)
		defer ctrl.Finish()

		tuitionId := uuid.New()
		m.applicationRepo.EXPECT().GetApplicationByPostAndTutor(gomock.Any(), tuitionId, "tutor@example.com").
			Return(nil, errdefs.ErrNotFound)
		m.tuitionRepo.EXPECT().GetPost(gomock.Any(), tuitionId).
			Return(&model.TuitionPost{Id: tuitionId, UserEmail: "student@example.com"}, nil)
		m.applicationRepo.EXPECT().NewApplicationCreationTx(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().CreateApplication(gomock.Any(), gomock.AssignableToTypeOf(&model.RepositoryCreateApplicationInput{})).
			DoAndReturn(func(_ context.Context, input *model.RepositoryCreateApplicationInput) (*model.Application, error) {
				assert.Equal(t, "student@example.com", input.StudentEmail)
				assert.Equal(t, model.ApplicationStatusPending, input.Status)
				assert.Equal(t, model.PaymentStateUnpaid, input.PaymentStatus)
				return &model.Application{
					Id:           input.Id,
					TuitionId:    input.TuitionId,
					TutorEmail:   input.TutorEmail,
					StudentEmail: input.StudentEmail,
					Status:       input.Status,
				}, nil
			})
		m.tx.EXPECT().IncrementAppliedCount(gomock.Any(), tuitionId).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
		m.events.EXPECT().PublishApplicationCreated(gomock.Any(), gomock.Any()).Return(nil)

		app, err := svc.Apply(context.Background(), &model.ApplyInput{
			TuitionId:      tuitionId.String(),
			TutorEmail:     "tutor@example.com",
			ExpectedSalary: 4000,
		})
		assert.NoError(t, err)
		assert.Equal(t, "student@example.com", app.StudentEmail)
	})

	t.Run("Success_BrokerFailureDoesNotFailApply", func(t *testing.T) {
		ctrl, svc, m := setupApplicationService(t)
		defer ctrl.Finish()

		tuitionId := uuid.New()
		m.applicationRepo.EXPECT().GetApplicationByPostAndTutor(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errdefs.ErrNotFound)
		m.tuitionRepo.EXPECT().GetPost(gomock.Any(), tuitionId).
			Return(&model.TuitionPost{Id: tuitionId, UserEmail: "student@example.com"}, nil)
		m.applicationRepo.EXPECT().NewApplicationCreationTx(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(&model.Application{}, nil)
		m.tx.EXPECT().IncrementAppliedCount(gomock.Any(), tuitionId).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
		m.events.EXPECT().PublishApplicationCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := svc.Apply(context.Background(), &model.ApplyInput{
			TuitionId:      tuitionId.String(),
			TutorEmail:     "tutor@example.com",
			ExpectedSalary: 4000,
		})
		assert.NoError(t, err)
	})

	t.Run("Error_DuplicateApplication", func(t *testing.T) {
		ctrl, svc, m := setupApplicationService(t)
		defer ctrl.Finish()

		tuitionId := uuid.New()
		m.applicationRepo.EXPECT().GetApplicationByPostAndTutor(gomock.Any(), tuitionId, "tutor@example.com").
			Return(&model.Application{Id: uuid.New()}, nil)

		_, err := svc.Apply(context.Background(), &model.ApplyInput{
			TuitionId:      tuitionId.String(),
			TutorEmail:     "tutor@example.com",
			ExpectedSalary: 4000,
		})
		assert.True(t, errors.Is(err, errdefs.ErrAlreadyExists))
	})

	t.Run("Error_InvalidInput", func(t *testing.T) {
		_, svc, _ := setupApplicationService(t)

		testCases := []struct {
			name  string
			input *model.ApplyInput
		}{
			{"NoTuitionId", &model.ApplyInput{TutorEmail: "t@example.com", ExpectedSalary: 100}},
			{"NoTutorEmail", &model.ApplyInput{TuitionId: uuid.NewString(), ExpectedSalary: 100}},
			{"NoSalary", &model.ApplyInput{TuitionId: uuid.NewString(), TutorEmail: "t@example.com"}},
			{"MalformedId", &model.ApplyInput{TuitionId: "not-a-uuid", TutorEmail: "t@example.com", ExpectedSalary: 100}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Apply(context.Background(), tc.input)
				assert.True(t, errors.Is(err, errdefs.ErrValidation))
			})
		}
	})

	t.Run("Error_PostMissing", func(t *testing.T) {
		ctrl, svc, m := setupApplicationService(t)
		defer ctrl.Finish()

		tuitionId := uuid.New()
		m.applicationRepo.EXPECT().GetApplicationByPostAndTutor(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errdefs.ErrNotFound)
		m.tuitionRepo.EXPECT().GetPost(gomock.Any(), tuitionId).Return(nil, errdefs.ErrNotFound)

		_, err := svc.Apply(context.Background(), &model.ApplyInput{
			TuitionId:      tuitionId.String(),
			TutorEmail:     "tutor@example.com",
			ExpectedSalary: 4000,
		})
		assert.True(t, errors.Is(err, errdefs.ErrNotFound))
	})

	t.Run("Error_CounterBumpRollsBack", func(t *testing.T) {
		ctrl, svc, m := setupApplicationService(t)
		defer ctrl.Finish()

		tuitionId := uuid.New()
		m.applicationRepo.EXPECT().GetApplicationByPostAndTutor(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errdefs.ErrNotFound)
		m.tuitionRepo.EXPECT().GetPost(gomock.Any(), tuitionId).
			Return(&model.TuitionPost{Id: tuitionId, UserEmail: "student@example.com"}, nil)
		m.applicationRepo.EXPECT().NewApplicationCreationTx(gomock.Any()).Return(m.tx, nil)
		m.tx.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(&model.Application{}, nil)
		m.tx.EXPECT().IncrementAppliedCount(gomock.Any(), tuitionId).Return(errors.New("bump failed"))
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := svc.Apply(context.Background(), &model.ApplyInput{
			TuitionId:      tuitionId.String(),
			TutorEmail:     "tutor@example.com",
			ExpectedSalary: 4000,
		})
		assert.EqualError(t, err, "bump failed")
	})
}

func TestListByTutor(t *testing.T) {
	t.Run("Success_DeletedPostKeepsApplication", func(t *testing.T) {
		ctrl, svc, m := setupApplicationService(t)
		defer ctrl.Finish()

		liveId := uuid.New()
		goneId := uuid.New()
		m.applicationRepo.EXPECT().ListApplicationsByTutor(gomock.Any(), "tutor@example.com").
			Return([]*model.Application{
				{Id: uuid.New(), TuitionId: liveId},
				{Id: uuid.New(), TuitionId: goneId},
			}, nil)
		m.tuitionRepo.EXPECT().GetPost(gomock.Any(), liveId).
			Return(&model.TuitionPost{Id: liveId, Subject: "Physics"}, nil)
		m.tuitionRepo.EXPECT().GetPost(gomock.Any(), goneId).Return(nil, errdefs.ErrNotFound)

		result, err := svc.ListByTutor(context.Background(), "tutor@example.com")
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.NotNil(t, result[0].TuitionDetails)
		assert.Nil(t, result[1].TuitionDetails)
	})
}

func TestListOngoing(t *testing.T) {
	t.Run("Success_StudentFilter", func(t *testing.T) {
		ctrl, svc, m := setupApplicationService(t)
		defer ctrl.Finish()

		m.applicationRepo.EXPECT().ListOngoing(gomock.Any(), service.OngoingFilterStudent, "s@example.com").
			Return([]*model.Application{}, nil)

		_, err := svc.ListOngoing(context.Background(), "s@example.com", "Student")
		assert.NoError(t, err)
	})

	t.Run("Success_TutorFilter", func(t *testing.T) {
		ctrl, svc, m := setupApplicationService(t)
		defer ctrl.Finish()

		m.applicationRepo.EXPECT().ListOngoing(gomock.Any(), service.OngoingFilterTutor, "t@example.com").
			Return([]*model.Application{}, nil)

		_, err := svc.ListOngoing(context.Background(), "t@example.com", "tutor")
		assert.NoError(t, err)
	})

	t.Run("Error_UnknownRole", func(t *testing.T) {
		_, svc, _ := setupApplicationService(t)

		_, err := svc.ListOngoing(context.Background(), "x@example.com", "moderator")
		assert.True(t, errors.Is(err, errdefs.ErrForbidden))
	})
}

func TestRejectApplication(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl, svc, m := setupApplicationService(t)
		defer ctrl.Finish()

		id := uuid.New()
		m.applicationRepo.EXPECT().SetStatus(gomock.Any(), id, model.ApplicationStatusRejected).
			Return(&model.Application{Id: id, Status: model.ApplicationStatusRejected}, nil)

		app, err := svc.RejectApplication(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationStatusRejected, app.Status)
	})
}
