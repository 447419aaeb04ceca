package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"etuition/internal/ctxdata"
	"etuition/internal/errdefs"
	"etuition/internal/model"
	"etuition/internal/service"
	"etuition/internal/service/mocks"
)

func setupTuitionService(t *testing.T) (*gomock.Controller, *service.TuitionService, *mocks.MockTuitionRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	mockTuitionRepo := mocks.NewMockTuitionRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewTuitionService(mockTuitionRepo, mockUserRepo)
	return ctrl, svc, mockTuitionRepo, mockUserRepo
}

func emailCtx(email string) context.Context {
	return ctxdata.WithUserEmail(context.Background(), email)
}

func TestCreatePost(t *testing.T) {
	t.Run("Success_StartsPending", func(t *testing.T) {
		ctrl, svc, mockTuitionRepo, _ := setupTuitionService(t)
		defer ctrl.Finish()

		mockTuitionRepo.EXPECT().CreatePost(gomock.Any(), gomock.AssignableToTypeOf(&model.RepositoryCreatePostInput{})).
			DoAndReturn(func(_ context.Context, input *model.RepositoryCreatePostInput) (*model.TuitionPost, error) {
				assert.Equal(t, model.PostStatusPending, input.Status)
				return &model.TuitionPost{Id: input.Id, Subject: input.Subject, Status: input.Status}, nil
			})

		post, err := svc.CreatePost(context.Background(), &model.CreatePostInput{
			UserEmail: "s@example.com",
			Subject:   "Mathematics",
			Location:  "Dhaka",
			Budget:    5000,
		})
		assert.NoError(t, err)
		assert.Equal(t, model.PostStatusPending, post.Status)
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		_, svc, _, _ := setupTuitionService(t)

		testCases := []struct {
			name  string
			input *model.CreatePostInput
		}{
			{"NoSubject", &model.CreatePostInput{Location: "Dhaka", Budget: 5000}},
			{"NoLocation", &model.CreatePostInput{Subject: "Math", Budget: 5000}},
			{"NoBudget", &model.CreatePostInput{Subject: "Math", Location: "Dhaka"}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.CreatePost(context.Background(), tc.input)
				assert.True(t, errors.Is(err, errdefs.ErrValidation))
			})
		}
	})
}

func TestUpdatePost(t *testing.T) {
	t.Run("Success_Owner", func(t *testing.T) {
		ctrl, svc, mockTuitionRepo, _ := setupTuitionService(t)
		defer ctrl.Finish()

		id := uuid.New()
		mockTuitionRepo.EXPECT().GetPost(gomock.Any(), id).
			Return(&model.TuitionPost{Id: id, UserEmail: "owner@example.com"}, nil)
		mockTuitionRepo.EXPECT().UpdatePost(gomock.Any(), id, gomock.Any()).
			Return(&model.TuitionPost{Id: id, UserEmail: "owner@example.com", Status: model.PostStatusPending}, nil)

		post, err := svc.UpdatePost(emailCtx("owner@example.com"), id, &model.UpdatePostInput{})
		assert.NoError(t, err)
		assert.Equal(t, model.PostStatusPending, post.Status)
	})

	t.Run("Success_Admin", func(t *testing.T) {
		ctrl, svc, mockTuitionRepo, mockUserRepo := setupTuitionService(t)
		defer ctrl.Finish()

		id := uuid.New()
		mockTuitionRepo.EXPECT().GetPost(gomock.Any(), id).
			Return(&model.TuitionPost{Id: id, UserEmail: "owner@example.com"}, nil)
		mockUserRepo.EXPECT().GetUserByEmail(gomock.Any(), "boss@example.com").
			Return(&model.User{Email: "boss@example.com", Role: model.RoleAdmin}, nil)
		mockTuitionRepo.EXPECT().UpdatePost(gomock.Any(), id, gomock.Any()).
			Return(&model.TuitionPost{Id: id}, nil)

		_, err := svc.UpdatePost(emailCtx("boss@example.com"), id, &model.UpdatePostInput{})
		assert.NoError(t, err)
	})

	t.Run("Error_NotOwnerNotAdmin", func(t *testing.T) {
		ctrl, svc, mockTuitionRepo, mockUserRepo := setupTuitionService(t)
		defer ctrl.Finish()

		id := uuid.New()
		mockTuitionRepo.EXPECT().GetPost(gomock.Any(), id).
			Return(&model.TuitionPost{Id: id, UserEmail: "owner@example.com"}, nil)
		mockUserRepo.EXPECT().GetUserByEmail(gomock.Any(), "other@example.com").
			Return(&model.User{Email: "other@example.com", Role: model.RoleTutor}, nil)

		_, err := svc.UpdatePost(emailCtx("other@example.com"), id, &model.UpdatePostInput{})
		assert.True(t, errors.Is(err, errdefs.ErrForbidden))
	})

	t.Run("Error_NoIdentity", func(t *testing.T) {
		_, svc, _, _ := setupTuitionService(t)

		_, err := svc.UpdatePost(context.Background(), uuid.New(), &model.UpdatePostInput{})
		assert.True(t, errors.Is(err, errdefs.ErrUnauthorized))
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("Error_CallerUnknown", func(t *testing.T) {
		ctrl, svc, mockTuitionRepo, mockUserRepo := setupTuitionService(t)
		defer ctrl.Finish()

		id := uuid.New()
		mockTuitionRepo.EXPECT().GetPost(gomock.Any(), id).
			Return(&model.TuitionPost{Id: id, UserEmail: "owner@example.com"}, nil)
		mockUserRepo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, errdefs.ErrNotFound)

		err := svc.DeletePost(emailCtx("ghost@example.com"), id)
		assert.True(t, errors.Is(err, errdefs.ErrForbidden))
	})
}

func TestSetPostStatus(t *testing.T) {
	t.Run("Success_ApprovedStampsTime", func(t *testing.T) {
		ctrl, svc, mockTuitionRepo, _ := setupTuitionService(t)
		defer ctrl.Finish()

		id := uuid.New()
		mockTuitionRepo.EXPECT().SetStatus(gomock.Any(), id, model.PostStatusApproved, gomock.Not(gomock.Nil())).
			Return(&model.TuitionPost{Id: id, Status: model.PostStatusApproved}, nil)

		post, err := svc.SetStatus(context.Background(), id, model.PostStatusApproved)
		assert.NoError(t, err)
		assert.Equal(t, model.PostStatusApproved, post.Status)
	})

	t.Run("Success_RejectedNoTimestamp", func(t *testing.T) {
		ctrl, svc, mockTuitionRepo, _ := setupTuitionService(t)
		defer ctrl.Finish()

		id := uuid.New()
		mockTuitionRepo.EXPECT().SetStatus(gomock.Any(), id, model.PostStatusRejected, gomock.Nil()).
			Return(&model.TuitionPost{Id: id, Status: model.PostStatusRejected}, nil)

		_, err := svc.SetStatus(context.Background(), id, model.PostStatusRejected)
		assert.NoError(t, err)
	})

	t.Run("Error_PendingNotReachable", func(t *testing.T) {
		_, svc, _, _ := setupTuitionService(t)

		_, err := svc.SetStatus(context.Background(), uuid.New(), model.PostStatusPending)
		assert.True(t, errors.Is(err, errdefs.ErrValidation))
	})
}
