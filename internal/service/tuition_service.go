package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"etuition/internal/ctxdata"
	"etuition/internal/errdefs"
	"etuition/internal/model"
)

type TuitionService struct {
	tuitionRepository TuitionRepository
	userRepository    UserRepository
}

func NewTuitionService(tuitionRepository TuitionRepository, userRepository UserRepository) *TuitionService {
	return &TuitionService{
		tuitionRepository: tuitionRepository,
		userRepository:    userRepository,
	}
}

func (s *TuitionService) CreatePost(ctx context.Context, input *model.CreatePostInput) (*model.TuitionPost, error) {
	if input.Subject == "" || input.Location == "" || input.Budget == 0 {
		return nil, errdefs.ErrValidation
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return s.tuitionRepository.CreatePost(ctx, &model.RepositoryCreatePostInput{
		Id:        id,
		UserEmail: input.UserEmail,
		Subject:   input.Subject,
		Location:  input.Location,
		Budget:    input.Budget,
		Status:    model.PostStatusPending,
	})
}

func (s *TuitionService) ListPosts(ctx context.Context, ownerEmail string) ([]*model.TuitionPost, error) {
	return s.tuitionRepository.ListPosts(ctx, ownerEmail)
}

func (s *TuitionService) ListApprovedPosts(ctx context.Context) ([]*model.TuitionPost, error) {
	return s.tuitionRepository.ListApprovedPosts(ctx)
}

func (s *TuitionService) GetApprovedPost(ctx context.Context, id uuid.UUID) (*model.TuitionPost, error) {
	return s.tuitionRepository.GetApprovedPost(ctx, id)
}

// UpdatePost is restricted to the post owner or an admin. Any accepted edit
// drops the post back to Pending for re-review.
func (s *TuitionService) UpdatePost(ctx context.Context, id uuid.UUID, input *model.UpdatePostInput) (*model.TuitionPost, error) {
	if err := s.requireOwnerOrAdmin(ctx, id); err != nil {
		return nil, err
	}
	return s.tuitionRepository.UpdatePost(ctx, id, input)
}

func (s *TuitionService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.requireOwnerOrAdmin(ctx, id); err != nil {
		return err
	}
	return s.tuitionRepository.DeletePost(ctx, id)
}

// SetStatus records an admin review decision. Only Approved and Rejected are
// reachable here; posts re-enter Pending through owner edits.
func (s *TuitionService) SetStatus(ctx context.Context, id uuid.UUID, status model.PostStatus) (*model.TuitionPost, error) {
	if status != model.PostStatusApproved && status != model.PostStatusRejected {
		return nil, errdefs.ErrValidation
	}

	var approvedAt *time.Time
	if status == model.PostStatusApproved {
		now := time.Now()
		approvedAt = &now
	}
	return s.tuitionRepository.SetStatus(ctx, id, status, approvedAt)
}

func (s *TuitionService) requireOwnerOrAdmin(ctx context.Context, id uuid.UUID) error {
	email, ok := ctxdata.GetUserEmail(ctx)
	if !ok {
		return errdefs.ErrUnauthorized
	}

	post, err := s.tuitionRepository.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post.UserEmail == email {
		return nil
	}

	caller, err := s.userRepository.GetUserByEmail(ctx, email)
	if errors.Is(err, errdefs.ErrNotFound) {
		return errdefs.ErrForbidden
	}
	if err != nil {
		return err
	}
	if caller.Role != model.RoleAdmin {
		return errdefs.ErrForbidden
	}
	return nil
}
