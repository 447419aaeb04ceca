package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"etuition/internal/errdefs"
	"etuition/internal/model"
)

const postColumns = `
	id, user_email, subject, location, budget,
	status, applied_tutors_count,
	created_at, updated_at, approved_at
`

type TuitionRepository struct {
	db Querier
}

func NewTuitionRepository(db Querier) *TuitionRepository {
	return &TuitionRepository{db: db}
}

func (r *TuitionRepository) CreatePost(ctx context.Context, input *model.RepositoryCreatePostInput) (*model.TuitionPost, error) {
	query := `
INSERT INTO tuition_posts (id, user_email, subject, location, budget, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING` + postColumns

	var post model.TuitionPost
	err := pgxscan.Get(ctx, r.db, &post, query,
		input.Id,
		input.UserEmail,
		input.Subject,
		input.Location,
		input.Budget,
		input.Status,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &post, nil
}

func (r *TuitionRepository) GetPost(ctx context.Context, id uuid.UUID) (*model.TuitionPost, error) {
	query := `SELECT` + postColumns + `FROM tuition_posts WHERE id = $1`

	var post model.TuitionPost
	err := pgxscan.Get(ctx, r.db, &post, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &post, nil
}

func (r *TuitionRepository) GetApprovedPost(ctx context.Context, id uuid.UUID) (*model.TuitionPost, error) {
	query := `SELECT` + postColumns + `FROM tuition_posts WHERE id = $1 AND status = 'Approved'`

	var post model.TuitionPost
	err := pgxscan.Get(ctx, r.db, &post, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &post, nil
}

// ListPosts returns every post, or only the owner's when ownerEmail is set.
// Newest first.
func (r *TuitionRepository) ListPosts(ctx context.Context, ownerEmail string) ([]*model.TuitionPost, error) {
	query := `SELECT` + postColumns + `FROM tuition_posts`
	var args []any
	if ownerEmail != "" {
		query += ` WHERE user_email = $1`
		args = append(args, ownerEmail)
	}
	query += ` ORDER BY created_at DESC`

	var posts []*model.TuitionPost
	err := pgxscan.Select(ctx, r.db, &posts, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return posts, nil
}

func (r *TuitionRepository) ListApprovedPosts(ctx context.Context) ([]*model.TuitionPost, error) {
	query := `SELECT` + postColumns + `FROM tuition_posts WHERE status = 'Approved' ORDER BY created_at DESC`

	var posts []*model.TuitionPost
	err := pgxscan.Select(ctx, r.db, &posts, query)
	if err != nil {
		return nil, handleError(err)
	}
	return posts, nil
}

func (r *TuitionRepository) UpdatePost(ctx context.Context, id uuid.UUID, input *model.UpdatePostInput) (*model.TuitionPost, error) {
	query, args, err := buildPostUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var post model.TuitionPost
	err = pgxscan.Get(ctx, r.db, &post, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &post, nil
}

func (r *TuitionRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.PostStatus, approvedAt *time.Time) (*model.TuitionPost, error) {
	query := `
UPDATE tuition_posts
SET status = $1, updated_at = now(), approved_at = $2
WHERE id = $3
RETURNING` + postColumns

	var post model.TuitionPost
	err := pgxscan.Get(ctx, r.db, &post, query, status, approvedAt, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &post, nil
}

func (r *TuitionRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tuition_posts WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
