package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"etuition/internal/errdefs"
	"etuition/internal/model"
)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error) {
	query := `
INSERT INTO users (
	id, email, display_name, photo_url,
	phone, firebase_uid, role
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING
	id, email, display_name, photo_url,
	phone, firebase_uid, role, created_at
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query,
		input.Id,
		input.Email,
		input.DisplayName,
		input.PhotoURL,
		input.Phone,
		input.FirebaseUID,
		input.Role,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
SELECT
	id, email, display_name, photo_url,
	phone, firebase_uid, role, created_at

FROM users
WHERE email = $1
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, email)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
SELECT
	id, email, display_name, photo_url,
	phone, firebase_uid, role, created_at

FROM users
WHERE id = $1
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	query := `
SELECT
	id, email, display_name, photo_url,
	phone, firebase_uid, role, created_at

FROM users
ORDER BY created_at DESC
`
	var users []*model.User
	err := pgxscan.Select(ctx, r.db, &users, query)
	if err != nil {
		return nil, handleError(err)
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email string, input *model.UpdateProfileInput) (*model.User, error) {
	query, args, err := buildProfileUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, email)
	var user model.User
	err = pgxscan.Get(ctx, r.db, &user, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) AdminUpdateUser(ctx context.Context, id uuid.UUID, input *model.AdminUpdateUserInput) (*model.User, error) {
	query, args, err := buildAdminUserUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var user model.User
	err = pgxscan.Get(ctx, r.db, &user, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) SetRole(ctx context.Context, id uuid.UUID, role model.Role) (*model.User, error) {
	query := `
UPDATE users
SET role = $1
WHERE id = $2
RETURNING
	id, email, display_name, photo_url,
	phone, firebase_uid, role, created_at
`
	var user model.User
	err := pgxscan.Get(ctx, r.db, &user, query, role, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
