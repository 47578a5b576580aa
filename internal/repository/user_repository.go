package repository

import (
	"context"
	"time"

	"backoffice-cms/internal/domain/entity"
)

type UserRepository interface {
	// Get retrieves a user by ID. Returns (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
	// Create inserts the user and assigns its ID. A duplicate email is
	// reported as *entity.ConflictError on field "email".
	Create(ctx context.Context, user *entity.User) error
	// Update persists name, email, role, active flag and password hash.
	// Duplicate emails surface as *entity.ConflictError on field "email".
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
	// TouchLastLogin records a successful authentication.
	TouchLastLogin(ctx context.Context, id int64, t time.Time) error
}
