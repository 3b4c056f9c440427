package interfaces

import (
	"context"

	"hero_seguros/internal/domain/entities"
)

// IUserRepository abstracts persistence for User.
//
// Create fails with entities.ErrConstraintViolation on a duplicate email.
// Delete removes the user's quotations as well.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Delete(ctx context.Context, id string) error
}
