package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

var (
	ErrUserNotFound     = fmt.Errorf("user %w", entities.ErrNotFound)
	ErrEmailTaken       = fmt.Errorf("email already registered: %w", entities.ErrConstraintViolation)
	ErrInvalidUserID    = fmt.Errorf("%w: invalid user id", entities.ErrValidation)
	ErrInvalidUserName  = fmt.Errorf("%w: invalid user name", entities.ErrValidation)
	ErrInvalidUserEmail = fmt.Errorf("%w: invalid email", entities.ErrValidation)
	ErrInvalidPassword  = fmt.Errorf("%w: password must have at least %d characters", entities.ErrValidation, MinPasswordLength)
)

type UserInput struct {
	Name     string
	Email    string
	Password string
}

type IUserUseCase interface {
	Register(ctx context.Context, in UserInput) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo interfaces.IUserRepository
	cost int
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, cost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (u *UserUseCase) WithHashCost(cost int) *UserUseCase {
	u.cost = cost
	return u
}

func (u *UserUseCase) Register(ctx context.Context, in UserInput) (entities.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.User{}, ErrInvalidUserName
	}
	email := entities.NormalizeEmail(in.Email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return entities.User{}, ErrInvalidUserEmail
	}
	if len(in.Password) < MinPasswordLength {
		return entities.User{}, ErrInvalidPassword
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, entities.ErrConstraintViolation) {
			return entities.User{}, ErrEmailTaken
		}
		return entities.User{}, err
	}
	log.Printf("[user][usecase] registered user_id=%s", created.ID)
	return created, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

// Delete removes a user together with every quotation they requested.
func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	log.Printf("[user][usecase] deleted user_id=%s", user.ID)
	return nil
}
