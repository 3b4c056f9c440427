package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hero_seguros/internal/domain/entities"
	"hero_seguros/internal/usecase/interfaces"
)

const userColumns = "id, name, email, password_hash, created_at, updated_at"

// UserRepository stores users. Quotations go with their user through
// ON DELETE CASCADE.
type UserRepository struct {
	db *sql.DB
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.PasswordHash, timeText(u.CreatedAt), timeText(u.UpdatedAt))
	if err != nil {
		return entities.User{}, mapError(err, "email "+u.Email)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	return r.get(ctx, "id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.get(ctx, "email = ?", entities.NormalizeEmail(email))
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %s: %w", id, entities.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) get(ctx context.Context, where string, arg string) (entities.User, error) {
	var u entities.User
	var createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+where, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	u.CreatedAt = parseTimeText(createdAt)
	u.UpdatedAt = parseTimeText(updatedAt)
	return u, nil
}
