package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	intconfig "restaurant/internal/config"
	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id, name, email, COALESCE(phone,''), COALESCE(password_hash,''), role, status, created_at, updated_at`

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	u, err := scanUser(r.db().QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.db().QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

func (r UserRepository) Insert(ctx context.Context, u models.User) error {
	_, err := r.db().ExecContext(ctx, `
        INSERT INTO users (id, name, email, phone, password_hash, role, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
    `, u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role, u.Status)
	return err
}

// Upsert refreshes profile fields from identity-provider claims without
// touching credentials or role.
func (r UserRepository) Upsert(ctx context.Context, u models.User) error {
	_, err := r.db().ExecContext(ctx, `
        INSERT INTO users (id, name, email, role, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, NOW(), NOW())
        ON DUPLICATE KEY UPDATE
            name = VALUES(name),
            email = VALUES(email),
            updated_at = NOW()
    `, u.ID, u.Name, u.Email, u.Role, u.Status)
	return err
}

func (r UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var n int64
	err := r.db().QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&n)
	return n, err
}

func (r UserRepository) Counts(ctx context.Context, newSince time.Time) (total, recent int64, err error) {
	err = r.db().QueryRowContext(ctx, `
        SELECT COUNT(*), COALESCE(SUM(created_at >= ?), 0) FROM users WHERE role = 'customer'
    `, newSince).Scan(&total, &recent)
	return
}
