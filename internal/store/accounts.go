package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"groshop/m/domain"
)

// AccountRepository persists user accounts.
type AccountRepository interface {
	Create(ctx context.Context, user domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	Delete(ctx context.Context, id int64) error
}

type accountRepo struct {
	db *sqlx.DB
}

// NewAccountRepository returns a sqlx-backed AccountRepository.
func NewAccountRepository(db *sqlx.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, user domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password, name, department, dob, phone, address, role)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.Password, user.Name, user.Department, user.DOB, user.Phone, user.Address, user.Role)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *accountRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT id, username, password, name, department, dob, phone, address, role, created_at
         FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	return user, err
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT id, username, password, name, department, dob, phone, address, role, created_at
         FROM users WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	return user, err
}

func (r *accountRepo) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.SelectContext(ctx, &users,
		`SELECT id, username, password, name, department, dob, phone, address, role, created_at
         FROM users ORDER BY id ASC`)
	return users, err
}

// Update rewrites every field except the password hash, which has its own
// path so a blank password form field never clobbers the stored hash.
func (r *accountRepo) Update(ctx context.Context, user domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, name = ?, department = ?, dob = ?, phone = ?, address = ?
         WHERE id = ?`,
		user.Username, user.Name, user.Department, user.DOB, user.Phone, user.Address, user.ID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicate
		}
		return err
	}
	return rowsOrNotFound(res)
}

func (r *accountRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password = ? WHERE id = ?`, hash, id)
	if err != nil {
		return err
	}
	return rowsOrNotFound(res)
}

func (r *accountRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return rowsOrNotFound(res)
}

func rowsOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
