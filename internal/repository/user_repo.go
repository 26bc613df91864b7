package repository

import (
	"context"
	"database/sql"
	"errors"

	"courseapi/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateEmail is returned when an insert trips the unique index on
// email_address. The index backstops the check-then-create race between the
// validator's uniqueness lookup and the insert.
var ErrDuplicateEmail = errors.New("email address already in use")

// UserRepository defines the interface for interacting with user records.
type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) error
	// GetUserByEmail retrieves a user by exact email address match.
	// Returns (nil, nil) when no user exists.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new UserRepository.
func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, u *model.User) error {
	query := `INSERT INTO users (first_name, last_name, email_address, password)
              VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.EmailAddress, u.Password).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT id, first_name, last_name, email_address, password, created_at, updated_at
              FROM users WHERE email_address = $1`
	row := r.db.QueryRowContext(ctx, query, email)
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
