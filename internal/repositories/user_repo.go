package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"railway/internal/domain"
	"railway/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type UserRepo struct {
	DB *sql.DB
}

const mysqlErrDuplicateEntry = 1062

// Create inserts a new user and returns its id. Username uniqueness is
// enforced by the store; a duplicate comes back as ConflictError.
func (r UserRepo) Create(username, passwordHash, email string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO users (username, password_hash, email)
		VALUES (?, ?, ?)
	`, strings.TrimSpace(username), passwordHash, strings.TrimSpace(email))
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return 0, domain.ConflictError{Resource: "user", Msg: "username already exists", Err: err}
		}
		return 0, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return id, nil
}

// GetByUsername fetches a user including the stored password hash.
// Returns sql.ErrNoRows when the username is unknown.
func (r UserRepo) GetByUsername(username string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, email
		FROM users
		WHERE username = ?
	`, strings.TrimSpace(username)).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}
