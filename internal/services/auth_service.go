package services

import (
	"database/sql"
	"errors"
	"strings"

	"railway/internal/domain"
	"railway/internal/domain/models"
	"railway/internal/repositories"
	"railway/internal/utils"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

// AuthService registers operators and checks their credentials. There is no
// session token or lockout; the caller keeps the authenticated user in memory.
type AuthService struct {
	Users repositories.UserRepo
}

func (s AuthService) Register(username, password, email string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return domain.ValidationError{Field: "username", Msg: "must not be empty"}
	}
	if password == "" {
		return domain.ValidationError{Field: "password", Msg: "must not be empty"}
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return domain.ValidationError{Field: "email", Msg: "invalid email format", Err: err}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Err: err}
	}

	if _, err := s.Users.Create(username, string(hash), email); err != nil {
		return err
	}
	utils.LogEvent("auth", "signup", "user "+username+" registered")
	return nil
}

// Authenticate returns the matching user, or (nil, nil) when the username is
// unknown or the password does not match. The two cases are deliberately
// indistinguishable to the operator.
func (s AuthService) Authenticate(username, password string) (*models.User, error) {
	u, err := s.Users.GetByUsername(username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	u.PasswordHash = ""
	return &u, nil
}
