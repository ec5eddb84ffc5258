package services

import (
	"database/sql/driver"
	"errors"
	"testing"

	"railway/internal/domain"
	"railway/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return AuthService{Users: repositories.UserRepo{DB: db}}, mock
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	svc, mock := newAuthService(t)

	err := svc.Register("alice", "secret", "not-an-email")
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// No insert may reach the store on a validation failure.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected store access: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice", sqlmock.AnyArg(), "alice@example.com").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice'"})

	err := svc.Register("alice", "secret", "alice@example.com")
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, mock := newAuthService(t)

	var storedHash string
	mock.ExpectExec("INSERT INTO users").
		WithArgs("bob", hashCapture{t: t, password: "hunter2", dest: &storedHash}, "bob@example.com").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := svc.Register("bob", "hunter2", "bob@example.com"); err != nil {
		t.Fatalf("expected signup to succeed, got %v", err)
	}
	if storedHash == "hunter2" || storedHash == "" {
		t.Fatalf("password must be stored as a hash, got %q", storedHash)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// hashCapture matches any bcrypt hash of the expected password and records it.
type hashCapture struct {
	t        *testing.T
	password string
	dest     *string
}

func (h hashCapture) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	*h.dest = s
	return bcrypt.CompareHashAndPassword([]byte(s), []byte(h.password)) == nil
}

func TestRegisterSurfacesInsertIDError(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("carol", sqlmock.AnyArg(), "carol@example.com").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("insert id unavailable")))

	err := svc.Register("carol", "secret", "carol@example.com")
	if !domain.IsInternal(err) {
		t.Fatalf("expected InternalError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	svc, mock := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	mock.ExpectQuery("SELECT id, username, password_hash, email").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "email"}).
			AddRow(7, "alice", string(hash), "alice@example.com"))

	user, err := svc.Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if user == nil || user.ID != 7 {
		t.Fatalf("unexpected user %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("hash must not leak past the auth boundary")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	mock.ExpectQuery("SELECT id, username, password_hash, email").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "email"}).
			AddRow(7, "alice", string(hash), "alice@example.com"))

	user, err := svc.Authenticate("alice", "wrong")
	if err != nil {
		t.Fatalf("expected silent mismatch, got %v", err)
	}
	if user != nil {
		t.Fatalf("wrong password must not authenticate")
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("SELECT id, username, password_hash, email").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "email"}))

	user, err := svc.Authenticate("ghost", "whatever")
	if err != nil {
		t.Fatalf("expected silent mismatch, got %v", err)
	}
	if user != nil {
		t.Fatalf("unknown user must not authenticate")
	}
}
