package models

// User is an operator account. The password never leaves the users table
// unhashed; PasswordHash is only populated on the auth lookup path.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
}
