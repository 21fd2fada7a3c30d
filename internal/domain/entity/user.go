package entity

import (
	"time"

	errs "wallet/internal/domain/error"
	coreport "wallet/internal/domain/port/core"

	"golang.org/x/crypto/bcrypt"
)

// User represents a wallet account holder
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique login name
	PasswordHash string    // bcrypt hash of the user's password
	Balance      Money     // Current balance in paise
	CreatedAt    time.Time // When the user was created
}

// NewUser creates a new user with a zero balance and a hashed password
func NewUser(username, password string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}

	u := &User{
		Username:  username,
		Balance:   0,
		CreatedAt: timeProvider.Now(),
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores the user's password
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the given password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CanDeduct reports whether the user has enough balance for a deduction
func (u *User) CanDeduct(amount Money) bool {
	return u.Balance >= amount
}
