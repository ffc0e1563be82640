package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinPasswordLength is the minimum accepted password length for new
// and updated credentials.
const MinPasswordLength = 6

// User represents a registered user account.
//
// Password holds the plaintext secret only transiently, during signup or a
// credential update, and is never persisted or serialized. HashedPassword
// is the stored bcrypt hash; it is excluded from JSON so it can never leak
// through an API response.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given name, email and plaintext
// password. It assigns a fresh UUID and creation/update timestamps.
// Returns an error if validation fails.
//
// The caller is responsible for hashing the password before storing the user.
func NewUser(name, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns a domain error if any field fails validation.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}

	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
	} else {
		// No plaintext password means this is an already-persisted user,
		// which must carry a credential hash.
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}

// Redacted returns a copy of the user with all credential material blanked.
// Every user object leaving the service boundary goes through this.
func (u *User) Redacted() *User {
	redacted := *u
	redacted.Password = ""
	redacted.HashedPassword = ""
	return &redacted
}
