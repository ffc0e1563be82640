package domain_test

import (
	"testing"

	"github.com/cnetwk/user-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			userName: "Ann",
			email:    "a@x.com",
			password: "abcdef",
			wantErr:  nil,
		},
		{
			name:     "blank name",
			userName: "   ",
			email:    "a@x.com",
			password: "abcdef",
			wantErr:  domain.ErrEmptyName,
		},
		{
			name:     "missing email",
			userName: "Ann",
			email:    "",
			password: "abcdef",
			wantErr:  domain.ErrEmptyEmail,
		},
		{
			name:     "password too short",
			userName: "Ann",
			email:    "a@x.com",
			password: "abcde",
			wantErr:  domain.ErrPasswordTooShort,
		},
		{
			name:     "missing password",
			userName: "Ann",
			email:    "a@x.com",
			password: "",
			wantErr:  domain.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := domain.NewUser(tt.userName, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, tt.userName, user.Name)
			assert.Equal(t, tt.email, user.Email)
			assert.False(t, user.CreatedAt.IsZero())
			assert.Equal(t, user.CreatedAt, user.UpdatedAt)
		})
	}
}

func TestValidatePersistedUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password but must
	// carry a credential hash.
	user := &domain.User{
		ID:             uuid.New(),
		Name:           "Ann",
		Email:          "a@x.com",
		HashedPassword: "$2a$10$somethinghashed",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)
}

func TestRedacted(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("Ann", "a@x.com", "abcdef")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$somethinghashed"

	redacted := user.Redacted()

	assert.Empty(t, redacted.Password)
	assert.Empty(t, redacted.HashedPassword)
	assert.Equal(t, user.ID, redacted.ID)
	assert.Equal(t, user.Email, redacted.Email)

	// The original is untouched; redaction is an outbound copy only.
	assert.Equal(t, "$2a$10$somethinghashed", user.HashedPassword)
}
