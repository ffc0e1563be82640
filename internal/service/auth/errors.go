package auth

import "errors"

// ErrInvalidCredentials is returned when login fails, whether because the
// email is unknown or the password is wrong. The two cases deliberately
// share one error so callers cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")
