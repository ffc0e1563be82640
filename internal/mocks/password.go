package mocks

import "errors"

// ErrMockHashFailure is returned by MockPasswordHasher when configured to fail.
var ErrMockHashFailure = errors.New("mock hash failure")

// ErrMockCompareFailure is returned by MockPasswordVerifier on mismatch.
var ErrMockCompareFailure = errors.New("mock compare failure")

// MockPasswordHasher implements auth.PasswordHasher for testing.
// It "hashes" by prefixing the plaintext, keeping tests fast and inspectable.
type MockPasswordHasher struct {
	ShouldFail bool
}

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.ShouldFail {
		return "", ErrMockHashFailure
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
// It accepts hashes produced by MockPasswordHasher.
type MockPasswordVerifier struct {
	ShouldSucceed bool

	// MatchHashed, when true, compares against MockPasswordHasher output
	// instead of honoring ShouldSucceed unconditionally.
	MatchHashed bool
}

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.MatchHashed {
		if hashedPassword == "hashed:"+password {
			return nil
		}
		return ErrMockCompareFailure
	}
	if m.ShouldSucceed {
		return nil
	}
	return ErrMockCompareFailure
}
