package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnetwk/user-api/internal/api"
	"github.com/cnetwk/user-api/internal/domain"
	"github.com/cnetwk/user-api/internal/mocks"
	"github.com/cnetwk/user-api/internal/service"
)

// newTestRouter builds a chi router with the user handler mounted the same
// way the server does, backed by an in-memory store.
func newTestRouter() (http.Handler, *mocks.MockUserStore) {
	userStore := mocks.NewMockUserStore()
	hasher := &mocks.MockPasswordHasher{}
	verifier := &mocks.MockPasswordVerifier{MatchHashed: true}
	svc := service.NewUserService(userStore, hasher, verifier, nil)
	handler := api.NewUserHandler(svc, nil)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})
	return r, userStore
}

// doJSON performs a JSON request against the router and returns the recorder.
func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSignUpEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{
			name: "valid signup",
			payload: map[string]any{
				"name":     "Ann",
				"email":    "a@x.com",
				"password": "abcdef",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing name",
			payload: map[string]any{
				"email":    "a@x.com",
				"password": "abcdef",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			payload: map[string]any{
				"name":     "Ann",
				"password": "abcdef",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]any{
				"name":     "Ann",
				"email":    "a@x.com",
				"password": "abc",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter()

			recorder := doJSON(t, router, "POST", "/api/users/signup", tt.payload)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp api.UserEnvelope
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Equal(t, "a@x.com", resp.User.Email)
			}
		})
	}
}

func TestSignUpDuplicateEmailEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter()
	payload := map[string]any{"name": "Ann", "email": "a@x.com", "password": "abcdef"}

	recorder := doJSON(t, router, "POST", "/api/users/signup", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	payload["name"] = "Bob"
	payload["password"] = "different"
	recorder = doJSON(t, router, "POST", "/api/users/signup", payload)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCreateUserEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter()

	t.Run("returns bare user on success", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/users", map[string]any{
			"name":     "Ann",
			"email":    "a@x.com",
			"password": "abcdef",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var user domain.User
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&user))
		assert.Equal(t, "a@x.com", user.Email)
	})

	t.Run("missing password is rejected", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/users", map[string]any{
			"name":  "Bob",
			"email": "b@x.com",
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter()
	signup := map[string]any{"name": "Ann", "email": "a@x.com", "password": "abcdef"}
	recorder := doJSON(t, router, "POST", "/api/users/signup", signup)
	require.Equal(t, http.StatusCreated, recorder.Code)

	tests := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{
			name:       "valid login",
			payload:    map[string]any{"email": "a@x.com", "password": "abcdef"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			payload:    map[string]any{"email": "a@x.com", "password": "wrong"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown email",
			payload:    map[string]any{"email": "nobody@x.com", "password": "abcdef"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing email",
			payload:    map[string]any{"password": "abcdef"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing password",
			payload:    map[string]any{"email": "a@x.com"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doJSON(t, router, "POST", "/api/users/login", tt.payload)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestLoginErrorDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter()
	signup := map[string]any{"name": "Ann", "email": "a@x.com", "password": "abcdef"}
	recorder := doJSON(t, router, "POST", "/api/users/signup", signup)
	require.Equal(t, http.StatusCreated, recorder.Code)

	wrongPassword := doJSON(t, router, "POST", "/api/users/login",
		map[string]any{"email": "a@x.com", "password": "wrong"})
	unknownEmail := doJSON(t, router, "POST", "/api/users/login",
		map[string]any{"email": "nobody@x.com", "password": "abcdef"})

	var respA, respB map[string]any
	require.NoError(t, json.NewDecoder(wrongPassword.Body).Decode(&respA))
	require.NoError(t, json.NewDecoder(unknownEmail.Body).Decode(&respB))

	assert.Equal(t, respA["error"], respB["error"],
		"unknown email and wrong password must be indistinguishable")
}

func TestGetUsersEndpoints(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter()
	recorder := doJSON(t, router, "POST", "/api/users/signup",
		map[string]any{"name": "Ann", "email": "a@x.com", "password": "abcdef"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created api.UserEnvelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&created))

	t.Run("list all", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/users", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var users []domain.User
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&users))
		require.Len(t, users, 1)
		assert.Equal(t, "a@x.com", users[0].Email)
	})

	t.Run("get by id", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/users/"+created.User.ID.String(), nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var user domain.User
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&user))
		assert.Equal(t, created.User.ID, user.ID)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/users/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/users/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestUpdateEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter()
	recorder := doJSON(t, router, "POST", "/api/users/signup",
		map[string]any{"name": "Ann", "email": "a@x.com", "password": "abcdef"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created api.UserEnvelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&created))
	id := created.User.ID.String()

	t.Run("updates name and email", func(t *testing.T) {
		recorder := doJSON(t, router, "PUT", "/api/users/"+id,
			map[string]any{"name": "Ann Smith", "email": "ann@x.com"})
		require.Equal(t, http.StatusOK, recorder.Code)

		var user domain.User
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&user))
		assert.Equal(t, "Ann Smith", user.Name)
		assert.Equal(t, "ann@x.com", user.Email)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		recorder := doJSON(t, router, "PUT", "/api/users/"+uuid.NewString(),
			map[string]any{"name": "X", "email": "x@x.com"})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestDeleteEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter()
	recorder := doJSON(t, router, "POST", "/api/users/signup",
		map[string]any{"name": "Ann", "email": "a@x.com", "password": "abcdef"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created api.UserEnvelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&created))
	id := created.User.ID.String()

	recorder = doJSON(t, router, "DELETE", "/api/users/"+id, nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = doJSON(t, router, "GET", "/api/users/"+id, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, router, "DELETE", "/api/users/"+id, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestTestConnectionEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("reports count", func(t *testing.T) {
		router, _ := newTestRouter()
		recorder := doJSON(t, router, "POST", "/api/users/signup",
			map[string]any{"name": "Ann", "email": "a@x.com", "password": "abcdef"})
		require.Equal(t, http.StatusCreated, recorder.Code)

		recorder = doJSON(t, router, "GET", "/api/users/test", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var status map[string]any
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&status))
		assert.Equal(t, "success", status["status"])
		assert.Equal(t, float64(1), status["userCount"])
	})

	t.Run("reports degraded status on store failure", func(t *testing.T) {
		router, userStore := newTestRouter()
		userStore.CountFn = func(ctx context.Context) (int64, error) {
			return 0, fmt.Errorf("connection refused")
		}

		recorder := doJSON(t, router, "GET", "/api/users/test", nil)
		require.Equal(t, http.StatusInternalServerError, recorder.Code)

		var status map[string]any
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&status))
		assert.Equal(t, "error", status["status"])
	})
}

// TestSignupLoginRoundTrip walks the full scenario: signup, login with the
// wrong password, then login with the right one and get the same user back.
func TestSignupLoginRoundTrip(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter()

	recorder := doJSON(t, router, "POST", "/api/users/signup",
		map[string]any{"name": "Ann", "email": "a@x.com", "password": "abcdef"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var signup map[string]any
	raw := recorder.Body.Bytes()
	require.NoError(t, json.Unmarshal(raw, &signup))

	user, ok := signup["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "hashed_password")
	assert.NotContains(t, string(raw), "abcdef", "response must not echo the secret")

	recorder = doJSON(t, router, "POST", "/api/users/login",
		map[string]any{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(t, router, "POST", "/api/users/login",
		map[string]any{"email": "a@x.com", "password": "abcdef"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var login api.UserEnvelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&login))
	assert.Equal(t, user["id"], login.User.ID.String())
}
