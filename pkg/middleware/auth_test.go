package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-api/pkg/authorizer"
	"booking-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubVerifier struct {
	profile  *authorizer.Profile
	err      error
	gotToken string
}

func (v *stubVerifier) VerifySession(_ context.Context, token string) (*authorizer.Profile, error) {
	v.gotToken = token
	if v.err != nil {
		return nil, v.err
	}
	return v.profile, nil
}

func callAuth(t *testing.T, verifier SessionVerifier, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	Auth(verifier, zap.NewNop())(next).ServeHTTP(rec, req)
	return rec, gotUserID
}

func TestAuth_ValidToken(t *testing.T) {
	verifier := &stubVerifier{profile: &authorizer.Profile{ID: "user-42", Email: "a@b.test"}}

	rec, userID := callAuth(t, verifier, "Bearer good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "good-token", verifier.gotToken)
	assert.Equal(t, "user-42", userID)
}

func TestAuth_MissingOrMalformedHeader(t *testing.T) {
	verifier := &stubVerifier{profile: &authorizer.Profile{ID: "user-42"}}

	for _, header := range []string{"", "good-token", "Basic abc123"} {
		rec, _ := callAuth(t, verifier, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
	// The verifier must never be consulted without a bearer token.
	assert.Empty(t, verifier.gotToken)
}

func TestAuth_RejectedToken(t *testing.T) {
	verifier := &stubVerifier{err: authorizer.ErrUnauthorized}

	rec, _ := callAuth(t, verifier, "Bearer expired-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ProviderFailure(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("connection refused")}

	rec, _ := callAuth(t, verifier, "Bearer any-token")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
