package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksr/files/internal/response"
	"github.com/ksr/files/internal/user"
)

const testSecret = "test-secret"

type stubValidator struct {
	principal *user.User
	err       error

	gotToken   string
	gotSubject string
}

func (s *stubValidator) Validate(_ context.Context, token, subjectID string) (*user.User, error) {
	s.gotToken = token
	s.gotSubject = subjectID
	return s.principal, s.err
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func serveAuth(v TokenValidator, header string) (*httptest.ResponseRecorder, *user.User) {
	var seen *user.User
	h := RequireAuth(testSecret, v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/products/prod-42/image", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, seen
}

func TestRequireAuth_Accepts(t *testing.T) {
	u := &user.User{ID: "0b7e7a52-3f57-4bb4-9f4b-7d3e0c3a9a10", Name: "Admin"}
	v := &stubValidator{principal: u}
	tok := signToken(t, testSecret, jwt.MapClaims{
		"sub": u.ID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, seen := serveAuth(v, "Bearer "+tok)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Same(t, u, seen)
	assert.Equal(t, tok, v.gotToken)
	assert.Equal(t, u.ID, v.gotSubject)
}

func TestRequireAuth_FallsBackToIDClaim(t *testing.T) {
	v := &stubValidator{principal: &user.User{ID: "x"}}
	tok := signToken(t, testSecret, jwt.MapClaims{"id": "legacy-subject"})

	rec, _ := serveAuth(v, "Bearer "+tok)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "legacy-subject", v.gotSubject)
}

func TestRequireAuth_Rejects(t *testing.T) {
	valid := signToken(t, testSecret, jwt.MapClaims{"sub": "u-1"})

	tests := []struct {
		name   string
		header string
		v      *stubValidator
	}{
		{"missing header", "", &stubValidator{}},
		{"wrong scheme", "Basic abc", &stubValidator{}},
		{"empty token", "Bearer ", &stubValidator{}},
		{"bad signature", "Bearer " + signToken(t, "other", jwt.MapClaims{"sub": "u-1"}), &stubValidator{}},
		{"expired jwt", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"sub": "u-1",
			"exp": time.Now().Add(-time.Minute).Unix(),
		}), &stubValidator{}},
		{"not in token store", "Bearer " + valid, &stubValidator{principal: nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, seen := serveAuth(tt.v, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, seen)

			var body response.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
			assert.False(t, body.Status)
			assert.Equal(t, "Product", body.Heading)
		})
	}
}

func TestRequireAuth_ValidatorFailureIs500(t *testing.T) {
	v := &stubValidator{err: errors.New("db down")}
	tok := signToken(t, testSecret, jwt.MapClaims{"sub": "u-1"})

	rec, seen := serveAuth(v, "Bearer "+tok)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, seen)
}

func TestRequireAuth_RejectsNoneAlgorithm(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "u-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	v := &stubValidator{principal: &user.User{ID: "u-1"}}
	rec, _ := serveAuth(v, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, v.gotToken)
}
