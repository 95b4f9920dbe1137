package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var testSecret = []byte("test-secret")

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthenticate(t *testing.T) {
	valid := sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	expired := sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"user_id": 42})
	noUser := sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"name": "x"})
	stringUser := sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"user_id": "7"})

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
		wantUser   int
	}{
		{"bearer header", "Bearer " + valid, "", http.StatusOK, 42},
		{"query token", "", "?token=" + valid, http.StatusOK, 42},
		{"string user id", "Bearer " + stringUser, "", http.StatusOK, 7},
		{"missing", "", "", http.StatusUnauthorized, 0},
		{"wrong scheme", "Basic " + valid, "", http.StatusUnauthorized, 0},
		{"expired", "Bearer " + expired, "", http.StatusUnauthorized, 0},
		{"wrong key", "Bearer " + wrongKey, "", http.StatusUnauthorized, 0},
		{"no user claim", "Bearer " + noUser, "", http.StatusUnauthorized, 0},
		{"garbage", "Bearer not.a.token", "", http.StatusUnauthorized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser int
			h := Authenticate(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, err := GetUserIDFromContext(r.Context())
				if err != nil {
					t.Errorf("GetUserIDFromContext: %v", err)
				}
				gotUser = id
			}))

			req := httptest.NewRequest(http.MethodGet, "/championships"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status: want %d, got %d (%s)", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if gotUser != tt.wantUser {
				t.Errorf("user: want %d, got %d", tt.wantUser, gotUser)
			}
		})
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    int
		wantErr bool
	}{
		{"float", jwt.MapClaims{"user_id": float64(3)}, 3, false},
		{"fraction", jwt.MapClaims{"user_id": 3.5}, 0, true},
		{"zero", jwt.MapClaims{"user_id": float64(0)}, 0, true},
		{"bad string", jwt.MapClaims{"user_id": "abc"}, 0, true},
		{"bool", jwt.MapClaims{"user_id": true}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetUserIDFromContext(ContextWithClaims(context.Background(), tt.claims))
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Fatalf("got %d, %v", got, err)
			}
		})
	}

	if _, err := GetUserIDFromContext(context.Background()); err == nil {
		t.Fatal("expected error without claims")
	}
}
