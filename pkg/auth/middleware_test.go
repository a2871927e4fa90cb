package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := r.Context().Value(VendorIDKey).(int)
		assert.True(t, ok)
		assert.Equal(t, 123, vendorID)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{
			name: "Valid token",
			header: func() string {
				token, _ := jwtService.GenerateJWT(123, time.Now().Add(time.Hour))
				return "Bearer " + token
			}(),
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Missing Bearer prefix",
			header:       "token-without-prefix",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid token",
			header:       "Bearer invalid.token.string",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Expired token",
			header: func() string {
				token, _ := jwtService.GenerateJWT(123, time.Now().Add(-time.Hour))
				return "Bearer " + token
			}(),
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
