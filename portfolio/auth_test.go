package portfolio

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key any, c claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, c).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestVerifyToken(t *testing.T) {
	valid := claims{
		Email: "owner@noiruxe.app",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noSubject := valid
	noSubject.Subject = ""

	testCases := []struct {
		name          string
		token         string
		expectedUID   string
		expectedError string
	}{
		{
			name:        "valid_token",
			token:       signToken(t, jwt.SigningMethodHS256, testSecret, valid),
			expectedUID: "user-1",
		},
		{
			name:          "missing_token",
			token:         "",
			expectedError: "missing token",
		},
		{
			name:          "expired_token",
			token:         signToken(t, jwt.SigningMethodHS256, testSecret, expired),
			expectedError: "token expired",
		},
		{
			name:          "wrong_secret",
			token:         signToken(t, jwt.SigningMethodHS256, []byte("other"), valid),
			expectedError: "invalid token",
		},
		{
			name:          "wrong_algorithm",
			token:         signToken(t, jwt.SigningMethodHS512, testSecret, valid),
			expectedError: "invalid token",
		},
		{
			name:          "no_subject",
			token:         signToken(t, jwt.SigningMethodHS256, testSecret, noSubject),
			expectedError: "token has no subject",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uid, data, err := verifyToken(tc.token, testSecret)
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, data)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedUID, string(uid))
			assert.Equal(t, tc.token, data.Token)
			assert.Equal(t, "owner@noiruxe.app", data.Email)
		})
	}
}
