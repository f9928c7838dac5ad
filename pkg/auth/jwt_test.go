package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	tests := []struct {
		name           string
		username       string
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			username:       "drsmith",
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			username:       "drsmith",
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.username, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestGenerateJWT_NoSecret(t *testing.T) {
	jwtService := NewJWTService("")

	token, err := jwtService.GenerateJWT("drsmith", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrSecretMissing)
	assert.Empty(t, token)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectErr   error
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("drsmith", time.Now().Add(time.Hour))
				return token
			},
			expectErr: nil,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectErr:   ErrTokenInvalid,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("drsmith", time.Now().Add(-time.Hour))
				return token
			},
			expectErr: ErrTokenExpired,
		},
		{
			name: "Wrong Secret",
			setup: func() string {
				other := NewJWTService("another-secret")
				token, _ := other.GenerateJWT("drsmith", time.Now().Add(time.Hour))
				return token
			},
			expectErr: ErrTokenInvalid,
		},
		{
			name: "Missing Username Claim",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "dentismo",
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectErr: ErrTokenInvalid,
		},
		{
			name: "Wrong Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					Username: "drsmith",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectErr: ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, "drsmith", claims.Username)
			}
		})
	}
}

func TestValidateToken_NoSecret(t *testing.T) {
	jwtService := NewJWTService("")

	claims, err := jwtService.ValidateToken("whatever")
	assert.ErrorIs(t, err, ErrSecretMissing)
	assert.Nil(t, claims)
}
