package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "dentismo"

// The two verification failures are distinct on purpose: the client shows
// "Token expired" for a lapsed session and "Invalid token" for everything else.
var (
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrSecretMissing = errors.New("signing secret is not configured")
)

type JWTServiceInterface interface {
	GenerateJWT(username string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

// NewJWTService builds a token service around the process-wide signing
// secret. An empty secret leaves the service unusable: issuing and
// verification both fail, record-keeping is unaffected.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(username string, expirationTime time.Time) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSecretMissing
	}
	claims := Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrSecretMissing
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" || claims.Issuer != issuer {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
