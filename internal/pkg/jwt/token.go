package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned for tokens that fail signature or claim checks
var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs an HS256 token for subject that expires after ttl
func GenerateToken(subject string, ttl time.Duration, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(ttl).Unix()

	claims := jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt,
		"iss": cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates an HS256 token and returns its claims.
// When cfg.Issuer is set the iss claim must match it.
func ValidateToken(tokenString string, cfg models.JWTConfig) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}

	return &claims, nil
}
