package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrSecretMissing is returned when tokens are requested without a signing secret.
var ErrSecretMissing = errors.New("jwt secret key is not defined")

// TokenUser is the nested identity carried by tokens issued at /auth/login.
type TokenUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Claims accepts both shapes the API issues: {"user":{"id","email"}} and
// the flat {"id","email"}. Subject always holds the user id.
type Claims struct {
	User   *TokenUser `json:"user,omitempty"`
	UserID string     `json:"id,omitempty"`
	Email  string     `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Identity returns the user id and email whichever shape was signed.
func (c *Claims) Identity() (uuid.UUID, string, bool) {
	raw, email := c.Subject, c.Email
	if c.User != nil {
		if raw == "" {
			raw = c.User.ID
		}
		if email == "" {
			email = c.User.Email
		}
	}
	if raw == "" {
		raw = c.UserID
	}
	id, ok := ParseUUID(raw)
	return id, email, ok
}

type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(config JWTConfig) *TokenManager {
	expiry := config.Expiry()
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &TokenManager{
		secret: []byte(config.Secret),
		expiry: expiry,
	}
}

// GenerateToken signs a token with the nested user claim.
func (m *TokenManager) GenerateToken(userID uuid.UUID, email string) (string, error) {
	return m.sign(&Claims{User: &TokenUser{ID: userID.String(), Email: email}}, userID)
}

// GenerateFlatToken signs a token with top-level id and email claims.
func (m *TokenManager) GenerateFlatToken(userID uuid.UUID, email string) (string, error) {
	return m.sign(&Claims{UserID: userID.String(), Email: email}, userID)
}

func (m *TokenManager) sign(claims *Claims, userID uuid.UUID) (string, error) {
	if len(m.secret) == 0 {
		return "", ErrSecretMissing
	}

	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	if len(m.secret) == 0 {
		return nil, ErrSecretMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
