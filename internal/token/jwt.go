package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/statementbox/internal/model"
)

// Claims represents JWT claims carrying the access token payload.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	SessionID string `json:"sessionId,omitempty"`
	Type      string `json:"type"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key and lifetime.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWT{secretKey: secretKey, ttl: ttl, now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

// GenerateAccessToken creates a short-lived access token and returns it with its lifetime.
func (j *JWT) GenerateAccessToken(payload model.AccessTokenPayload) (string, time.Duration, error) {
	if err := validatePayload(payload); err != nil {
		return "", 0, err
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Email:     payload.Email,
		SessionID: payload.SessionID,
		Type:      string(payload.Type),
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, j.ttl, nil
}

// ParseAccessToken validates an access token and returns its payload.
func (j *JWT) ParseAccessToken(tokenString string) (model.AccessTokenPayload, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return model.AccessTokenPayload{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return model.AccessTokenPayload{}, fmt.Errorf("access token is invalid")
	}

	payload := model.AccessTokenPayload{
		Email:     claims.Email,
		SessionID: claims.SessionID,
		Type:      model.AccessTokenType(claims.Type),
	}
	if err := validatePayload(payload); err != nil {
		return model.AccessTokenPayload{}, err
	}

	return payload, nil
}

func validatePayload(p model.AccessTokenPayload) error {
	if p.Email == "" {
		return errors.New("access token payload has no email")
	}
	if !p.Type.Valid() {
		return fmt.Errorf("unsupported access token type: %q", p.Type)
	}
	if p.Type == model.AccessTypeContinueSession && p.SessionID == "" {
		return errors.New("continue_session token requires a session id")
	}
	return nil
}
