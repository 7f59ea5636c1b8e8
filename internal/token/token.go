package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkanak/shopcart-backend/internal/apperr"
	"github.com/dkanak/shopcart-backend/internal/constants"
)

// Service mints and verifies the signed bearer tokens. Tokens are
// stateless: verification is a pure function of the token string, the
// secret and the clock. There is no revocation before expiry.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// Claims is the verified payload of a token.
type Claims struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs {sub: userID, iat: now, exp: now+ttl}.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. Failures keep their
// three-way distinction (invalid / expired / not-yet-valid); anything
// else collapses to the generic authentication failure.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, mapVerifyError(err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, apperr.AuthFailed(constants.MsgInvalidToken)
	}
	if claims.Subject == "" {
		return nil, apperr.AuthFailed(constants.MsgAuthFail)
	}
	out := &Claims{UserID: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func mapVerifyError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperr.AuthFailed(constants.MsgExpiredToken)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return apperr.AuthFailed(constants.MsgInactiveToken)
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return apperr.AuthFailed(constants.MsgInvalidToken)
	default:
		return apperr.AuthFailed(constants.MsgAuthFail)
	}
}
