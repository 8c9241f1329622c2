package services

import (
	"errors"
	"fmt"
	"time"

	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService mints and checks the HS256 bearer tokens guarding admin routes.
type TokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Verify(token string) (string, error)
}

type tokenService struct {
	hmacSecret []byte
	now        func() time.Time
}

func NewTokenService(secret []byte) TokenService {
	return &tokenService{hmacSecret: secret, now: time.Now}
}

func (s *tokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if len(s.hmacSecret) == 0 {
		return "", appErr.New(appErr.CodeInvalid, "jwt secret is not configured")
	}
	if subject == "" {
		return "", appErr.New(appErr.CodeInvalid, "subject is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	iat := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": iat.Unix(),
		"exp": iat.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(s.hmacSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the subject of a valid token.
func (s *tokenService) Verify(tokenStr string) (string, error) {
	if len(s.hmacSecret) == 0 {
		return "", appErr.New(appErr.CodeUnauthorized, "admin api disabled")
	}
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.hmacSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("token invalid")
		}
		return "", appErr.Wrap(err, appErr.CodeUnauthorized, "invalid token")
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", appErr.New(appErr.CodeUnauthorized, "token has no subject")
	}
	return sub, nil
}
