package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErr "github.com/client-portal/engine/pkg/errors"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("s3cret"))

	tok, err := svc.Issue("ops", time.Hour)
	require.NoError(t, err)

	sub, err := svc.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "ops", sub)
}

func TestTokenRejectsOtherSecretAndExpiry(t *testing.T) {
	tok, err := NewTokenService([]byte("a")).Issue("ops", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenService([]byte("b")).Verify(tok)
	require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))

	past := &tokenService{hmacSecret: []byte("a"), now: func() time.Time { return time.Now().Add(-2 * time.Hour) }}
	old, err := past.Issue("ops", time.Hour)
	require.NoError(t, err)
	_, err = NewTokenService([]byte("a")).Verify(old)
	require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
}

func TestTokenRequiresSecret(t *testing.T) {
	_, err := NewTokenService(nil).Issue("ops", time.Hour)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	_, err = NewTokenService(nil).Verify("x")
	require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
}
