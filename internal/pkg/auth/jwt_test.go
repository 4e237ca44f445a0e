package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, claims jwt.RegisteredClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseActor(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: testSecret, TokenIssuer: "registry.acadex.dev"})

	tokenString := signToken(t, jwt.RegisteredClaims{
		Subject:   "registrar@acadex.example",
		Issuer:    "registry.acadex.dev",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, testSecret)

	actor, err := svc.ParseActor(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "registrar@acadex.example", actor)
}

func TestParseActorExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: testSecret})

	tokenString := signToken(t, jwt.RegisteredClaims{
		Subject:   "registrar@acadex.example",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}, testSecret)

	_, err := svc.ParseActor(tokenString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseActorWrongSecret(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: testSecret})

	tokenString := signToken(t, jwt.RegisteredClaims{
		Subject:   "registrar@acadex.example",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, "some-other-secret")

	_, err := svc.ParseActor(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseActorWrongIssuer(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: testSecret, TokenIssuer: "registry.acadex.dev"})

	tokenString := signToken(t, jwt.RegisteredClaims{
		Subject:   "registrar@acadex.example",
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, testSecret)

	_, err := svc.ParseActor(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseActorMissingSubject(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: testSecret})

	tokenString := signToken(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, testSecret)

	_, err := svc.ParseActor(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEnabled(t *testing.T) {
	assert.False(t, NewJWTService(JWTConfig{}).Enabled())
	assert.True(t, NewJWTService(JWTConfig{SecretKey: "x"}).Enabled())
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "no scheme", header: "abc.def.ghi", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "empty token", header: "Bearer  ", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tc.header)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, token)
		})
	}
}

func TestActorContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ActorFromContext(ctx))

	ctx = WithActor(ctx, "registrar@acadex.example")
	actor := ActorFromContext(ctx)
	require.NotNil(t, actor)
	assert.Equal(t, "registrar@acadex.example", *actor)

	// An empty actor is treated as no attribution.
	assert.Nil(t, ActorFromContext(WithActor(context.Background(), "")))
}
