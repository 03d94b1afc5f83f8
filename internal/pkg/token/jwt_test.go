package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partstock/internal/domain"
	"partstock/internal/pkg/token"
)

const secret = "segredo-de-teste"

// sign assina claims arbitrárias com o segredo compartilhado.
func sign(t *testing.T, method jwt.SigningMethod, claims token.CustomClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() token.CustomClaims {
	now := time.Now()
	return token.CustomClaims{
		UserID: "user-1",
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    token.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestGenerateAndValidate(t *testing.T) {
	svc := token.NewService(secret, time.Hour)

	signed, err := svc.GenerateToken("user-1", domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, token.Issuer, claims.Issuer)
}

func TestValidate_WrongSecret(t *testing.T) {
	signed, err := token.NewService("a", time.Hour).GenerateToken("user-1", domain.RoleUser)
	require.NoError(t, err)

	_, err = token.NewService("b", time.Hour).ValidateToken(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	svc := token.NewService(secret, -time.Minute)
	signed, err := svc.GenerateToken("user-1", domain.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestValidate_RejectsForeignTokens(t *testing.T) {
	svc := token.NewService(secret, time.Hour)

	otherIssuer := validClaims()
	otherIssuer.Issuer = "GoStock-API"

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	unknownRole := validClaims()
	unknownRole.Role = "root"

	cases := map[string]string{
		"outro emissor":   sign(t, jwt.SigningMethodHS256, otherIssuer),
		"sem expiração":   sign(t, jwt.SigningMethodHS256, noExpiry),
		"papel inválido":  sign(t, jwt.SigningMethodHS256, unknownRole),
		"algoritmo HS512": sign(t, jwt.SigningMethodHS512, validClaims()),
	}
	for name, signed := range cases {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateToken(signed)
			assert.ErrorIs(t, err, token.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}

	// Controle: as mesmas claims com o emissor correto são aceitas.
	_, err := svc.ValidateToken(sign(t, jwt.SigningMethodHS256, validClaims()))
	assert.NoError(t, err)
}
