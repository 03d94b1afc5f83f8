// Package token emite e valida os JWTs de acesso da API.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"partstock/internal/domain"
)

// Issuer identifica os tokens emitidos por esta API; tokens de outro emissor são recusados.
const Issuer = "PartStock-API"

// ErrInvalidToken é devolvido para qualquer token recusado (assinatura, emissor, expiração).
var ErrInvalidToken = errors.New("token inválido")

// CustomClaims carrega o usuário e o papel dentro do JWT.
type CustomClaims struct {
	UserID string          `json:"user_id"`
	Role   domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Service assina tokens HS256 com tempo de vida fixo.
type Service struct {
	secretKey []byte
	expiry    time.Duration
	parser    *jwt.Parser
	now       func() time.Time
}

// NewService cria o serviço de tokens. expiry vem de JWT_EXPIRY_MIN.
func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
		now: time.Now,
	}
}

// GenerateToken cria um JWT assinado para o usuário com o papel informado.
func (s *Service) GenerateToken(userID string, role domain.UserRole) (string, error) {
	issuedAt := s.now()
	claims := CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}
	return signed, nil
}

// ValidateToken confere assinatura, algoritmo, emissor e expiração e devolve as claims.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.UserID == "" || !claims.Role.IsValid() {
		return nil, fmt.Errorf("%w: claims incompletas", ErrInvalidToken)
	}
	return claims, nil
}
