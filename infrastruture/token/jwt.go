package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/wallmaze/service/i"
	"github.com/dgrijalva/jwt-go"
)

// Claim names carried by editor tokens.
const (
	ClaimSubject = "sub"
	ClaimScopes  = "scopes"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongIssuer  = errors.New("token issued by another issuer")
)

// JwtService signs and verifies HS256 editor tokens.
// Implements i.Tokenizer.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) i.Tokenizer {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Generate issues a token for subject holding scopes.
func (s *JwtService) Generate(subject string, scopes []string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"iss":        s.issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
		ClaimSubject: subject,
		ClaimScopes:  scopes,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a token, returning its claims.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrWrongIssuer
	}

	return claims, nil
}

// HasScope reports whether claims grant scope.
func HasScope(claims map[string]interface{}, scope string) bool {
	raw, ok := claims[ClaimScopes].([]interface{})
	if !ok {
		return false
	}
	for _, s := range raw {
		if s == scope {
			return true
		}
	}
	return false
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
