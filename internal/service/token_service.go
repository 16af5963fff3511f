package service

import (
	"crypto/ecdsa"
	"fmt"

	"hosted-checkout/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// JWTUserTokenVerifier implements ports.UserTokenVerifier for platform-issued
// ES256 dashboard tokens.
type JWTUserTokenVerifier struct {
	publicKey *ecdsa.PublicKey
	audience  string
}

// NewJWTUserTokenVerifier parses the PEM-encoded public key. An empty audience
// disables the audience check.
func NewJWTUserTokenVerifier(publicKeyPEM string, audience string) (*JWTUserTokenVerifier, error) {
	key, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("parsing user token public key: %w", err)
	}
	return &JWTUserTokenVerifier{publicKey: key, audience: audience}, nil
}

// Verify parses and validates a token, returning its subject.
func (v *JWTUserTokenVerifier) Verify(tokenString string) (*ports.UserClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.publicKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("missing subject claim")
	}

	return &ports.UserClaims{UserID: claims.Subject}, nil
}
