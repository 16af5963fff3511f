package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	signingKeyPrefix = "whk_"
	signingKeyInfo   = "hosted-checkout/forward-signing/v1"
	signingKeySize   = 32
)

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes HMAC-SHA256 of payload using secretKey.
// Returns lowercase hex-encoded signature.
func (s *HMACSignatureService) Sign(secretKey string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks if signature matches HMAC-SHA256(secretKey, payload).
// Uses constant-time comparison to prevent timing attacks.
func (s *HMACSignatureService) Verify(secretKey string, payload string, signature string) bool {
	expected := s.Sign(secretKey, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// DeriveKey derives a per-company signing key from the master secret with
// HKDF-SHA256, salted by the company id. The result is stable for a given
// (secret, company) pair, so merchants can store it once.
func (s *HMACSignatureService) DeriveKey(masterSecret string, companyID string) (string, error) {
	if masterSecret == "" {
		return "", fmt.Errorf("derive key: empty master secret")
	}
	if companyID == "" {
		return "", fmt.Errorf("derive key: empty company id")
	}

	r := hkdf.New(sha256.New, []byte(masterSecret), []byte(companyID), []byte(signingKeyInfo))
	key := make([]byte, signingKeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	return signingKeyPrefix + hex.EncodeToString(key), nil
}
