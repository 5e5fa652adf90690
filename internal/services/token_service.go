package services

import (
	"fmt"
	"time"
)

// TokenService issues and verifies bearer tokens.
type TokenService struct {
	signer Signer
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService whose tokens live for ttl.
func NewTokenService(signer Signer, ttl time.Duration) *TokenService {
	return &TokenService{
		signer: signer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source. It returns s for chaining.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue returns a token for userID valid until now+ttl.
func (s *TokenService) Issue(userID string) (string, error) {
	issuedAt := s.now()
	return s.signer.Sign(TokenClaims{
		Subject:   userID,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.ttl),
	})
}

// Verify returns the subject of token.
//
// Expiry is checked on the decoded claims before the signature verdict, so
// an expired token reports ErrExpiredCredential even when it was tampered with.
func (s *TokenService) Verify(token string) (string, error) {
	claims, verified, err := s.signer.Decode(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}
	if claims.ExpiresAt.IsZero() {
		return "", fmt.Errorf("%w: no expiry", ErrMalformedCredential)
	}
	if s.now().After(claims.ExpiresAt) {
		return "", ErrExpiredCredential
	}
	if !verified {
		return "", fmt.Errorf("%w: signature mismatch", ErrMalformedCredential)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: no subject", ErrMalformedCredential)
	}
	return claims.Subject, nil
}
