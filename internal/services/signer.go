package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// TokenClaims is the payload carried by a bearer token.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Signer turns claims into a signed token and back.
//
// Decode returns the claims it could read together with verified=false when
// the signature does not match, so callers can still inspect the expiry.
type Signer interface {
	Sign(claims TokenClaims) (string, error)
	Decode(token string) (claims TokenClaims, verified bool, err error)
}

type jwtClaims struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}

// JWTSigner signs HS256 JSON Web Tokens.
type JWTSigner struct {
	secret []byte
}

// NewJWTSigner creates a JWTSigner using secret as the HMAC key.
func NewJWTSigner(secret string) *JWTSigner {
	return &JWTSigner{secret: []byte(secret)}
}

// Sign issues an HS256 token for claims.
func (s *JWTSigner) Sign(claims TokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		UserID: claims.Subject,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Subject:   claims.Subject,
			IssuedAt:  claims.IssuedAt.Unix(),
			ExpiresAt: claims.ExpiresAt.Unix(),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode parses token without enforcing time-based claims.
func (s *JWTSigner) Decode(token string) (TokenClaims, bool, error) {
	parser := jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}

	var claims jwtClaims
	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})

	verified := err == nil
	if err != nil {
		var vErr *jwt.ValidationError
		if !errors.As(err, &vErr) || vErr.Errors != jwt.ValidationErrorSignatureInvalid {
			return TokenClaims{}, false, fmt.Errorf("failed to decode token: %w", err)
		}
	}

	out := TokenClaims{Subject: claims.Subject}
	if out.Subject == "" {
		out.Subject = claims.UserID
	}
	if claims.IssuedAt != 0 {
		out.IssuedAt = time.Unix(claims.IssuedAt, 0)
	}
	if claims.ExpiresAt != 0 {
		out.ExpiresAt = time.Unix(claims.ExpiresAt, 0)
	}
	return out, verified, nil
}
