package jwt

import (
	"errors"
	"time"

	"nobat/internal/pkg/errs"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("expired token")
)

// BusinessClaims is the minimal identity the engine needs from the upstream
// auth service: which business the caller operates on.
type BusinessClaims struct {
	BusinessID uuid.UUID `json:"business_id"`
	jwtlib.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(tokenString string) (*BusinessClaims, error) {
	claims := &BusinessClaims{}
	token, err := jwtlib.ParseWithClaims(tokenString, claims, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errs.Wrapf(ErrInvalidToken, "%v", err)
	}
	if !token.Valid || claims.BusinessID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Sign is used by tests and local tooling; production tokens come from the
// auth service.
func (v *Verifier) Sign(businessID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &BusinessClaims{
		BusinessID: businessID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
