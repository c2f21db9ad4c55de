package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RevocationList is consulted after signature and expiry checks when strict
// revocation is enabled.
type RevocationList interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// ErrRevoked marks a token that verified cryptographically but has been
// revoked.
var ErrRevoked = errors.New("token revoked")

type jwtClaims struct {
	PhoneNumber string `json:"phone_number"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 tokens and optionally checks a revocation
// list. It also issues tokens, which keeps the ops tooling and tests honest
// about the claim shape.
type JWTVerifier struct {
	signingKey  []byte
	issuer      string
	audience    string
	revocations RevocationList
}

// Option configures a JWTVerifier.
type Option func(*JWTVerifier)

// WithRevocationList enables the revocation check.
func WithRevocationList(rl RevocationList) Option {
	return func(v *JWTVerifier) {
		v.revocations = rl
	}
}

func NewJWTVerifier(signingKey, issuer, audience string, opts ...Option) *JWTVerifier {
	v := &JWTVerifier{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// Verify checks signature, expiry, issuer/audience (when configured) and the
// revocation list. The raw token never appears in the returned error.
func (v *JWTVerifier) Verify(ctx context.Context, raw string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	parsed, err := jwt.ParseWithClaims(raw, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return v.signingKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token has expired")
		}
		return nil, errors.New("invalid token")
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	if v.revocations != nil {
		revoked, err := v.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("revocation check: %w", err)
		}
		if revoked {
			return nil, ErrRevoked
		}
	}

	return &Claims{Phone: claims.PhoneNumber, JTI: claims.ID}, nil
}

// Generate issues a signed token for the given phone number.
func (v *JWTVerifier) Generate(phone string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		PhoneNumber: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    v.issuer,
			Audience:  audienceOrNil(v.audience),
			ID:        uuid.NewString(),
		},
	})
	return newToken.SignedString(v.signingKey)
}

func audienceOrNil(audience string) jwt.ClaimStrings {
	if audience == "" {
		return nil
	}
	return jwt.ClaimStrings{audience}
}
