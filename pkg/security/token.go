package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenUseAccess  = "access"
	TokenUseRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("geçersiz token")
	ErrTokenExpired = errors.New("token süresi dolmuş")
)

type Claims struct {
	Username string `json:"username"`
	TokenUse string `json:"token_use"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies claims with a shared secret and a single
// symmetric algorithm. Verification fails closed: any signature mismatch,
// algorithm mismatch or past expiry rejects the token.
type TokenCodec struct {
	secret []byte
	method jwt.SigningMethod
}

func NewTokenCodec(secret, algorithm string) (*TokenCodec, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("desteklenmeyen imza algoritması: %s", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("simetrik olmayan imza algoritması: %s", algorithm)
	}

	return &TokenCodec{
		secret: []byte(secret),
		method: method,
	}, nil
}

func (c *TokenCodec) Sign(subject, username, tokenUse, jti string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		TokenUse: tokenUse,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}

	token := jwt.NewWithClaims(c.method, claims)

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token imzalanamadı: %w", err)
	}

	return signed, nil
}

func (c *TokenCodec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != c.method.Alg() {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{c.method.Alg()}), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
