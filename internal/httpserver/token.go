package httpserver

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

var errInvalidToken = errors.New("invalid session token")

// tokens signs and verifies session tokens. The HS256 key is derived from
// the configured secret so the raw secret never signs anything directly.
type tokens struct {
	key []byte
	ttl time.Duration
}

func newTokens(secret string, ttl time.Duration) (*tokens, error) {
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("wordle session token v1"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive token key: %w", err)
	}
	return &tokens{key: key, ttl: ttl}, nil
}

// sign issues a token whose subject is the session ID.
func (t *tokens) sign(sessionID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := tok.SignedString(t.key)
	return ss, exp, err
}

// parse verifies tok and returns the session ID it names.
func (t *tokens) parse(tok string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (interface{}, error) {
		return t.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", errInvalidToken
	}
	if claims.Subject == "" {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}

// bearerOrCookie extracts a token from the Authorization header or the session cookie.
func bearerOrCookie(r *http.Request, cookieName string) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
