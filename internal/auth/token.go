package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// SessionLifetime is how long a minted session token stays valid.
const SessionLifetime = 7 * 24 * time.Hour

// ErrInvalidToken is the single outcome for every verification failure:
// malformed structure, bad signature, bad claims, or expiry. Collapsing the
// reasons keeps handlers from leaking why a token was rejected.
var ErrInvalidToken = errors.New("invalid session token")

// fixed metadata segment, base64url without padding
var encodedHeader = base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

// Codec mints and verifies the compact signed session token:
// base64url(header).base64url(claims).base64url(HMAC-SHA256 signature).
// The secret is immutable configuration; the clock is injectable so tests
// can simulate expiry.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// creates a codec signing with the given secret
func NewCodec(secret string) *Codec {
	return &Codec{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// overrides the time source, used by tests to simulate expiry
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// creates a signed session token for the given identity
func (c *Codec) Mint(email, name, picture string) (string, error) {
	now := c.now().Unix()

	claims := Claims{
		Email:     email,
		Name:      name,
		Picture:   picture,
		IssuedAt:  now,
		ExpiresAt: now + int64(SessionLifetime.Seconds()),
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	signingInput := encodedHeader + "." + base64.RawURLEncoding.EncodeToString(payload)
	signature := c.sign(signingInput)

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(signature), nil
}

// validates a session token and returns its claims unchanged. There is no
// sliding expiry: verification never extends a token's lifetime.
func (c *Codec) Verify(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, ErrInvalidToken
	}

	expected := c.sign(parts[0] + "." + parts[1])
	if !hmac.Equal(signature, expected) {
		return nil, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrInvalidToken
	}

	if claims.ExpiresAt < c.now().Unix() {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}

// computes the HMAC-SHA256 signature over the exact bytes of the signing input
func (c *Codec) sign(signingInput string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(signingInput))
	return mac.Sum(nil)
}
