package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// CallbackPath is the fixed callback route the provider redirects back to.
// The full redirect URI is recomputed per request from the request origin so
// one build works across environments.
const CallbackPath = "/auth/callback"

// ErrNoEmail signals an identity token without an email claim, which is a
// hard failure of the flow: email is the unique user identity key.
var ErrNoEmail = errors.New("no email in identity token")

// shared HTTP client for provider token endpoint calls
var oauthHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// Flow drives the authorization-code + PKCE exchange with the identity
// provider. It holds only immutable configuration; continuity between the
// initiate and callback steps is carried entirely by the transaction cookies.
type Flow struct {
	clientID     string
	clientSecret string
	endpoint     oauth2.Endpoint
}

// creates a flow against Google's OAuth endpoints
func NewFlow(clientID, clientSecret string) *Flow {
	return &Flow{
		clientID:     clientID,
		clientSecret: clientSecret,
		endpoint:     endpoints.Google,
	}
}

// overrides the provider endpoint, used by tests to point the exchange at a
// stub server
func (f *Flow) WithEndpoint(endpoint oauth2.Endpoint) *Flow {
	f.endpoint = endpoint
	return f
}

// GenerateState returns a cryptographically random URL-safe anti-CSRF nonce
func GenerateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateVerifier returns a fresh PKCE code verifier
func GenerateVerifier() string {
	return oauth2.GenerateVerifier()
}

// AuthorizationURL builds the provider redirect target for this request,
// binding the state nonce and the PKCE challenge derived from the verifier
func (f *Flow) AuthorizationURL(r *http.Request, state, verifier string) string {
	return f.config(r).AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
}

// Exchange trades the authorization code and PKCE verifier for provider
// tokens and returns the identity claims from the ID token. A missing name
// falls back to the email.
func (f *Flow) Exchange(ctx context.Context, r *http.Request, code, verifier string) (*IdentityClaims, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, oauthHTTPClient)

	token, err := f.config(r).Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	raw, ok := token.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil, errors.New("provider response missing id_token")
	}

	claims, err := decodeIDToken(raw)
	if err != nil {
		return nil, err
	}

	if claims.Email == "" {
		return nil, ErrNoEmail
	}

	if claims.Name == "" {
		claims.Name = claims.Email
	}

	return claims, nil
}

// builds the per-request oauth2 configuration; the redirect URI follows the
// request origin plus the fixed callback path
func (f *Flow) config(r *http.Request) *oauth2.Config {
	scheme := "http"
	if RequestIsSecure(r) {
		scheme = "https"
	}

	return &oauth2.Config{
		ClientID:     f.clientID,
		ClientSecret: f.clientSecret,
		RedirectURL:  fmt.Sprintf("%s://%s%s", scheme, r.Host, CallbackPath),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     f.endpoint,
	}
}

// decodeIDToken reads the claims segment of the provider's ID token. The
// token arrives over TLS directly from the provider's token endpoint, so the
// signature is not re-verified here.
func decodeIDToken(raw string) (*IdentityClaims, error) {
	parts := strings.Split(raw, ".")
	if len(parts) < 2 {
		return nil, errors.New("malformed id_token")
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return nil, fmt.Errorf("failed to decode id_token claims: %w", err)
	}

	var claims IdentityClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse id_token claims: %w", err)
	}

	return &claims, nil
}
