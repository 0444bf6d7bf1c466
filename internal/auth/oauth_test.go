package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// builds an ID token with the given claims; the signature segment is
// arbitrary because the flow decodes claims without re-verifying it
func makeIDToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString(payload)

	return header + "." + body + ".signature"
}

// stands in for the provider's token endpoint
func stubTokenEndpoint(t *testing.T, idToken string, hits *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.NotEmpty(t, r.PostForm.Get("code_verifier"), "exchange should carry the PKCE verifier")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"stub-access","token_type":"Bearer","expires_in":3600,"id_token":%q}`, idToken)
	}))
}

func testFlow(tokenURL string) *Flow {
	return NewFlow("client-id", "client-secret").WithEndpoint(oauth2.Endpoint{
		AuthURL:  "https://provider.example.com/authorize",
		TokenURL: tokenURL,
	})
}

func TestAuthorizationURL_Parameters(t *testing.T) {
	flow := testFlow("https://provider.example.com/token")
	r := httptest.NewRequest(http.MethodGet, "http://localhost:8080/auth/google", nil)

	raw := flow.AuthorizationURL(r, "test-state", "test-verifier-test-verifier-test-verifier-43")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "test-state", q.Get("state"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.Equal(t, "http://localhost:8080/auth/callback", q.Get("redirect_uri"))
}

func TestAuthorizationURL_RedirectURIFollowsRequestOrigin(t *testing.T) {
	flow := testFlow("https://provider.example.com/token")

	r := httptest.NewRequest(http.MethodGet, "https://app.example.com/auth/google", nil)
	raw := flow.AuthorizationURL(r, "s", "v")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "https://app.example.com/auth/callback", parsed.Query().Get("redirect_uri"))
}

func TestGenerateState_Unique(t *testing.T) {
	a, err := GenerateState()
	require.NoError(t, err)

	b, err := GenerateState()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "+", "state should be URL-safe")
	assert.NotContains(t, a, "/", "state should be URL-safe")
}

func TestExchange_Success(t *testing.T) {
	hits := 0
	idToken := makeIDToken(t, map[string]any{
		"email":   "a@b.com",
		"name":    "A",
		"picture": "https://example.com/a.png",
	})
	stub := stubTokenEndpoint(t, idToken, &hits)
	defer stub.Close()

	flow := testFlow(stub.URL)
	r := httptest.NewRequest(http.MethodGet, "http://localhost:8080/auth/callback", nil)

	claims, err := flow.Exchange(context.Background(), r, "test-code", "test-verifier")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "A", claims.Name)
	assert.Equal(t, "https://example.com/a.png", claims.Picture)
}

func TestExchange_NameFallsBackToEmail(t *testing.T) {
	hits := 0
	stub := stubTokenEndpoint(t, makeIDToken(t, map[string]any{"email": "a@b.com"}), &hits)
	defer stub.Close()

	flow := testFlow(stub.URL)
	r := httptest.NewRequest(http.MethodGet, "http://localhost:8080/auth/callback", nil)

	claims, err := flow.Exchange(context.Background(), r, "test-code", "test-verifier")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Name)
}

func TestExchange_MissingEmail(t *testing.T) {
	hits := 0
	stub := stubTokenEndpoint(t, makeIDToken(t, map[string]any{"name": "No Email"}), &hits)
	defer stub.Close()

	flow := testFlow(stub.URL)
	r := httptest.NewRequest(http.MethodGet, "http://localhost:8080/auth/callback", nil)

	_, err := flow.Exchange(context.Background(), r, "test-code", "test-verifier")
	assert.ErrorIs(t, err, ErrNoEmail)
}

func TestExchange_ProviderRejectsCode(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"invalid_grant"}`)
	}))
	defer stub.Close()

	flow := testFlow(stub.URL)
	r := httptest.NewRequest(http.MethodGet, "http://localhost:8080/auth/callback", nil)

	_, err := flow.Exchange(context.Background(), r, "bad-code", "test-verifier")
	assert.Error(t, err)
}

func TestDecodeIDToken_Malformed(t *testing.T) {
	_, err := decodeIDToken("one-segment")
	assert.Error(t, err)

	_, err = decodeIDToken("a.!!!.c")
	assert.Error(t, err)
}
