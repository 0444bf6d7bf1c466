package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aydnep/upwork-cover-ai/internal/auth"
	"github.com/aydnep/upwork-cover-ai/internal/llm"
	"github.com/aydnep/upwork-cover-ai/internal/profiles"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing"

func savedProfile() *profiles.Profile {
	return &profiles.Profile{
		Name:              "Ada Lovelace",
		Title:             "Backend Engineer",
		Skills:            "Go, PostgreSQL",
		ExperienceSummary: "Ten years of backend work",
		PortfolioLinks:    "https://example.com/ada",
	}
}

// stub provider that streams two deltas and finishes normally
func streamingStub(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Dear \"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"client\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
}

func setupRouter(t *testing.T, store profiles.Store, model *llm.Client) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec := auth.NewCodec(testSecret)

	token, err := codec.Mint("a@b.com", "A", "")
	require.NoError(t, err)

	router := gin.New()
	RegisterRoutes(router.Group("/api", auth.RequireAuth(codec)), store, model)

	return router, token
}

func post(router *gin.Engine, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Cookie", "session="+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestGenerateHandler_StreamsCoverLetter(t *testing.T) {
	stub := streamingStub(t)
	defer stub.Close()

	store := profiles.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "a@b.com", savedProfile()))

	router, token := setupRouter(t, store, llm.NewClient("groq-key").WithBaseURL(stub.URL))

	w := post(router, token, `{"jobDescription":"Build a Go API","tone":"confident"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))

	body := w.Body.String()
	assert.Contains(t, body, `data: {"content":"Dear "}`)
	assert.Contains(t, body, `data: {"content":"client"}`)
	assert.True(t, strings.HasSuffix(body, "data: [DONE]\n\n"), "stream must end with the DONE terminator")
}

func TestGenerateHandler_DefaultsToneToProfessional(t *testing.T) {
	var userPrompt string

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		userPrompt = req.Messages[1].Content

		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer stub.Close()

	store := profiles.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "a@b.com", savedProfile()))

	router, token := setupRouter(t, store, llm.NewClient("groq-key").WithBaseURL(stub.URL))

	w := post(router, token, `{"jobDescription":"Build a Go API"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, userPrompt, "polished, professional tone")
}

func TestGenerateHandler_NoProfile(t *testing.T) {
	router, token := setupRouter(t, profiles.NewMemoryStore(), llm.NewClient("groq-key"))

	w := post(router, token, `{"jobDescription":"Build a Go API"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "please save your profile first")
}

func TestGenerateHandler_MissingJobDescription(t *testing.T) {
	store := profiles.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "a@b.com", savedProfile()))

	router, token := setupRouter(t, store, llm.NewClient("groq-key"))

	w := post(router, token, `{"jobDescription":"   "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "jobDescription is required")
}

func TestGenerateHandler_InvalidTone(t *testing.T) {
	store := profiles.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "a@b.com", savedProfile()))

	router, token := setupRouter(t, store, llm.NewClient("groq-key"))

	w := post(router, token, `{"jobDescription":"Build a Go API","tone":"sarcastic"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tone must be one of")
}

func TestGenerateHandler_ProviderFailureReportedInBand(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer stub.Close()

	store := profiles.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "a@b.com", savedProfile()))

	router, token := setupRouter(t, store, llm.NewClient("groq-key").WithBaseURL(stub.URL))

	w := post(router, token, `{"jobDescription":"Build a Go API"}`)

	body := w.Body.String()
	assert.Contains(t, body, `data: {"error":"stream error"}`)
	assert.NotContains(t, body, "[DONE]")
}

func TestGenerateHandler_RequiresAuthentication(t *testing.T) {
	router, _ := setupRouter(t, profiles.NewMemoryStore(), llm.NewClient("groq-key"))

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"jobDescription":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
