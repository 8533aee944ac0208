package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oadeniran/Nexus/internal/llm"
	"github.com/oadeniran/Nexus/internal/search"
	"github.com/oadeniran/Nexus/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, client llm.Client, store session.Store) *gin.Engine {
	t.Helper()
	service := session.NewService(client, store, search.NewCosineRanker())
	return NewRouter(service, false)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func scripted(markdown string, embedding []float32) *llm.MockClient {
	return &llm.MockClient{
		GenerateFunc: func(_ context.Context, systemPrompt, _ string) (string, error) {
			_ = systemPrompt
			return markdown, nil
		},
		EmbedFunc: func(_ context.Context, _ string) ([]float32, error) {
			return embedding, nil
		},
	}
}

func TestHandleRootAndHealth(t *testing.T) {
	router := newTestRouter(t, &llm.MockClient{}, session.NewInMemoryStore())

	resp := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Nexus Brain Online")

	resp = doJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestHandleSaveSessionSaved(t *testing.T) {
	store := session.NewInMemoryStore()
	router := newTestRouter(t, scripted("# Dragons", []float32{1, 0}), store)

	resp := doJSON(t, router, http.MethodPost, "/api/save-session", gin.H{
		"session_type": "scribe",
		"user_id":      "user-1",
		"dialogue":     []gin.H{{"role": "user", "content": "dragons"}},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var result session.SaveResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, session.StatusSaved, result.Status)
	assert.Equal(t, "# Dragons", result.Markdown)
	assert.Equal(t, 1, store.Count("user-1"))
}

func TestHandleSaveSessionNoContent(t *testing.T) {
	store := session.NewInMemoryStore()
	router := newTestRouter(t, scripted("NO CONTENT AVAILABLE", []float32{1, 0}), store)

	resp := doJSON(t, router, http.MethodPost, "/api/save-session", gin.H{
		"session_type": "scribe",
		"user_id":      "user-1",
		"dialogue":     []gin.H{{"role": "user", "content": "hi"}},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var result session.SaveResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, session.StatusNoContent, result.Status)
	assert.Equal(t, "No coherent content was detected in this session.", result.Markdown)
	assert.Equal(t, 0, store.Count("user-1"))
}

func TestHandleSaveSessionRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t, &llm.MockClient{}, session.NewInMemoryStore())

	resp := doJSON(t, router, http.MethodPost, "/api/save-session", gin.H{
		"session_type": "scribe",
		// user_id and dialogue missing
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid request body")
}

func TestHandleSaveSessionServiceFailure(t *testing.T) {
	client := &llm.MockClient{
		GenerateFunc: func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("upstream timeout")
		},
		EmbedFunc: func(_ context.Context, _ string) ([]float32, error) {
			return []float32{1}, nil
		},
	}
	router := newTestRouter(t, client, session.NewInMemoryStore())

	resp := doJSON(t, router, http.MethodPost, "/api/save-session", gin.H{
		"session_type": "scribe",
		"user_id":      "user-1",
		"dialogue":     []gin.H{{"role": "user", "content": "hi"}},
	})
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to save session")
}

func TestHandleSearchReturnsMatches(t *testing.T) {
	store := session.NewInMemoryStore()
	require.NoError(t, store.Insert(context.Background(), session.SessionRecord{
		UserID:            "user-1",
		Type:              "scribe",
		FormattedMarkdown: "# Dragons",
		Embedding:         []float32{1, 0},
		CreatedAt:         time.Now(),
	}))
	router := newTestRouter(t, scripted("", []float32{1, 0}), store)

	resp := doJSON(t, router, http.MethodPost, "/api/search", gin.H{
		"query":   "dragons",
		"user_id": "user-1",
		"limit":   3,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Matches []session.ScoredMatch `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Len(t, payload.Matches, 1)
	assert.Equal(t, "# Dragons", payload.Matches[0].Markdown)
	assert.Greater(t, payload.Matches[0].Score, 0.45)
}

func TestHandleSearchExplicitZeroLimit(t *testing.T) {
	store := session.NewInMemoryStore()
	require.NoError(t, store.Insert(context.Background(), session.SessionRecord{
		UserID:            "user-1",
		FormattedMarkdown: "# Dragons",
		Embedding:         []float32{1, 0},
		CreatedAt:         time.Now(),
	}))
	router := newTestRouter(t, scripted("", []float32{1, 0}), store)

	// limit:0 in the body means no matches; only an omitted limit defaults.
	resp := doJSON(t, router, http.MethodPost, "/api/search", gin.H{
		"query":   "dragons",
		"user_id": "user-1",
		"limit":   0,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"matches":[]}`, resp.Body.String())
}

func TestHandleSearchEmptyQueryEmbedding(t *testing.T) {
	client := &llm.MockClient{
		EmbedFunc: func(_ context.Context, _ string) ([]float32, error) {
			return nil, nil
		},
	}
	router := newTestRouter(t, client, session.NewInMemoryStore())

	resp := doJSON(t, router, http.MethodPost, "/api/search", gin.H{
		"query":   "anything",
		"user_id": "user-1",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"matches":[]}`, resp.Body.String())
}

func TestHandleHistory(t *testing.T) {
	store := session.NewInMemoryStore()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second"} {
		require.NoError(t, store.Insert(context.Background(), session.SessionRecord{
			UserID:    "user-1",
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	router := newTestRouter(t, &llm.MockClient{}, store)

	resp := doJSON(t, router, http.MethodGet, "/api/history?user_id=user-1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		History []session.HistoryEntry `json:"history"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Len(t, payload.History, 2)
	assert.Equal(t, "second", payload.History[0].Title)
	assert.NotEmpty(t, payload.History[0].ID)
}

func TestHandleHistoryRequiresUserID(t *testing.T) {
	router := newTestRouter(t, &llm.MockClient{}, session.NewInMemoryStore())

	resp := doJSON(t, router, http.MethodGet, "/api/history", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "user_id is required")
}

func TestRequestIDHeaderAssigned(t *testing.T) {
	router := newTestRouter(t, &llm.MockClient{}, session.NewInMemoryStore())

	resp := doJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.NotEmpty(t, resp.Header().Get("X-Request-ID"))
}
