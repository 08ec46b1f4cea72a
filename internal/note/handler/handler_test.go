package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notekeep/notekeep/internal/note/repository"
	"github.com/notekeep/notekeep/internal/note/service"
	"github.com/stretchr/testify/require"
)

type noteBody struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	IsActive      bool      `json:"isActive"`
}

func newTestRouter() *gin.Engine {
	g := gin.New()
	svc := service.NewService(repository.NewMemoryRepo())
	RegisterNoteRoutes(g, svc)
	return g
}

func do(t *testing.T, g *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func decodeNote(t *testing.T, w *httptest.ResponseRecorder) noteBody {
	t.Helper()
	var n noteBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &n))
	return n
}

func TestNoteLifecycle(t *testing.T) {
	g := newTestRouter()

	// create
	w := do(t, g, http.MethodPost, "/note", `{"title":"Shopping","content":"milk, eggs"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeNote(t, w)
	require.NotEmpty(t, created.ID)
	require.True(t, created.IsActive)
	require.Equal(t, "Shopping", created.Title)

	// retrieve
	w = do(t, g, http.MethodGet, "/note?id="+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, created.ID, decodeNote(t, w).ID)

	// partial update: only content supplied, title survives
	w = do(t, g, http.MethodPatch, "/note?id="+created.ID, `{"content":"milk, eggs, bread"}`)
	require.Equal(t, http.StatusOK, w.Code)
	patched := decodeNote(t, w)
	require.Equal(t, "Shopping", patched.Title)
	require.Equal(t, "milk, eggs, bread", patched.Content)
	require.True(t, patched.LastUpdatedAt.After(created.LastUpdatedAt))

	// delete is soft: record stays retrievable, flagged inactive
	w = do(t, g, http.MethodDelete, "/note?id="+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	deleted := decodeNote(t, w)
	require.False(t, deleted.IsActive)
	require.True(t, deleted.LastUpdatedAt.After(patched.LastUpdatedAt))

	w = do(t, g, http.MethodGet, "/note?id="+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.False(t, decodeNote(t, w).IsActive)

	// listing hides the deleted note
	w = do(t, g, http.MethodGet, "/note/all", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []noteBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Empty(t, list)
}

func TestReplaceOverwrites(t *testing.T) {
	g := newTestRouter()

	w := do(t, g, http.MethodPost, "/note", `{"title":"draft","content":"v1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeNote(t, w)

	// full representation: the omitted title is overwritten with empty text
	w = do(t, g, http.MethodPut, "/note?id="+created.ID, `{"content":"v2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	replaced := decodeNote(t, w)
	require.Equal(t, "", replaced.Title)
	require.Equal(t, "v2", replaced.Content)
	require.True(t, replaced.LastUpdatedAt.After(created.LastUpdatedAt))
	require.True(t, replaced.IsActive)
}

func TestActiveFlagNotWritable(t *testing.T) {
	g := newTestRouter()

	// isActive in the request body is ignored on every write path
	w := do(t, g, http.MethodPost, "/note", `{"title":"x","isActive":false}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeNote(t, w)
	require.True(t, created.IsActive)

	w = do(t, g, http.MethodPut, "/note?id="+created.ID, `{"title":"x","content":"","isActive":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, decodeNote(t, w).IsActive)

	w = do(t, g, http.MethodPatch, "/note?id="+created.ID, `{"isActive":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, decodeNote(t, w).IsActive)
}

func TestListOrdering(t *testing.T) {
	g := newTestRouter()

	ids := make([]string, 0, 3)
	for _, title := range []string{"a", "b", "c"} {
		w := do(t, g, http.MethodPost, "/note", `{"title":"`+title+`"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		ids = append(ids, decodeNote(t, w).ID)
	}

	// touching "a" makes it the most recently updated
	w := do(t, g, http.MethodPatch, "/note?id="+ids[0], `{"content":"touched"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, g, http.MethodGet, "/note/all", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []noteBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	require.Equal(t, ids[0], list[0].ID)
	for i := 1; i < len(list); i++ {
		require.False(t, list[i-1].LastUpdatedAt.Before(list[i].LastUpdatedAt))
	}
}

func TestNotFoundResponses(t *testing.T) {
	g := newTestRouter()

	for _, tc := range []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/note?id=999", ""},
		{http.MethodPut, "/note?id=999", `{"title":"t"}`},
		{http.MethodPatch, "/note?id=999", `{"title":"t"}`},
		{http.MethodDelete, "/note?id=999", ""},
		// a missing id resolves to nothing, same as an unknown one
		{http.MethodGet, "/note", ""},
		{http.MethodDelete, "/note", ""},
	} {
		w := do(t, g, tc.method, tc.target, tc.body)
		require.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.target)
		require.Contains(t, w.Body.String(), "not found")
	}
}

func TestBadJSONBody(t *testing.T) {
	g := newTestRouter()

	w := do(t, g, http.MethodPost, "/note", `{"title":`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// the id must still exist for PATCH/PUT decode failures to matter
	w = do(t, g, http.MethodPost, "/note", `{"title":"x"}`)
	created := decodeNote(t, w)
	w = do(t, g, http.MethodPatch, "/note?id="+created.ID, `not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
