package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	once = sync.Once{}
	app = nil
	initErr = nil
}

func TestHandlerServesSeededStore(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	reset()
	defer reset()

	rr := httptest.NewRecorder()
	Handler(rr, httptest.NewRequest("GET", "/api/posts", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "ㅎㅇㅎㅇ", body.Data[0].Title)

	// State survives between invocations of the same instance.
	rr = httptest.NewRecorder()
	Handler(rr, httptest.NewRequest("POST", "/api/posts",
		strings.NewReader(`{"title":"t","content":"c","author":"a"}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	Handler(rr, httptest.NewRequest("GET", "/api/posts/2", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandlerPreflight(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	reset()
	defer reset()

	req := httptest.NewRequest("OPTIONS", "/api/posts", nil)
	req.Header.Set("Origin", "https://ite2.example")
	rr := httptest.NewRecorder()
	Handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "https://ite2.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandlerInitFailure(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	reset()
	defer reset()

	rr := httptest.NewRecorder()
	Handler(rr, httptest.NewRequest("GET", "/api/posts", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
	assert.Contains(t, rr.Body.String(), "postgres")
}
