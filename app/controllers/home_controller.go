package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
)

const apiName = "ITE2 Demo Backend API"

// Endpoint describes one route of the public API.
type Endpoint struct {
	Method      string
	Path        string
	Description string
}

// Endpoints lists the API in the order it is documented.
var Endpoints = []Endpoint{
	{"GET", "/api/posts", "게시글 목록 조회"},
	{"GET", "/api/posts/:id", "게시글 상세 조회"},
	{"POST", "/api/posts", "게시글 작성"},
	{"DELETE", "/api/posts/:id", "게시글 삭제"},
	{"GET", "/api/posts/:id/comments", "댓글 목록 조회"},
	{"POST", "/api/posts/:id/comments", "댓글 작성"},
	{"DELETE", "/api/comments/:id", "댓글 삭제"},
}

// endpointMap encodes as a JSON object keyed by "METHOD path", keeping order.
type endpointMap []Endpoint

func (m endpointMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Method + " " + e.Path)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Description)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Home describes the API
func Home(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, struct {
		Message   string      `json:"message"`
		Endpoints endpointMap `json:"endpoints"`
	}{
		Message:   apiName,
		Endpoints: Endpoints,
	})
}

// Health reports that the process is serving
func Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound answers unknown routes, in JSON under /api
func NotFound(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		sendError(w, http.StatusNotFound, "Not Found")
		return
	}
	http.NotFound(w, r)
}
