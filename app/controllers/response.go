package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"ite2blog/app/repositories"
	"ite2blog/app/services"

	"github.com/gorilla/mux"
)

const (
	msgPostNotFound    = "게시글을 찾을 수 없습니다."
	msgPostDeleted     = "게시글이 삭제되었습니다."
	msgCommentNotFound = "댓글을 찾을 수 없습니다."
	msgCommentDeleted  = "댓글이 삭제되었습니다."
	msgInvalidJSON     = "Invalid JSON body"
	msgInternal        = "Internal Server Error"
)

type dataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type validationResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Errors  []services.FieldError `json:"errors"`
}

func sendJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func sendData(w http.ResponseWriter, data interface{}) {
	sendJSON(w, http.StatusOK, dataResponse{Success: true, Data: data})
}

func sendMessage(w http.ResponseWriter, message string) {
	sendJSON(w, http.StatusOK, messageResponse{Success: true, Message: message})
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, messageResponse{Success: false, Message: message})
}

// sendServiceError maps a service error to its HTTP status. notFound is the
// message used when the referenced record does not exist.
func sendServiceError(w http.ResponseWriter, err error, notFound string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		sendJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Success: false,
			Message: verr.Error(),
			Errors:  verr.Fields,
		})
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, notFound)
	default:
		sendError(w, http.StatusInternalServerError, msgInternal)
	}
}

// decodeBody reads a JSON request body into v. An empty body leaves v zeroed
// so that validation reports the missing fields.
func decodeBody(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// pathID returns the numeric path variable, or 0 when it is not a number.
// No record ever has id 0, so a malformed id behaves like an unknown one.
func pathID(r *http.Request, name string) int {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0
	}
	return id
}
