// Package handler is the serverless function entry point. Each function
// instance builds one application on its first request and serves every later
// request from it.
package handler

import (
	"encoding/json"
	"net/http"
	"sync"

	"ite2blog/app/config"
	"ite2blog/service"
)

var (
	once    sync.Once
	app     http.Handler
	initErr error
)

func build() {
	cfg, err := config.Load("")
	if err != nil {
		initErr = err
		return
	}
	a, err := service.NewApp(cfg)
	if err != nil {
		initErr = err
		return
	}
	app = a.Handler
}

// Handler serves one request through the shared application.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(build)
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": initErr.Error(),
		})
		return
	}
	app.ServeHTTP(w, r)
}
