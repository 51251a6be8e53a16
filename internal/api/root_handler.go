package api

import (
	"fmt"
	"net/http"
)

// RootHandler serves the API info envelope on the bare root path.
type RootHandler struct {
	responder *Responder
	appName   string
	version   string
}

func NewRootHandler(responder *Responder, appName, version string) *RootHandler {
	return &RootHandler{
		responder: responder,
		appName:   appName,
		version:   version,
	}
}

func (h *RootHandler) Info(w http.ResponseWriter, r *http.Request) {
	h.responder.Success(w, http.StatusOK, fmt.Sprintf("%s is running", h.appName), map[string]interface{}{
		"name":    h.appName,
		"version": h.version,
		"health":  "/health",
		"metrics": "/metrics",
	})
}

func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Info)
}
