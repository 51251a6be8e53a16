package api

import (
	"encoding/json"
	"net/http"

	"streamhub/internal/domain"
	"streamhub/pkg/logger"
)

// Envelope is the uniform success wrapper; Count is set only on list
// responses.
type Envelope struct {
	Status     bool        `json:"status"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Count      *int        `json:"count,omitempty"`
}

type ErrorEnvelope struct {
	Status     bool   `json:"status"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Responder renders envelopes; in debug mode internal error messages are
// exposed, otherwise they are suppressed.
type Responder struct {
	logger logger.Logger
	debug  bool
}

func NewResponder(logger logger.Logger, debug bool) *Responder {
	return &Responder{
		logger: logger,
		debug:  debug,
	}
}

func (rs *Responder) Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Envelope{
		Status:     true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

func (rs *Responder) List(w http.ResponseWriter, message string, data interface{}, count int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Envelope{
		Status:     true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
		Count:      &count,
	})
}

func (rs *Responder) Error(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	errorName := domain.KindInternal.String()
	message := "Internal server error"

	if domainErr, ok := domain.AsError(err); ok {
		statusCode = domainErr.Kind.StatusCode()
		errorName = domainErr.Kind.String()
		message = domainErr.Message
	} else {
		rs.logger.Error("Beklenmeyen hata", map[string]interface{}{"error": err.Error()})
		if rs.debug {
			message = err.Error()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorEnvelope{
		Status:     false,
		StatusCode: statusCode,
		Error:      errorName,
		Message:    message,
	})
}
