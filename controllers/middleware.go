package controllers

import (
	"net/http"
	"runtime/debug"
	"time"

	"campus-events/models"
	"campus-events/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// responseWriter captures the written status code for request logging.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

// Logging logs every request with a generated request id.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		logrus.WithFields(logrus.Fields{
			"request_id": uuid.NewString(),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     wrapped.status,
			"duration":   time.Since(start),
		}).Info("http request")
	})
}

// Recovery turns panics into 500 responses instead of taking the server down.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logrus.WithFields(logrus.Fields{
					"error": err,
					"trace": string(debug.Stack()),
				}).Error("panic recovered")
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Server error."})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
