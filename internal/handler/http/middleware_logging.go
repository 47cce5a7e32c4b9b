package http

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/models"
)

// withLogging emits exactly one completion record per request once the
// inner handler has returned. The record is written from a deferred call so
// it is emitted even when the handler aborts with http.ErrAbortHandler.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOr(r.Context(), h.logger)

		start := time.Now()
		lw := wrapResponseWriter(w)

		defer func() {
			status := lw.Status()
			log.LogRequest(models.LogRecord{
				Level:         models.LevelForStatus(status),
				Message:       fmt.Sprintf("%s %s completed", r.Method, r.URL.Path),
				ClientAddress: clientAddress(r),
				Method:        r.Method,
				Path:          r.URL.Path,
				URL:           r.RequestURI,
				Query:         r.URL.Query(),
				StatusCode:    status,
				Duration:      time.Since(start),
			})
		}()

		next.ServeHTTP(lw, r)
	})
}

// clientAddress strips the port from r.RemoteAddr. After middleware.RealIP
// the field may already hold a bare address.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
