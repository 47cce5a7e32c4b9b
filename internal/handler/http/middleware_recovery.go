package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-calculator/internal/app"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
)

// withRecovery is the fallback handler. It recovers a panic raised by
// routing or a handler, logs it with its stack trace and answers 500 with a
// generic body. http.ErrAbortHandler is re-panicked so net/http can abort
// the connection, as chi's middleware.Recoverer does.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := wrapResponseWriter(w)

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			log := logger.FromContextOr(r.Context(), h.logger)
			log.LogFault(fmt.Sprint(rvr), string(debug.Stack()), clientAddress(r), r.Method, r.RequestURI)

			if rw.wroteHeader {
				return
			}
			utils.WriteJSON(rw, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(rw, r)
	})
}
