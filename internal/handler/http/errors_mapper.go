package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-calculator/internal/app"
	"github.com/MKhiriev/go-calculator/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidNumbers:     http.StatusBadRequest,
	service.ErrInvalidNumber:      http.StatusBadRequest,
	service.ErrDivisionByZero:     http.StatusBadRequest,
	service.ErrModuloByZero:       http.StatusBadRequest,
	service.ErrNegativeSquareRoot: http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidNumbers:     app.MsgInvalidNumbers,
	service.ErrInvalidNumber:      app.MsgInvalidNumber,
	service.ErrDivisionByZero:     app.MsgDivisionByZero,
	service.ErrModuloByZero:       app.MsgModuloByZero,
	service.ErrNegativeSquareRoot: app.MsgNegativeSquareRoot,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err. Unmapped errors
// get the generic internal error text so their details never leak.
func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}
