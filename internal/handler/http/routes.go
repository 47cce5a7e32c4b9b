package http

import (
	"github.com/MKhiriev/go-calculator/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order matters: withLogging wraps
// withRecovery so that requests answered by the fallback handler still get
// exactly one completion record with their final status.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, h.withTraceID, h.withLogging, h.withRecovery)

	router.Get("/", h.greet)
	router.Get("/api/version", h.getServerVersion)

	router.Get(models.OperationAdd.Path(), h.add)
	router.Get(models.OperationSubtract.Path(), h.subtract)
	router.Get(models.OperationMultiply.Path(), h.multiply)
	router.Get(models.OperationDivide.Path(), h.divide)
	router.Get(models.OperationExponent.Path(), h.exponent)
	router.Get(models.OperationSqrt.Path(), h.sqrt)
	router.Get(models.OperationModulo.Path(), h.modulo)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
