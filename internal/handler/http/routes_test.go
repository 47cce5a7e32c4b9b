package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/"},
	{http.MethodGet, "/api/version"},
	{http.MethodGet, "/add?num1=1&num2=2"},
	{http.MethodGet, "/subtract?num1=1&num2=2"},
	{http.MethodGet, "/multiply?num1=1&num2=2"},
	{http.MethodGet, "/divide?num1=1&num2=2"},
	{http.MethodGet, "/exponent?base=1&exponent=2"},
	{http.MethodGet, "/sqrt?num=4"},
	{http.MethodGet, "/modulo?num1=1&num2=2"},
}

func TestInit_ReturnsRouter(t *testing.T) {
	router := newRealHandler(t, logger.Nop()).Init()

	require.NotNil(t, router)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newRealHandler(t, logger.Nop()).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, "route not served: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newRealHandler(t, logger.Nop()).Init()

	req := httptest.NewRequest(http.MethodGet, "/power?base=2&exponent=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newRealHandler(t, logger.Nop()).Init()

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/add?num1=1&num2=2", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newRealHandler(t, logger.Nop()).Init()

	req := httptest.NewRequest(http.MethodGet, "/add?num1=1&num2=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// TestInit_ExactlyOneCompletionRecord covers the success, rejection,
// not-found and wrong-method paths of the full middleware chain.
func TestInit_ExactlyOneCompletionRecord(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantLevel  string
	}{
		{"success", http.MethodGet, "/add?num1=2&num2=3", http.StatusOK, "info"},
		{"invalid operands", http.MethodGet, "/add?num1=abc&num2=3", http.StatusBadRequest, "error"},
		{"division by zero", http.MethodGet, "/divide?num1=1&num2=0", http.StatusBadRequest, "error"},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound, "error"},
		{"wrong method", http.MethodPost, "/sqrt?num=4", http.StatusNotFound, "error"},
		{"greeting", http.MethodGet, "/", http.StatusOK, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			router := newRealHandler(t, newBufferLogger(&buf)).Init()
			buf.Reset()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.RemoteAddr = "10.0.0.7:51234"
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			records := completionRecords(t, &buf)
			require.Len(t, records, 1)
			record := records[0]
			assert.EqualValues(t, rec.Code, record["status"])
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.Equal(t, tt.method, record["method"])
			assert.Equal(t, tt.target, record["url"])
			assert.Equal(t, "10.0.0.7", record["ip"])
			assert.GreaterOrEqual(t, record["duration_ms"].(float64), 0.0)
			assert.Equal(t, rec.Header().Get(traceIDHeader), record["trace_id"])
		})
	}
}

func TestInit_RealIPFromForwardedHeader(t *testing.T) {
	var buf bytes.Buffer
	router := newRealHandler(t, newBufferLogger(&buf)).Init()
	buf.Reset()

	req := httptest.NewRequest(http.MethodGet, "/sqrt?num=9", nil)
	req.Header.Set("X-Real-IP", "203.0.113.9")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	records := completionRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "203.0.113.9", records[0]["ip"])
}

// TestInit_CompletionRecordAboveInfoThreshold checks that a logger configured
// at warn or error still records successful requests.
func TestInit_CompletionRecordAboveInfoThreshold(t *testing.T) {
	for _, level := range []zerolog.Level{zerolog.WarnLevel, zerolog.ErrorLevel} {
		t.Run(level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			router := newRealHandler(t, logger.New("test", "calculator-microservice", level, &buf)).Init()

			req := httptest.NewRequest(http.MethodGet, "/add?num1=1&num2=2", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			records := completionRecords(t, &buf)
			require.Len(t, records, 1)
			assert.Equal(t, "info", records[0]["level"])
			assert.EqualValues(t, http.StatusOK, records[0]["status"])
		})
	}
}
