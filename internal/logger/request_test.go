package logger

import (
	"bytes"
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-calculator/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New("server", "calc", zerolog.DebugLevel, &buf)

	l.LogRequest(models.LogRecord{
		Level:         models.LogLevelInfo,
		Message:       "GET /add completed",
		ClientAddress: "10.0.0.1",
		Method:        "GET",
		Path:          "/add",
		URL:           "/add?num1=1&num2=2",
		Query:         url.Values{"num1": {"1"}, "num2": {"2"}},
		StatusCode:    200,
		Duration:      2 * time.Millisecond,
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "GET /add completed", entry["message"])
	assert.Equal(t, "10.0.0.1", entry["ip"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/add", entry["path"])
	assert.Equal(t, "/add?num1=1&num2=2", entry["url"])
	assert.Equal(t, map[string]any{"num1": "1", "num2": "2"}, entry["query"])
	assert.EqualValues(t, 200, entry["status"])
	assert.EqualValues(t, 2, entry["duration_ms"])
}

func TestLogRequest_ErrorLevel(t *testing.T) {
	var errorSink bytes.Buffer
	l := New("server", "calc", zerolog.DebugLevel, ErrorOnly(&errorSink))

	l.LogRequest(models.LogRecord{Level: models.LogLevelInfo, Message: "ok", StatusCode: 200})
	l.LogRequest(models.LogRecord{Level: models.LogLevelError, Message: "bad", StatusCode: 400})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(errorSink.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "bad", entry["message"])
}

func TestLogRequest_IgnoresThresholdAboveInfo(t *testing.T) {
	for _, level := range []zerolog.Level{zerolog.WarnLevel, zerolog.ErrorLevel, zerolog.Disabled} {
		t.Run(level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			l := New("server", "calc", level, &buf)

			l.Info().Msg("dropped")
			l.LogRequest(models.LogRecord{Level: models.LogLevelInfo, Message: "GET /add completed", StatusCode: 200})

			lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
			require.Len(t, lines, 1)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(lines[0], &entry))
			assert.Equal(t, "info", entry["level"])
			assert.Equal(t, "GET /add completed", entry["message"])
		})
	}
}

func TestLogRequest_KeepsLowerThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := New("server", "calc", zerolog.DebugLevel, &buf)

	l.LogRequest(models.LogRecord{Level: models.LogLevelInfo, Message: "ok", StatusCode: 200})
	l.Debug().Msg("still enabled")

	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
	assert.Contains(t, buf.String(), "still enabled")
}

func TestLogFault_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New("server", "calc", zerolog.DebugLevel, &buf)

	l.LogFault("boom", "goroutine 1 [running]", "10.0.0.2", "GET", "/sqrt?num=1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["message"])
	assert.Equal(t, "goroutine 1 [running]", entry["stack"])
	assert.Equal(t, "10.0.0.2", entry["ip"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/sqrt?num=1", entry["url"])
}
