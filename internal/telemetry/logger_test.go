package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHandler struct {
	mu      sync.Mutex
	records []slog.Record
	attrs   []slog.Attr
	group   string
	enabled bool
}

func (h *mockHandler) Enabled(context.Context, slog.Level) bool { return h.enabled }

func (h *mockHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)
	return nil
}

func (h *mockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &mockHandler{enabled: h.enabled, attrs: append(h.attrs, attrs...), group: h.group}
}

func (h *mockHandler) WithGroup(name string) slog.Handler {
	return &mockHandler{enabled: h.enabled, attrs: h.attrs, group: name}
}

func (h *mockHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

func TestMultiHandler(t *testing.T) {
	h1 := &mockHandler{enabled: true}
	h2 := &mockHandler{enabled: false}
	multi := &multiHandler{handlers: []slog.Handler{h1, h2}}

	t.Run("Enabled", func(t *testing.T) {
		assert.True(t, multi.Enabled(context.Background(), slog.LevelInfo))
		off := &multiHandler{handlers: []slog.Handler{h2}}
		assert.False(t, off.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("Handle skips disabled handlers", func(t *testing.T) {
		record := slog.NewRecord(time.Now(), slog.LevelInfo, "flexure check", 0)
		require.NoError(t, multi.Handle(context.Background(), record))
		assert.Equal(t, 1, h1.count())
		assert.Equal(t, 0, h2.count())
	})

	t.Run("WithAttrs and WithGroup", func(t *testing.T) {
		attrs := []slog.Attr{slog.String("mechanism", "shear")}
		withAttrs, ok := multi.WithAttrs(attrs).(*multiHandler)
		require.True(t, ok)
		assert.Equal(t, attrs, withAttrs.handlers[0].(*mockHandler).attrs)

		withGroup, ok := multi.WithGroup("beam").(*multiHandler)
		require.True(t, ok)
		assert.Equal(t, "beam", withGroup.handlers[1].(*mockHandler).group)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("info level drops debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closeFn, err := NewLogger(false, &buf, "")
		require.NoError(t, err)
		defer closeFn()

		logger.Debug("phi iteration")
		logger.Info("shear check", "Vu_kN", 50.0)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shear check", entry["msg"])
		assert.Equal(t, 50.0, entry["Vu_kN"])
		assert.NotContains(t, buf.String(), "phi iteration")
	})

	t.Run("debug level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, _, err := NewLogger(true, &buf, "")
		require.NoError(t, err)

		logger.Debug("phi iteration")
		assert.Contains(t, buf.String(), "phi iteration")
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "acibeam.log")
		var buf bytes.Buffer
		logger, closeFn, err := NewLogger(false, &buf, path)
		require.NoError(t, err)

		logger.Info("torsion check")
		require.NoError(t, closeFn())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "torsion check")
		assert.Contains(t, buf.String(), "torsion check")
	})

	t.Run("unwritable file", func(t *testing.T) {
		_, _, err := NewLogger(false, &bytes.Buffer{}, filepath.Join(t.TempDir(), "missing", "x.log"))
		assert.Error(t, err)
	})
}

func TestInitLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	closeFn, err := InitLogger(true, "")
	require.NoError(t, err)
	assert.NoError(t, closeFn())
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
