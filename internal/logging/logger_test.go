package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeEntry parses the single JSON line zerolog wrote into buf.
func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), "output: %s", buf.String())
	return entry
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()
	overflow := errors.New("exponent overflow")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"string", String("accumulator", "kahan"), "accumulator", "kahan"},
		{"int", Int("values", 200), "values", 200},
		{"uint64", Uint64("words", 1<<40), "words", uint64(1 << 40)},
		{"float64", Float64("ulps", 0.5), "ulps", 0.5},
		{"duration", Duration("elapsed", 3*time.Millisecond), "elapsed", 3 * time.Millisecond},
		{"error", Err(overflow), "error", overflow},
		{"nil error", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.field.Key)
			assert.Equal(t, tt.value, tt.field.Value)
		})
	}
}

func TestNewLoggerTagsComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewLogger(&buf, "orchestration").Info("accumulator finished")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "orchestration", entry["component"])
	assert.Equal(t, "accumulator finished", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNewDefaultLogger(t *testing.T) {
	t.Parallel()
	require.NotNil(t, NewDefaultLogger())
}

func TestZerologAdapterLevels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		log    func(Logger)
		level  string
		msg    string
		fields map[string]any
	}{
		{
			name: "thresholds at debug",
			log: func(l Logger) {
				l.Debug("thresholds configured",
					Int("karatsuba", 80), Int("toom", 240), Int("bz", 80), Int("max_words", 1<<26))
			},
			level: "debug",
			msg:   "thresholds configured",
			fields: map[string]any{
				"karatsuba": float64(80),
				"toom":      float64(240),
				"bz":        float64(80),
				"max_words": float64(1 << 26),
			},
		},
		{
			name: "metrics write failure",
			log: func(l Logger) {
				l.Error("writing metrics failed", errors.New("permission denied"), String("path", "/tmp/exactsum.prom"))
			},
			level: "error",
			msg:   "writing metrics failed",
			fields: map[string]any{
				"error": "permission denied",
				"path":  "/tmp/exactsum.prom",
			},
		},
		{
			name:   "error without cause",
			log:    func(l Logger) { l.Error("accumulator failed", nil, String("accumulator", "rational")) },
			level:  "error",
			msg:    "accumulator failed",
			fields: map[string]any{"accumulator": "rational"},
		},
		{
			name:   "info with count",
			log:    func(l Logger) { l.Info("dataset loaded", String("source", "stdin"), Int("values", 3)) },
			level:  "info",
			msg:    "dataset loaded",
			fields: map[string]any{"source": "stdin", "values": float64(3)},
		},
		{
			name:  "printf",
			log:   func(l Logger) { l.Printf("%d of %d accumulators agree", 2, 3) },
			level: "info",
			msg:   "2 of 3 accumulators agree",
		},
		{
			name:  "println",
			log:   func(l Logger) { l.Println("exact", "rational") },
			level: "info",
			msg:   "exact rational",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)))

			entry := decodeEntry(t, &buf)
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.msg, entry["message"])
			for k, want := range tt.fields {
				assert.Equal(t, want, entry[k], "field %q", k)
			}
		})
	}
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel))
	l.Debug("thresholds configured")
	assert.Zero(t, buf.Len(), "debug entry written at info level")
}

func TestApplyFieldsValueKinds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"string", "exact", "exact"},
		{"int", 42, float64(42)},
		{"int64", int64(-7), float64(-7)},
		{"uint64", uint64(1 << 52), float64(1 << 52)},
		{"float64", 0.25, 0.25},
		{"bool", true, true},
		{"duration", 1500 * time.Millisecond, float64(1500)},
		{"error", errors.New("mismatch"), "mismatch"},
		{"struct", struct{ Words int }{Words: 4}, map[string]any{"Words": float64(4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("field", Field{Key: "v", Value: tt.value})
			assert.Equal(t, tt.want, decodeEntry(t, &buf)["v"])
		})
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		log  func(Logger)
		want string
	}{
		{
			name: "info",
			log:  func(l Logger) { l.Info("partial emitted", String("kind", "l1"), Int("index", 2)) },
			want: "[INFO] partial emitted kind=l1 index=2\n",
		},
		{
			name: "error",
			log:  func(l Logger) { l.Error("parse failed", errors.New("bad token"), String("input", "values.txt")) },
			want: "[ERROR] parse failed: bad token input=values.txt\n",
		},
		{
			name: "debug",
			log:  func(l Logger) { l.Debug("dispatch") },
			want: "[DEBUG] dispatch\n",
		},
		{
			name: "printf",
			log:  func(l Logger) { l.Printf("sum of %d values", 3) },
			want: "sum of 3 values\n",
		},
		{
			name: "println",
			log:  func(l Logger) { l.Println("naive", "kahan") },
			want: "naive kahan\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLoggerImplementations(t *testing.T) {
	t.Parallel()
	var _ Logger = (*ZerologAdapter)(nil)
	var _ Logger = (*StdLoggerAdapter)(nil)
}

func TestNop(t *testing.T) {
	t.Parallel()
	l := Nop()
	require.NotNil(t, l)
	l.Info("ignored")
	l.Error("ignored", errors.New("x"))
}

func TestZerologAccessor(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	zl := NewLogger(&buf, "app").Zerolog()
	zl.Warn().Str("accumulator", "naive").Msg("mismatch")
	out := buf.String()
	assert.True(t, strings.Contains(out, `"component":"app"`), out)
	assert.Equal(t, "naive", decodeEntry(t, &buf)["accumulator"])
}
