package log_test

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/reoring/goxviz/log"
)

func TestLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewLoggerWithWriter(&buf, zapcore.DebugLevel)
	l.Warn("primitive warning", map[string]any{"stream": "/object/shape", "code": "missing_vertices"})
	_ = l.Sync()

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"message":"primitive warning"`, `"stream":"/object/shape"`, `"code":"missing_vertices"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewLoggerWithWriter(&buf, zapcore.ErrorLevel)
	l.Info("dropped", nil)
	l.Sugar().Warnf("dropped %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no output below error level, got %q", buf.String())
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := log.Nop()
	l.Error("ignored", map[string]any{"k": 1})
	l.With(map[string]any{"a": "b"}).Debug("ignored", nil)
}

func TestSugaredLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	s := log.NewLoggerWithWriter(&buf, zapcore.DebugLevel).Sugar()
	s.Debugf("frame %d: wrote %d bytes", 0, 42)
	s.Infof("built %d frame(s) as %s", 2, "yaml")
	out := buf.String()
	for _, want := range []string{`"level":"debug"`, `frame 0: wrote 42 bytes`, `"level":"info"`, `built 2 frame(s) as yaml`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}
