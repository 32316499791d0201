package diag

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("default logger should not be enabled at any level")
	}
}

func TestVerbose(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	Verbose(&buf, slog.LevelDebug)
	Logger().Debug("docknize", "container", 3)

	if !strings.Contains(buf.String(), "container=3") {
		t.Errorf("expected record in output, got %q", buf.String())
	}
}
