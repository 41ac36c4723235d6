package ggrect

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes Logger to a debug-level text buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggerSilentByDefault(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	if orig.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default logger is enabled at debug level")
	}

	SetLogger(slog.Default())
	SetLogger(nil)
	if l := Logger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
		t.Errorf("SetLogger(nil) left %v, want a disabled logger", l)
	}
}

func TestDrawLogsSkippedLayers(t *testing.T) {
	buf := captureLogs(t)

	style := New(TransparentBlack).
		WithShape(Round{Radius: 10}).
		WithBorder(Border{Color: TransparentBlack, Radius: 4})
	b := &countingBackend{}
	style.Draw(Rect{W: 100, H: 50}, Identity(), b)

	if len(b.calls) != 0 {
		t.Errorf("backend saw %d calls, want 0", len(b.calls))
	}
	out := buf.String()
	for _, want := range []string{"fill skipped", "border skipped", "shape=round(10)"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q, got: %s", want, out)
		}
	}
}

func TestDrawVisibleLayersLogNothing(t *testing.T) {
	buf := captureLogs(t)

	New(Red).WithBorder(Border{Color: Blue, Radius: 1}).
		Draw(Rect{W: 10, H: 10}, Identity(), &countingBackend{})
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestSetLoggerWhileDrawing(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	style := New(TransparentBlack).WithShape(Bevel{Radius: 2})
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			style.Draw(Rect{W: 20, H: 20}, Identity(), &countingBackend{})
		}()
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			} else {
				SetLogger(nil)
			}
		}()
	}
	wg.Wait()
}
