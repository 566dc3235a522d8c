package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestTeeHandlerCollapses(t *testing.T) {
	if _, ok := TeeHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := TeeHandler(nil, inner, nil); h != inner {
		t.Fatal("expected single non-nil handler to be returned unwrapped")
	}
}

func TestTeeHandlerRespectsChildLevels(t *testing.T) {
	var infoBuf, debugBuf bytes.Buffer
	info := slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})
	debug := slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(TeeHandler(info, debug))

	if !logger.Handler().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected tee to accept debug when one child does")
	}
	logger.Debug("fine detail")
	logger.Info("headline")

	if strings.Contains(infoBuf.String(), "fine detail") {
		t.Fatalf("info child received debug record: %s", infoBuf.String())
	}
	if !strings.Contains(infoBuf.String(), "headline") {
		t.Fatalf("info child missing info record: %s", infoBuf.String())
	}
	for _, want := range []string{"fine detail", "headline"} {
		if !strings.Contains(debugBuf.String(), want) {
			t.Fatalf("debug child missing %q: %s", want, debugBuf.String())
		}
	}
}

func TestTeeHandlerPropagatesAttrsAndGroups(t *testing.T) {
	var a, b bytes.Buffer
	logger := slog.New(TeeHandler(slog.NewJSONHandler(&a, nil), slog.NewJSONHandler(&b, nil)))
	logger.With("component", "scrape").WithGroup("page").Info("fetched", "status", 200)

	for _, out := range []string{a.String(), b.String()} {
		if !strings.Contains(out, `"component":"scrape"`) || !strings.Contains(out, `"page":{"status":200}`) {
			t.Fatalf("attrs or group missing: %s", out)
		}
	}
}

type failingHandler struct{ NoopHandler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("disk full") }

func TestTeeHandlerKeepsWritingAfterChildFailure(t *testing.T) {
	var buf bytes.Buffer
	h := TeeHandler(failingHandler{}, slog.NewJSONHandler(&buf, nil))
	err := slog.New(h).Handler().Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "still here", 0))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected child error to surface, got %v", err)
	}
	if !strings.Contains(buf.String(), "still here") {
		t.Fatalf("healthy child skipped: %s", buf.String())
	}
}
