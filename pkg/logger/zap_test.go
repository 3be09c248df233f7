package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/sku_upload/pkg/ctxmeta"
	"github.com/Gunvolt24/sku_upload/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	ctx = ctxmeta.WithRunID(ctx, "run-1")
	ctx = ctxmeta.WithSessionID(ctx, "sess-1")

	log.Infof(ctx, "run finished status=%s", "completed")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Message != "run finished status=completed" {
		t.Fatalf("unexpected message: %q", e.Message)
	}
	fields := e.ContextMap()
	if fields["request_id"] != "req-1" || fields["run_id"] != "run-1" || fields["session_id"] != "sess-1" {
		t.Fatalf("context fields missing: %+v", fields)
	}
}

func TestZapLogger_NoContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	log.Warnf(context.Background(), "plain")
	log.Debugf(context.Background(), "debug")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if len(entries[0].Context) != 0 {
		t.Fatalf("expected no fields, got %+v", entries[0].Context)
	}
	if entries[0].Level != zapcore.WarnLevel || entries[1].Level != zapcore.DebugLevel {
		t.Fatalf("unexpected levels: %v %v", entries[0].Level, entries[1].Level)
	}
}
