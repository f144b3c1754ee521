package mapboxgl

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	if Logger() == nil {
		t.Fatal("default logger is nil")
	}

	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)
	SetLogger(l)
	if Logger() != l {
		t.Fatal("SetLogger did not replace the logger")
	}
	Logger().Info("hello")
	if logs.FilterMessage("hello").Len() != 1 {
		t.Fatalf("logs = %v", logs.All())
	}

	SetLogger(nil)
	if Logger() == nil || Logger() == l {
		t.Fatal("SetLogger(nil) should restore a no-op logger")
	}
	Logger().Info("dropped")
	if logs.Len() != 1 {
		t.Fatalf("no-op logger wrote to the old core: %v", logs.All())
	}
}
