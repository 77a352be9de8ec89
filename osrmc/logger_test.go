package osrmc

import (
	"sync"
	"testing"

	"go.uber.org/zap"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Expected a usable default logger")
	}
	// The default must be safe to log through.
	Logger().Debug("default logger check")
}

func TestSetLoggerReplacesAndRestores(t *testing.T) {
	custom := zap.NewNop().Named("custom")
	SetLogger(custom)
	if Logger() != custom {
		t.Fatal("Expected SetLogger to install the given logger")
	}

	SetLogger(nil)
	if Logger() == custom {
		t.Fatal("Expected nil to restore the default logger")
	}
}

func TestSetLoggerConcurrentWithReaders(t *testing.T) {
	defer SetLogger(nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				SetLogger(zap.NewNop())
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if Logger() == nil {
					t.Error("Logger returned nil during swap")
					return
				}
			}
		}()
	}
	wg.Wait()
}
