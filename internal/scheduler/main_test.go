package scheduler_test

import (
	"os"
	"testing"

	"github.com/lucid-net/poot-engine/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
