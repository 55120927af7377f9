package testutil

import (
	"io"

	"github.com/Om-mac/multiple-shop-analysis/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}
