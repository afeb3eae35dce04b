package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ytget/lotto-picker/internal/app"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	logger, err := app.NewLogger(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = app.RunGUI(version, logger)
	if err != nil {
		logger.Error("gui exited", zap.Error(err))
	}
	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}
