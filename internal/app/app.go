package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ytget/lotto-picker/internal/config"
	"github.com/ytget/lotto-picker/internal/draw"
	"github.com/ytget/lotto-picker/internal/ui"
)

const (
	AppID   = "com.ytget.lotto-picker"
	AppName = "Lotto Picker"

	WindowWidth  = 420
	WindowHeight = 640
)

// NewLogger builds the production logger; verbose enables debug output
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewService creates a draw service configured from the stored settings
func NewService(settings *config.Settings, logger *zap.Logger) (*draw.Service, error) {
	src, err := draw.NewSourceOfKind(settings.GetRandomSource())
	if err != nil {
		return nil, err
	}

	svc := draw.NewService(draw.NewDrawer(src), logger)
	svc.SetHistoryLimit(settings.GetHistoryLimit())
	return svc, nil
}

// RunGUI opens the main window and blocks until it is closed
func RunGUI(version string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := fyneapp.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	svc, err := NewService(settings, logger.Named("draw"))
	if err != nil {
		return err
	}

	ui.NewRootUI(myWindow, settings, svc, logger.Named("ui"))

	myWindow.ShowAndRun()
	return nil
}
