package main

import (
	"log"
	"os"
	"path/filepath"

	"contract-explorer/internal/config"
	"contract-explorer/internal/controllers"
	"contract-explorer/internal/logger"
	"contract-explorer/internal/models"
	"contract-explorer/internal/shutdown"
	"contract-explorer/internal/version"
	"contract-explorer/internal/views"
	"contract-explorer/internal/worker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
)

const (
	AppName = "Contract Explorer"
	AppID   = "com.contracttools.contract-explorer"
)

// Application wires the models, services, controller, and view together.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	cfg     config.Config

	controller *controllers.MainController
	view       *views.MainView

	shutdownManager *shutdown.Manager
}

func main() {
	appDir := resolveAppDir()

	cfg, err := config.Load(appDir, ".")
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	application := NewApplication(cfg, appDir)
	application.Run()
}

// resolveAppDir returns the directory holding the executable, where the
// version and config files live.
func resolveAppDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApplication creates and initializes the application.
func NewApplication(cfg config.Config, appDir string) *Application {
	logLevel := determineLogLevel(cfg)
	appLogger := logger.NewConsoleLogger(logLevel)

	appVersion := version.Resolve(appDir)
	appLogger.Info("Application", "starting", map[string]interface{}{
		"version": appVersion,
		"app_dir": appDir,
	})

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	window.CenterOnScreen()

	// Repositories
	logBook := models.NewLogBook()
	contractRepo := models.NewContractRepository()
	taskState := models.NewTaskStateRepository()

	// Services
	runner := worker.NewRunner(appLogger)

	// MVC components
	controller := controllers.NewMainController(
		appLogger, cfg,
		logBook, contractRepo, taskState,
		runner,
	)
	controller.SetVersion(appVersion)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("controller", controller)
	shutdownManager.Listen()

	application := &Application{
		fyneApp:         fyneApp,
		window:          window,
		logger:          appLogger,
		cfg:             cfg,
		controller:      controller,
		view:            view,
		shutdownManager: shutdownManager,
	}

	application.setupWindowEvents()
	return application
}

// Run shows the window, kicks off backend setup, and enters the event loop.
func (a *Application) Run() {
	a.view.Show()

	// Backend setup runs once the event loop is up, as a scheduled step.
	go a.controller.Startup(a.shutdownManager.Context())

	// Mirror external shutdown (signals) into the UI lifecycle.
	go func() {
		<-a.shutdownManager.Done()
		fyne.Do(func() {
			a.window.Close()
		})
	}()

	a.fyneApp.Run()
	a.logger.Info("Application", "terminated", nil)
}

// setupWindowEvents configures window lifecycle events.
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.view.ShowConfirm(
			"Exit Application",
			"Are you sure you want to exit?",
			func(confirmed bool) {
				if !confirmed {
					return
				}
				a.controller.SaveLogOnClose()
				a.window.Close()
			},
		)
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed, performing cleanup", nil)
		a.shutdownManager.Shutdown()
	})
}

// determineLogLevel resolves the console log level: LOG_LEVEL env wins,
// then the config file, then info.
func determineLogLevel(cfg config.Config) zerolog.Level {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		return logger.ParseLevel(env)
	}
	if os.Getenv("DEBUG") == "1" {
		return logger.ParseLevel("debug")
	}
	return logger.ParseLevel(cfg.Logging.Level)
}
