package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"contract-explorer/internal/config"
	"contract-explorer/internal/logger"
	"contract-explorer/internal/models"
	"contract-explorer/internal/views"
	"contract-explorer/internal/worker"

	"fyne.io/fyne/v2"
)

const component = "MainController"

// MainController orchestrates the application using MVC pattern. All UI
// mutation goes through the view, which marshals onto the UI thread.
type MainController struct {
	logger logger.Logger
	cfg    config.Config

	// Models/Repositories
	logBook      *models.LogBook
	contractRepo *models.ContractRepository
	taskState    *models.TaskStateRepository

	// Services
	runner *worker.Runner

	// Views
	mainView *views.MainView

	// State management
	mu           sync.Mutex
	activeHandle *worker.Handle
	taskDrained  chan struct{}

	version string

	autosaveCancel context.CancelFunc
}

// NewMainController creates a new main controller.
func NewMainController(
	log logger.Logger,
	cfg config.Config,
	logBook *models.LogBook,
	contractRepo *models.ContractRepository,
	taskState *models.TaskStateRepository,
	runner *worker.Runner,
) *MainController {
	return &MainController{
		logger:       log,
		cfg:          cfg,
		logBook:      logBook,
		contractRepo: contractRepo,
		taskState:    taskState,
		runner:       runner,
	}
}

// SetMainView associates the main view with this controller and wires its
// event handlers.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view

	view.SetCreateTicketsHandler(mc.CreateTickets)
	view.SetExplorerHandler(mc.ShowContractExplorer)
	view.SetClearLogHandler(mc.ClearLog)
	view.SetSaveLogHandler(mc.SaveLog)
	view.SetQuitHandler(mc.Quit)
}

// SetVersion records the resolved version string for display and logging.
func (mc *MainController) SetVersion(version string) {
	mc.version = version
}

// Startup logs platform information and enables user interaction, the
// backend setup step that runs once the window is up.
func (mc *MainController) Startup(ctx context.Context) {
	mc.LogMsg("Logging has begun")
	mc.logPlatformInfo()

	if mc.mainView != nil {
		mc.mainView.SetVersionText(mc.version)
	}

	if mc.cfg.Saving.AutosaveMinutes > 0 {
		mc.startAutosave(ctx, time.Duration(mc.cfg.Saving.AutosaveMinutes)*time.Minute)
	}

	if mc.mainView != nil {
		mc.mainView.SetReady()
	}
	mc.LogMsg("Ready")
}

// logPlatformInfo records version and host details for this run.
func (mc *MainController) logPlatformInfo() {
	mc.LogMsg(fmt.Sprintf("Version: %s", mc.version))

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	mc.LogMsg(fmt.Sprintf("hostname: %s", hostname))
	mc.LogMsg(fmt.Sprintf("platform: %s/%s", runtime.GOOS, runtime.GOARCH))
	mc.LogMsg(fmt.Sprintf("go: %s", runtime.Version()))
	mc.LogMsg(fmt.Sprintf("now: %s", time.Now().Format("2006-01-02 15:04:05")))
}

// LogMsg writes a message to the log book, the console logger, and the UI
// log panel.
func (mc *MainController) LogMsg(message string) {
	mc.logBook.Append(message)
	mc.logger.Info(component, message, nil)
	mc.refreshLogPanel()
}

func (mc *MainController) refreshLogPanel() {
	if mc.mainView == nil {
		return
	}
	entries := mc.logBook.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	mc.mainView.SetLogEntries(lines)
}

// CreateTickets starts the ticket creation worker. Refused while a task is
// already active.
func (mc *MainController) CreateTickets() {
	if mc.taskState.IsActive() {
		mc.LogMsg("A task is already running")
		return
	}

	// Sample input until contract selection feeds this.
	items := []worker.TicketRequest{
		{ID: "42", Name: "Albert"},
		{ID: "12", Name: "Michael"},
		{ID: "07", Name: "Kinsley"},
	}
	task := &worker.TicketCreator{Items: items}

	mc.taskState.Begin(task.Name())
	if mc.mainView != nil {
		mc.mainView.SetTaskActive(true)
	}
	mc.LogMsg(fmt.Sprintf("Starting task: %s", task.Name()))

	handle := mc.runner.Start(context.Background(), task)
	drained := make(chan struct{})

	mc.mu.Lock()
	mc.activeHandle = handle
	mc.taskDrained = drained
	mc.mu.Unlock()

	go mc.drainTask(handle, drained)
}

// drainTask consumes a task's updates strictly in emission order, then
// handles the single terminal result.
func (mc *MainController) drainTask(handle *worker.Handle, drained chan struct{}) {
	defer close(drained)

	for update := range handle.Updates() {
		mc.taskState.Update(update.Progress, update.Status)
		state := mc.taskState.GetState()

		if mc.mainView != nil {
			mc.mainView.UpdateTaskProgress(state.CurrentStatus, state.Progress)
		}
	}

	result := <-handle.Done()
	mc.finishTask(handle.Name(), result)

	mc.mu.Lock()
	mc.activeHandle = nil
	mc.taskDrained = nil
	mc.mu.Unlock()
}

// finishTask reports completion or failure once, at the end.
func (mc *MainController) finishTask(taskName string, result worker.Result) {
	if result.Err != nil {
		mc.taskState.Finish("Error")
		mc.logger.Error(component, result.Err, map[string]interface{}{
			"task": taskName,
		})
		mc.LogMsg(fmt.Sprintf("Task %s failed: %v", taskName, result.Err))

		if mc.mainView != nil {
			mc.mainView.SetTaskActive(false)
			mc.mainView.UpdateStatus("Error")
			mc.mainView.ShowError(result.Err)
		}
		return
	}

	mc.taskState.Finish("Success")

	if result.Payload != nil {
		if encoded, err := json.Marshal(result.Payload); err == nil {
			mc.LogMsg(fmt.Sprintf("%s results: %s", taskName, encoded))
		}
	}
	mc.LogMsg(fmt.Sprintf("Task %s complete", taskName))

	if mc.mainView != nil {
		mc.mainView.SetTaskActive(false)
		mc.mainView.UpdateStatus("Ready")
	}
}

// ShowContractExplorer opens the modal contract explorer dialog.
func (mc *MainController) ShowContractExplorer() {
	mc.LogMsg("Showing Contract Explorer dialog")

	if mc.mainView == nil {
		return
	}

	contracts := mc.contractRepo.SortedByVendor()
	explorer := views.NewContractExplorer(mc.mainView.GetWindow(), contracts)
	explorer.SetContractSelectedHandler(func(contract models.Contract) {
		mc.logger.Debug(component, "contract selected", map[string]interface{}{
			"contract_id": contract.ID,
			"vendor":      contract.Vendor,
		})
	})
	explorer.Show()
}

// ClearLog empties the log book and the panel. Console output already
// emitted is unaffected.
func (mc *MainController) ClearLog() {
	mc.logBook.Clear()
	mc.refreshLogPanel()
	mc.LogMsg("Log cleared")
}

// SaveLog asks for a target file and writes exactly the panel's current
// contents to it.
func (mc *MainController) SaveLog() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.ShowSaveDialog(defaultLogFileName(), func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mc.LogMsg(fmt.Sprintf("Error while saving log: %v", err))
			return
		}
		if writer == nil {
			return // cancelled
		}

		go func() {
			defer writer.Close()
			if _, err := mc.logBook.WriteTo(writer); err != nil {
				mc.LogMsg(fmt.Sprintf("Error while writing log: %v", err))
				return
			}
			mc.LogMsg(fmt.Sprintf("Log saved to %s", writer.URI().Path()))
		}()
	})
}

// SaveLogToPath writes the log book to a file without a dialog, used by
// autosave and save-on-close.
func (mc *MainController) SaveLogToPath(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer f.Close()

	if _, err := mc.logBook.WriteTo(f); err != nil {
		return fmt.Errorf("writing log file: %w", err)
	}
	return nil
}

// SaveLogOnClose persists the log to the user's home directory when the
// config asks for it.
func (mc *MainController) SaveLogOnClose() {
	if !mc.cfg.Saving.SaveOnClose {
		return
	}
	path := defaultLogPath()
	if err := mc.SaveLogToPath(path); err != nil {
		mc.logger.Error(component, err, map[string]interface{}{
			"path": path,
		})
		return
	}
	mc.logger.Info(component, "log saved on close", map[string]interface{}{
		"path": path,
	})
}

func (mc *MainController) startAutosave(ctx context.Context, interval time.Duration) {
	autosaveCtx, cancel := context.WithCancel(ctx)
	mc.autosaveCancel = cancel

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				path := defaultLogPath()
				if err := mc.SaveLogToPath(path); err != nil {
					mc.logger.Error(component, err, map[string]interface{}{
						"path": path,
					})
					continue
				}
				mc.logger.Debug(component, "log autosaved", map[string]interface{}{
					"path": path,
				})
			case <-autosaveCtx.Done():
				return
			}
		}
	}()

	mc.LogMsg(fmt.Sprintf("Autosave mins: %d", mc.cfg.Saving.AutosaveMinutes))
}

// Quit closes the main window; the window close intercept handles
// confirmation and save-on-close.
func (mc *MainController) Quit() {
	if mc.mainView != nil {
		mc.mainView.Close()
	}
}

// Shutdown stops the autosave loop and waits briefly for an active task's
// update stream to drain.
func (mc *MainController) Shutdown() {
	if mc.autosaveCancel != nil {
		mc.autosaveCancel()
	}

	mc.mu.Lock()
	drained := mc.taskDrained
	mc.mu.Unlock()

	if drained != nil {
		select {
		case <-drained:
		case <-time.After(5 * time.Second):
			mc.logger.Warning(component, "task drain timeout on shutdown", nil)
		}
	}
}

func defaultLogFileName() string {
	return fmt.Sprintf("ContractExplorer_log_%s.txt", time.Now().Format("2006-01-02_150405"))
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, defaultLogFileName())
}
