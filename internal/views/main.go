package views

import (
	"contract-explorer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView represents the main application view using MVC pattern.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	logPanel      *components.LogPanel
	statusBar     *components.StatusBar
	progressBar   *components.ProgressBar

	// Event handlers - connected to controller
	createTicketsHandler func()
	explorerHandler      func()
	clearLogHandler      func()
	saveLogHandler       func()
	quitHandler          func()
}

// NewMainView creates a new main view.
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.logPanel = components.NewLogPanel()
	mv.statusBar = components.NewStatusBar()
	mv.progressBar = components.NewProgressBar()
}

func (mv *MainView) buildLayout() {
	topArea := mv.toolbar.GetContainer()

	bottomArea := container.NewVBox(
		mv.progressBar.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,
		bottomArea,
		nil,
		nil,
		mv.logPanel.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetCreateTicketsHandler(func() {
		if mv.createTicketsHandler != nil {
			mv.createTicketsHandler()
		}
	})
	mv.toolbar.SetExplorerHandler(func() {
		if mv.explorerHandler != nil {
			mv.explorerHandler()
		}
	})
	mv.toolbar.SetClearLogHandler(func() {
		if mv.clearLogHandler != nil {
			mv.clearLogHandler()
		}
	})
	mv.toolbar.SetSaveLogHandler(func() {
		if mv.saveLogHandler != nil {
			mv.saveLogHandler()
		}
	})
	mv.toolbar.SetQuitHandler(func() {
		if mv.quitHandler != nil {
			mv.quitHandler()
		}
	})
}

// Event handler setters - called by controller

func (mv *MainView) SetCreateTicketsHandler(handler func()) { mv.createTicketsHandler = handler }
func (mv *MainView) SetExplorerHandler(handler func())      { mv.explorerHandler = handler }
func (mv *MainView) SetClearLogHandler(handler func())      { mv.clearLogHandler = handler }
func (mv *MainView) SetSaveLogHandler(handler func())       { mv.saveLogHandler = handler }
func (mv *MainView) SetQuitHandler(handler func())          { mv.quitHandler = handler }

// UI update methods - called by controller

// SetReady enables user interaction once backend setup completes.
func (mv *MainView) SetReady() {
	mv.toolbar.SetReady()
	mv.statusBar.SetStatus("Ready")
}

// UpdateStatus updates the status bar message.
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetVersionText updates the version display in the status bar.
func (mv *MainView) SetVersionText(version string) {
	mv.statusBar.SetVersionText(version)
}

// SetLogEntries replaces the log panel contents, newest entry first.
func (mv *MainView) SetLogEntries(entries []string) {
	mv.logPanel.SetEntries(entries)
}

// UpdateTaskProgress updates the progress bar and its status line.
func (mv *MainView) UpdateTaskProgress(status string, progress float64) {
	mv.progressBar.SetProgress(progress)
	mv.progressBar.SetStage(status)
}

// SetTaskActive updates UI state around a background task run.
func (mv *MainView) SetTaskActive(active bool) {
	mv.toolbar.SetTaskActive(active)
	mv.progressBar.SetVisible(active)
	if active {
		mv.progressBar.SetProgress(0.0)
		mv.progressBar.SetStage("Starting...")
	}
}

// ShowError displays an error dialog.
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowInfo displays an information dialog.
func (mv *MainView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mv.window)
	})
}

// ShowConfirm displays a confirmation dialog.
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

// ShowSaveDialog displays a file save dialog with a suggested file name.
func (mv *MainView) ShowSaveDialog(fileName string, callback func(fyne.URIWriteCloser, error)) {
	fyne.Do(func() {
		d := dialog.NewFileSave(callback, mv.window)
		d.SetFileName(fileName)
		d.Show()
	})
}

// GetWindow returns the main window.
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container.
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Show displays the view.
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// Close closes the view.
func (mv *MainView) Close() {
	fyne.Do(func() {
		mv.window.Close()
	})
}
