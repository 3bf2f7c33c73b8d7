package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar represents the main window action bar.
type Toolbar struct {
	container *fyne.Container

	createTicketsButton *widget.Button
	explorerButton      *widget.Button
	clearLogButton      *widget.Button
	saveLogButton       *widget.Button
	quitButton          *widget.Button

	// Event handlers
	createTicketsHandler func()
	explorerHandler      func()
	clearLogHandler      func()
	saveLogHandler       func()
	quitHandler          func()
}

// NewToolbar creates a new toolbar component. Buttons start disabled until
// the backend reports ready.
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.createTicketsButton = widget.NewButton("Create Tickets", nil)
	t.createTicketsButton.Importance = widget.HighImportance
	t.createTicketsButton.Disable()

	t.explorerButton = widget.NewButton("Contract Explorer", nil)
	t.explorerButton.Importance = widget.HighImportance
	t.explorerButton.Disable()

	t.clearLogButton = widget.NewButton("Clear Log", nil)
	t.clearLogButton.Disable()

	t.saveLogButton = widget.NewButton("Save Log", nil)
	t.saveLogButton.Disable()

	t.quitButton = widget.NewButton("Quit", nil)
	t.quitButton.Importance = widget.MediumImportance
}

func (t *Toolbar) buildLayout() {
	actionSection := container.NewHBox(
		t.createTicketsButton,
		widget.NewSeparator(),
		t.explorerButton,
	)

	logSection := container.NewHBox(
		t.clearLogButton,
		t.saveLogButton,
	)

	t.container = container.NewHBox(
		actionSection,
		widget.NewSeparator(),
		logSection,
		widget.NewSeparator(),
		t.quitButton,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.createTicketsButton.OnTapped = func() {
		if t.createTicketsHandler != nil {
			t.createTicketsHandler()
		}
	}
	t.explorerButton.OnTapped = func() {
		if t.explorerHandler != nil {
			t.explorerHandler()
		}
	}
	t.clearLogButton.OnTapped = func() {
		if t.clearLogHandler != nil {
			t.clearLogHandler()
		}
	}
	t.saveLogButton.OnTapped = func() {
		if t.saveLogHandler != nil {
			t.saveLogHandler()
		}
	}
	t.quitButton.OnTapped = func() {
		if t.quitHandler != nil {
			t.quitHandler()
		}
	}
}

// Handler setters - called by the view

func (t *Toolbar) SetCreateTicketsHandler(handler func()) { t.createTicketsHandler = handler }
func (t *Toolbar) SetExplorerHandler(handler func())      { t.explorerHandler = handler }
func (t *Toolbar) SetClearLogHandler(handler func())      { t.clearLogHandler = handler }
func (t *Toolbar) SetSaveLogHandler(handler func())       { t.saveLogHandler = handler }
func (t *Toolbar) SetQuitHandler(handler func())          { t.quitHandler = handler }

// SetReady enables the action buttons once backend setup completes.
func (t *Toolbar) SetReady() {
	fyne.Do(func() {
		t.createTicketsButton.Enable()
		t.explorerButton.Enable()
		t.clearLogButton.Enable()
		t.saveLogButton.Enable()
	})
}

// SetTaskActive disables Create Tickets while a task is running.
func (t *Toolbar) SetTaskActive(active bool) {
	fyne.Do(func() {
		if active {
			t.createTicketsButton.Disable()
		} else {
			t.createTicketsButton.Enable()
		}
	})
}

// GetContainer returns the toolbar container.
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
