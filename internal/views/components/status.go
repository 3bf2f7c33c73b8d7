package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and version information.
type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	versionLabel *widget.Label
}

// NewStatusBar creates a new status bar component.
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Starting...")
	sb.versionLabel = widget.NewLabel("Version: --")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.versionLabel,
	)
}

// SetStatus updates the main status message.
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// GetStatus returns the current status message.
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetVersionText updates the version display.
func (sb *StatusBar) SetVersionText(version string) {
	fyne.Do(func() {
		sb.versionLabel.SetText("Version: " + version)
	})
}

// GetContainer returns the status bar container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// ProgressBar displays background task progress with a status line.
type ProgressBar struct {
	container   *fyne.Container
	progressBar *widget.ProgressBar
	stageLabel  *widget.Label
	visible     bool
}

// NewProgressBar creates a new progress bar component, hidden until a task
// starts.
func NewProgressBar() *ProgressBar {
	pb := &ProgressBar{}
	pb.createComponents()
	pb.buildLayout()
	return pb
}

func (pb *ProgressBar) createComponents() {
	pb.progressBar = widget.NewProgressBar()
	pb.progressBar.SetValue(0.0)
	pb.stageLabel = widget.NewLabel("Ready")
	pb.visible = false
}

func (pb *ProgressBar) buildLayout() {
	pb.container = container.NewVBox(
		pb.stageLabel,
		pb.progressBar,
	)
	pb.container.Hide()
}

// SetProgress updates the progress value (0.0 to 1.0).
func (pb *ProgressBar) SetProgress(progress float64) {
	fyne.Do(func() {
		if progress < 0.0 {
			progress = 0.0
		} else if progress > 1.0 {
			progress = 1.0
		}
		pb.progressBar.SetValue(progress)
	})
}

// GetProgress returns the current progress value.
func (pb *ProgressBar) GetProgress() float64 {
	return pb.progressBar.Value
}

// SetStage updates the task status line.
func (pb *ProgressBar) SetStage(stage string) {
	fyne.Do(func() {
		pb.stageLabel.SetText(stage)
	})
}

// GetStage returns the current status line.
func (pb *ProgressBar) GetStage() string {
	return pb.stageLabel.Text
}

// SetVisible shows or hides the progress bar.
func (pb *ProgressBar) SetVisible(visible bool) {
	fyne.Do(func() {
		pb.visible = visible
		if visible {
			pb.container.Show()
		} else {
			pb.container.Hide()
		}
	})
}

// IsVisible returns true if the progress bar is visible.
func (pb *ProgressBar) IsVisible() bool {
	return pb.visible
}

// Reset resets the progress bar to initial state.
func (pb *ProgressBar) Reset() {
	fyne.Do(func() {
		pb.progressBar.SetValue(0.0)
		pb.stageLabel.SetText("Ready")
		pb.SetVisible(false)
	})
}

// GetContainer returns the progress bar container.
func (pb *ProgressBar) GetContainer() *fyne.Container {
	return pb.container
}
