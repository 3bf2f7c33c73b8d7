package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LogPanel displays the application log, newest entry first.
type LogPanel struct {
	container *fyne.Container
	list      *widget.List
	entries   []string
}

// NewLogPanel creates an empty log panel.
func NewLogPanel() *LogPanel {
	lp := &LogPanel{}
	lp.createComponents()
	lp.buildLayout()
	return lp
}

func (lp *LogPanel) createComponents() {
	lp.list = widget.NewList(
		func() int {
			return len(lp.entries)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.TextStyle = fyne.TextStyle{Monospace: true}
			return label
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i < len(lp.entries) {
				obj.(*widget.Label).SetText(lp.entries[i])
			}
		},
	)
}

func (lp *LogPanel) buildLayout() {
	header := widget.NewRichTextFromMarkdown("**Log**")
	lp.container = container.NewBorder(
		header,
		nil, nil, nil,
		lp.list,
	)
}

// SetEntries replaces the panel contents. Entries are expected newest
// first, the order the table shows them in.
func (lp *LogPanel) SetEntries(entries []string) {
	fyne.Do(func() {
		lp.entries = entries
		lp.list.Refresh()
	})
}

// Clear empties the panel.
func (lp *LogPanel) Clear() {
	lp.SetEntries(nil)
}

// EntryCount returns the number of displayed entries.
func (lp *LogPanel) EntryCount() int {
	return len(lp.entries)
}

// GetContainer returns the panel container.
func (lp *LogPanel) GetContainer() *fyne.Container {
	return lp.container
}
