package views

import (
	"contract-explorer/internal/models"
	"contract-explorer/internal/tree"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ContractExplorer is the modal dialog that renders contract data as an
// expandable tree. The dialog owns a tree model rebuilt on each contract
// selection; fixture data is read-only and discarded on close.
type ContractExplorer struct {
	parent fyne.Window

	contracts []models.Contract
	byDisplay map[string]models.Contract

	model      *tree.Model
	treeWidget *widget.Tree
	selector   *widget.Select

	onContractSelected func(models.Contract)
}

// NewContractExplorer creates the explorer dialog content for the given
// contracts, sorted the way the selector presents them.
func NewContractExplorer(parent fyne.Window, contracts []models.Contract) *ContractExplorer {
	ce := &ContractExplorer{
		parent:    parent,
		contracts: contracts,
		byDisplay: make(map[string]models.Contract, len(contracts)),
	}

	ce.createComponents()
	return ce
}

func (ce *ContractExplorer) createComponents() {
	displays := make([]string, 0, len(ce.contracts))
	for _, c := range ce.contracts {
		display := c.DisplayString()
		displays = append(displays, display)
		ce.byDisplay[display] = c
	}

	ce.selector = widget.NewSelect(displays, func(selected string) {
		contract, ok := ce.byDisplay[selected]
		if !ok {
			return
		}
		ce.loadContract(contract)
		if ce.onContractSelected != nil {
			ce.onContractSelected(contract)
		}
	})

	ce.model = tree.Build(map[string]interface{}{})
	ce.treeWidget = widget.NewTree(
		func(id widget.TreeNodeID) []widget.TreeNodeID {
			return ce.model.ChildUIDs(id)
		},
		func(id widget.TreeNodeID) bool {
			return ce.model.IsBranch(id)
		},
		func(branch bool) fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(ce.model.Text(id))
		},
	)
	ce.treeWidget.OnBranchOpened = func(id widget.TreeNodeID) {
		ce.model.SetOpen(id, true)
	}
	ce.treeWidget.OnBranchClosed = func(id widget.TreeNodeID) {
		ce.model.SetOpen(id, false)
	}

	if len(ce.contracts) > 0 {
		ce.selector.SetSelectedIndex(0)
	}
}

// SetContractSelectedHandler registers a callback invoked when the user
// picks a contract in the selector.
func (ce *ContractExplorer) SetContractSelectedHandler(handler func(models.Contract)) {
	ce.onContractSelected = handler
}

// loadContract rebuilds the tree from a contract's document.
func (ce *ContractExplorer) loadContract(contract models.Contract) {
	ce.model = tree.Build(contract.Document())
	fyne.Do(func() {
		ce.treeWidget.Refresh()
	})
}

// ExpandAll opens every branch of the tree.
func (ce *ContractExplorer) ExpandAll() {
	ce.model.ExpandAll()
	fyne.Do(func() {
		ce.treeWidget.OpenAllBranches()
	})
}

// CollapseAll closes every branch of the tree.
func (ce *ContractExplorer) CollapseAll() {
	ce.model.CollapseAll()
	fyne.Do(func() {
		ce.treeWidget.CloseAllBranches()
	})
}

// Model returns the current tree model.
func (ce *ContractExplorer) Model() *tree.Model {
	return ce.model
}

// Show displays the dialog modally over the parent window.
func (ce *ContractExplorer) Show() {
	expandButton := widget.NewButton("Expand All", ce.ExpandAll)
	collapseButton := widget.NewButton("Collapse All", ce.CollapseAll)

	controls := container.NewBorder(
		nil, nil,
		nil,
		container.NewHBox(expandButton, collapseButton),
		ce.selector,
	)

	treeScroll := container.NewScroll(ce.treeWidget)
	treeScroll.SetMinSize(fyne.NewSize(520, 400))

	content := container.NewBorder(
		controls,
		nil, nil, nil,
		treeScroll,
	)

	fyne.Do(func() {
		dialog.ShowCustom("Contract Explorer", "Close", content, ce.parent)
	})
}
