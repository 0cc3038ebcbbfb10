package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"coin_tracker/internal/view"
)

// Cell positions inside a market row
const (
	cellRank = iota
	cellName
	cellPrice
	cellChange
	cellMarketCap
)

// newMarketRow creates the template object for one table row
func newMarketRow() fyne.CanvasObject {
	icon := canvas.NewImageFromResource(nil)
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(IconSize, IconSize))
	icon.Hide()

	nameCell := container.NewHBox(icon, widget.NewLabel(""))

	return container.NewGridWithColumns(len(view.Columns),
		widget.NewLabel(""), // rank
		nameCell,
		widget.NewLabel(""), // price
		widget.NewLabel(""), // 24h change
		widget.NewLabel(""), // market cap
	)
}

// updateMarketRow binds a model row to a row template
func (ui *RootUI) updateMarketRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(ui.model.Rows) {
		return
	}
	row := ui.model.Rows[id]

	cells := obj.(*fyne.Container).Objects
	cells[cellRank].(*widget.Label).SetText(row.Rank)
	cells[cellPrice].(*widget.Label).SetText(row.Price)
	cells[cellMarketCap].(*widget.Label).SetText(row.MarketCap)

	nameCell := cells[cellName].(*fyne.Container)
	nameCell.Objects[1].(*widget.Label).SetText(row.Name)
	ui.bindIcon(nameCell.Objects[0].(*canvas.Image), row.ID)

	change := cells[cellChange].(*widget.Label)
	change.Importance = changeImportance(row.ChangeClass)
	change.SetText(row.Change)
}

func (ui *RootUI) bindIcon(icon *canvas.Image, id string) {
	path := ""
	if ui.icons != nil {
		path = ui.icons.LocalIcon(id)
	}
	if path == "" {
		icon.Hide()
		return
	}
	if icon.File != path {
		icon.File = path
		icon.Refresh()
	}
	icon.Show()
}

// changeImportance maps a change class to label styling
func changeImportance(class view.ChangeClass) widget.Importance {
	switch class {
	case view.ClassPositive:
		return widget.SuccessImportance
	case view.ClassNegative:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}
