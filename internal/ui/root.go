package ui

import (
	"log/slog"
	"net/url"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"coin_tracker/internal/domain"
	"coin_tracker/internal/infra"
	"coin_tracker/internal/service"
	"coin_tracker/internal/view"
)

// IconSource resolves a mirrored icon for a coin id, or "" when none exists
type IconSource interface {
	LocalIcon(id string) string
}

// RootUI represents the main window content
type RootUI struct {
	window    fyne.Window
	dashboard *service.Dashboard
	icons     IconSource
	metrics   *infra.Metrics

	model   view.Model
	current view.RenderState
	shown   bool

	statusLabel   *widget.Label
	statusContent fyne.CanvasObject

	searchEntry   *widget.Entry
	headerButtons []*widget.Button
	list          *widget.List
	footerLink    *widget.Hyperlink
	readyContent  fyne.CanvasObject

	// Icon refresh throttling
	lastIconRefresh time.Time
	iconMu          sync.Mutex
}

// NewRootUI creates the UI and subscribes it to dashboard changes.
// icons and metrics may be nil.
func NewRootUI(window fyne.Window, dashboard *service.Dashboard, icons IconSource, metrics *infra.Metrics) *RootUI {
	ui := &RootUI{
		window:    window,
		dashboard: dashboard,
		icons:     icons,
		metrics:   metrics,
	}

	window.SetTitle(view.Title)
	ui.setupUI()

	// State changes may come from the loader goroutine
	dashboard.OnChange(func() {
		fyne.Do(ui.refresh)
	})

	ui.refresh()
	return ui
}

// setupUI creates the loading/error view and the table view
func (ui *RootUI) setupUI() {
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.statusContent = container.NewCenter(ui.statusLabel)

	title := widget.NewLabelWithStyle(view.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(view.SearchPlaceholder)
	ui.searchEntry.OnChanged = func(text string) {
		ui.dashboard.SetSearch(text)
	}

	header := container.NewBorder(nil, nil, title, nil, ui.searchEntry)

	// Sortable column headers
	headerCells := make([]fyne.CanvasObject, 0, len(view.Columns))
	ui.headerButtons = make([]*widget.Button, 0, len(view.Columns))
	for _, col := range view.Columns {
		key := col.Key // Capture for closure
		btn := widget.NewButton(col.Label, func() {
			ui.onSort(key)
		})
		btn.Importance = widget.LowImportance
		btn.Alignment = widget.ButtonAlignLeading
		ui.headerButtons = append(ui.headerButtons, btn)
		headerCells = append(headerCells, btn)
	}
	columnHeader := container.NewGridWithColumns(len(view.Columns), headerCells...)

	ui.list = widget.NewList(
		func() int {
			return len(ui.model.Rows)
		},
		func() fyne.CanvasObject { return newMarketRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateMarketRow(id, obj) },
	)

	footerURL, err := url.Parse(view.FooterURL)
	if err != nil {
		slog.Warn("Invalid footer URL", slog.Any("error", err))
	}
	ui.footerLink = widget.NewHyperlink(view.FooterAuthor, footerURL)
	footer := container.NewCenter(container.NewHBox(widget.NewLabel(view.FooterPrefix), ui.footerLink))

	ui.readyContent = container.NewBorder(
		container.NewVBox(header, columnHeader), // top
		footer,                                  // bottom
		nil,                                     // left
		nil,                                     // right
		ui.list,                                 // center
	)
}

// onSort handles a header click
func (ui *RootUI) onSort(key domain.SortKey) {
	if err := ui.dashboard.RequestSort(key); err != nil {
		slog.Warn("Sort request rejected", slog.String("key", string(key)), slog.Any("error", err))
	}
}

// refresh rebuilds the view model and updates the window. Must run on the UI goroutine.
func (ui *RootUI) refresh() {
	ui.model = view.Build(ui.dashboard.State())
	if ui.metrics != nil {
		ui.metrics.RecordRefresh()
	}

	switch ui.model.State {
	case view.StateReady:
		for i, cell := range ui.model.Headers {
			ui.headerButtons[i].SetText(cell.Text())
		}
		ui.list.Refresh()
		ui.show(view.StateReady, ui.readyContent)
	default:
		ui.statusLabel.SetText(ui.model.Message)
		ui.show(ui.model.State, ui.statusContent)
	}
}

// show swaps the window content only when the render state changes
func (ui *RootUI) show(state view.RenderState, content fyne.CanvasObject) {
	if ui.shown && ui.current == state {
		return
	}
	ui.current = state
	ui.shown = true
	ui.window.SetContent(content)
}

// IconReady is called when an icon has been mirrored. Refreshes are throttled;
// call RefreshRows once syncing is done to pick up the tail.
func (ui *RootUI) IconReady(id string) {
	ui.iconMu.Lock()
	if time.Since(ui.lastIconRefresh) < IconRefreshDebounce {
		ui.iconMu.Unlock()
		return
	}
	ui.lastIconRefresh = time.Now()
	ui.iconMu.Unlock()

	fyne.Do(ui.RefreshRows)
}

// RefreshRows redraws the visible rows without rebuilding the model
func (ui *RootUI) RefreshRows() {
	ui.list.Refresh()
}
