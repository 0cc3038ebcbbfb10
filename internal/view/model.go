package view

import (
	"coin_tracker/internal/domain"
	"coin_tracker/internal/service"
)

// Fixed texts of the dashboard.
const (
	Title             = "Cryptocurrency Tracker"
	SearchPlaceholder = "Search cryptocurrencies..."
	LoadingText       = "Loading..."
	NotAvailable      = "N/A"

	// Footer credit, shown with the table
	FooterPrefix = "© 2024"
	FooterAuthor = "richardsawanaka"
	FooterURL    = "https://heneral.github.io/portfolio/"
)

// RenderState is the mutually exclusive state the dashboard renders in.
type RenderState int

const (
	StateLoading RenderState = iota
	StateError
	StateReady
)

func (s RenderState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ChangeClass styles the 24h change cell.
type ChangeClass string

const (
	ClassNone     ChangeClass = ""
	ClassPositive ChangeClass = "positive"
	ClassNegative ChangeClass = "negative"
)

// Column is a sortable table column.
type Column struct {
	Key   domain.SortKey
	Label string
}

// Columns in display order.
var Columns = []Column{
	{Key: domain.SortByRank, Label: "Rank"},
	{Key: domain.SortByName, Label: "Name"},
	{Key: domain.SortByPrice, Label: "Price"},
	{Key: domain.SortByChange24h, Label: "24h Change"},
	{Key: domain.SortByMarketCap, Label: "Market Cap"},
}

// HeaderCell is a clickable sort trigger. Indicator is set only on the active column.
type HeaderCell struct {
	Key       domain.SortKey
	Label     string
	Indicator string
}

// Text returns the label followed by the indicator, if any.
func (h HeaderCell) Text() string {
	if h.Indicator == "" {
		return h.Label
	}
	return h.Label + " " + h.Indicator
}

// Row is one formatted table row, identified by the record ID.
type Row struct {
	ID          string
	Rank        string
	Name        string
	Price       string
	Change      string
	ChangeClass ChangeClass
	MarketCap   string
}

// Model is everything the renderer needs for one frame.
type Model struct {
	State   RenderState
	Message string

	Search  string
	Headers []HeaderCell
	Rows    []Row
}

// Build derives the render model from the dashboard state. Loading wins over
// error, and error wins over the table.
func Build(state service.State) Model {
	if state.Loading {
		return Model{State: StateLoading, Message: LoadingText}
	}
	if state.Err != "" {
		return Model{State: StateError, Message: "Error: " + state.Err}
	}

	visible := state.Visible()
	rows := make([]Row, 0, len(visible))
	for _, r := range visible {
		rows = append(rows, BuildRow(r))
	}

	return Model{
		State:   StateReady,
		Search:  state.Search,
		Headers: BuildHeaders(state.Sort),
		Rows:    rows,
	}
}

// BuildHeaders marks the active sort column with its direction arrow.
func BuildHeaders(spec domain.SortSpec) []HeaderCell {
	cells := make([]HeaderCell, len(Columns))
	for i, col := range Columns {
		cells[i] = HeaderCell{Key: col.Key, Label: col.Label}
		if col.Key == spec.Key {
			cells[i].Indicator = spec.Direction.Indicator()
		}
	}
	return cells
}

// BuildRow formats a single record.
func BuildRow(r domain.MarketRecord) Row {
	return Row{
		ID:          r.ID,
		Rank:        FormatRank(r.MarketCapRank),
		Name:        r.DisplayName(),
		Price:       FormatUSD(r.CurrentPrice),
		Change:      FormatChange(r.PriceChangePercentage24h),
		ChangeClass: changeClass(r),
		MarketCap:   FormatUSD(r.MarketCap),
	}
}

func changeClass(r domain.MarketRecord) ChangeClass {
	switch r.ChangeDirection() {
	case "positive":
		return ClassPositive
	case "negative":
		return ClassNegative
	default:
		return ClassNone
	}
}
