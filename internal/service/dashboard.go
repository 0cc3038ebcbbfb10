package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"coin_tracker/internal/domain"

	"github.com/google/uuid"
)

// State is a point-in-time copy of the dashboard state.
type State struct {
	Records []domain.MarketRecord
	Loading bool
	Err     string
	Search  string
	Sort    domain.SortSpec
}

// Visible derives the filtered and sorted rows from the state.
func (s State) Visible() []domain.MarketRecord {
	return SortRecords(FilterRecords(s.Records, s.Search), s.Sort)
}

// Dashboard owns the loaded records, the loading/error flags, the search text
// and the sort spec. Filtered and sorted views are derived on demand, never stored.
type Dashboard struct {
	mu       sync.RWMutex
	records  []domain.MarketRecord
	loading  bool
	errMsg   string
	search   string
	sort     domain.SortSpec
	onChange func()

	source   domain.MarketsSource
	loadOnce sync.Once
}

// NewDashboard creates a dashboard in the loading state with the default sort
func NewDashboard(source domain.MarketsSource) *Dashboard {
	return &Dashboard{
		loading: true,
		sort:    domain.DefaultSortSpec(),
		source:  source,
	}
}

// OnChange registers a callback invoked after every state mutation.
// The callback runs on the mutating goroutine, outside the lock.
func (d *Dashboard) OnChange(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.onChange = fn
}

// Load fetches the market list. Only the first call issues a request;
// later calls return immediately with a nil error.
func (d *Dashboard) Load(ctx context.Context) error {
	var err error
	d.loadOnce.Do(func() {
		err = d.load(ctx)
	})
	return err
}

func (d *Dashboard) load(ctx context.Context) error {
	loadID := uuid.NewString()
	start := time.Now()
	slog.InfoContext(ctx, "Loading market snapshot", slog.String("load_id", loadID))

	records, err := d.source.FetchMarkets(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Market snapshot load failed",
			slog.String("load_id", loadID),
			slog.Any("error", err),
		)
		d.SetError(err)
		return err
	}

	slog.InfoContext(ctx, "Market snapshot loaded",
		slog.String("load_id", loadID),
		slog.Int("records", len(records)),
		slog.Duration("elapsed", time.Since(start)),
	)
	d.SetRecords(records)
	return nil
}

// SetRecords stores a successful load and clears loading and error
func (d *Dashboard) SetRecords(records []domain.MarketRecord) {
	d.mu.Lock()
	d.records = records
	d.errMsg = ""
	d.loading = false
	d.mu.Unlock()

	d.notify()
}

// SetError records a failed load. The record list is left empty.
func (d *Dashboard) SetError(err error) {
	d.mu.Lock()
	d.records = nil
	d.errMsg = domain.UserMessage(err)
	d.loading = false
	d.mu.Unlock()

	d.notify()
}

// SetSearch replaces the search text
func (d *Dashboard) SetSearch(text string) {
	d.mu.Lock()
	d.search = text
	d.mu.Unlock()

	d.notify()
}

// RequestSort applies the sort-request action for a column
func (d *Dashboard) RequestSort(key domain.SortKey) error {
	if !key.Valid() {
		return domain.ErrInvalidSortKey
	}

	d.mu.Lock()
	d.sort = NextSortSpec(d.sort, key)
	d.mu.Unlock()

	d.notify()
	return nil
}

// State returns a copy of the current state
func (d *Dashboard) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return State{
		Records: d.records,
		Loading: d.loading,
		Err:     d.errMsg,
		Search:  d.search,
		Sort:    d.sort,
	}
}

// Visible returns the filtered and sorted rows for the current state
func (d *Dashboard) Visible() []domain.MarketRecord {
	return d.State().Visible()
}

func (d *Dashboard) notify() {
	d.mu.RLock()
	fn := d.onChange
	d.mu.RUnlock()

	if fn != nil {
		fn()
	}
}
