package vocabulary

import (
	"sync"
	"time"

	"github.com/example/engmemory/pkg/models"
)

// DebouncedSearch coalesces rapid successive queries into one store
// search after a quiet period, so search-as-you-type input does not run
// one query per keystroke.
type DebouncedSearch struct {
	store *Store
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncedSearch creates a debouncer over the store. A delay of zero
// or below falls back to 300ms.
func NewDebouncedSearch(store *Store, delay time.Duration) *DebouncedSearch {
	if delay <= 0 {
		delay = 300 * time.Millisecond
	}
	return &DebouncedSearch{store: store, delay: delay}
}

// Query schedules a search for query; results arrive on the deliver
// callback. A newer call cancels any search still pending.
func (d *DebouncedSearch) Query(query string, deliver func(models.Vocabulary)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		deliver(d.store.Search(query))
	})
}

// Cancel drops any pending search.
func (d *DebouncedSearch) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
