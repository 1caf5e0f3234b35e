package sim

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/statefuse/statefuse/buffer"
	"github.com/statefuse/statefuse/internal/inspect"
)

// Config holds scenario configuration.
type Config struct {
	Buffer  *buffer.Buffer
	Drivers []Driver
	Stats   *Stats
	Logger  *zap.Logger
	Filters *inspect.Chain   // optional dump filtering
	Writers []inspect.Writer // dump destinations, may be empty
}

// Run executes the scenario: starts every driver, drains all of them
// through a single goroutine owning the buffer (the buffer itself defines
// no locking), and evicts overflow after each insertion the way the
// estimation loop does. Blocks until the drivers are exhausted or ctx is
// cancelled, then renders the final buffer through the configured writers.
func Run(ctx context.Context, cfg *Config) error {
	if cfg.Buffer == nil {
		return fmt.Errorf("sim: buffer is required")
	}
	if len(cfg.Drivers) == 0 {
		return fmt.Errorf("sim: at least one driver is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Stats == nil {
		cfg.Stats = NewStats()
	}

	// Cancelling the derived context unwinds already started drivers when a
	// later Start fails, so no producer goroutine outlives this call.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	chans := make([]<-chan buffer.Entry, 0, len(cfg.Drivers))
	for _, d := range cfg.Drivers {
		ch, err := d.Start(ctx)
		if err != nil {
			return fmt.Errorf("sim: start driver %s: %w", d.Name(), err)
		}
		chans = append(chans, ch)
	}

	merged := make(chan buffer.Entry)
	var wg sync.WaitGroup

	for _, ch := range chans {
		wg.Add(1)
		go func(in <-chan buffer.Entry) {
			defer wg.Done()
			for e := range in {
				merged <- e
			}
		}(ch)
	}

	go func() {
		wg.Wait()
		close(merged)
	}()

	for e := range merged {
		before := cfg.Buffer.Len()
		idx := cfg.Buffer.AddEntrySorted(e)

		cfg.Stats.RecordInsert()
		if idx < cfg.Buffer.Len()-1 {
			// Landed behind already stored entries.
			cfg.Stats.RecordOutOfOrder()
			logger.Debug("out-of-order arrival",
				zap.Float64("timestamp", e.Timestamp().Seconds()),
				zap.Stringer("sensor", e.Sensor()),
				zap.Int("index", idx),
			)
		}

		cfg.Buffer.RemoveOverflowEntries()
		cfg.Stats.RecordEvicted(before + 1 - cfg.Buffer.Len())
	}

	logger.Info("scenario finished",
		zap.Uint64("inserted", cfg.Stats.Inserted()),
		zap.Uint64("outOfOrder", cfg.Stats.OutOfOrder()),
		zap.Uint64("evicted", cfg.Stats.Evicted()),
		zap.Int("bufferLen", cfg.Buffer.Len()),
		zap.Bool("sorted", cfg.Buffer.IsSorted()),
	)

	for _, w := range cfg.Writers {
		if err := inspect.DumpBuffer(cfg.Buffer, cfg.Filters, w); err != nil {
			return fmt.Errorf("sim: dump to %s: %w", w.Name(), err)
		}
		_ = w.Close()
	}

	return nil
}
