// Package sim provides a simulated multi-sensor scenario: sensor drivers
// that emit timestamped entries and a runner that drains them into the
// history buffer the way a real estimation loop would.
package sim

import (
	"context"

	"github.com/statefuse/statefuse/buffer"
)

// Driver produces buffer entries for one simulated sensor and emits them
// on a channel. Implementations must close the returned channel when the
// driver is exhausted or the context is cancelled.
type Driver interface {
	// Start begins emitting entries. The returned channel receives
	// entries until the driver is done or ctx is cancelled.
	// The implementation must close the channel when done.
	Start(ctx context.Context) (<-chan buffer.Entry, error)

	// Name returns a human-readable identifier for this driver.
	Name() string
}
