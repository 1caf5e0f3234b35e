package sim

import (
	"context"
	"math/rand"

	"github.com/statefuse/statefuse/buffer"
	"github.com/statefuse/statefuse/clock"
	"github.com/statefuse/statefuse/payload"
	"github.com/statefuse/statefuse/sensor"
)

// ImuDriver emits measurement-only entries at a fixed rate, modelling a
// high-rate inertial sensor that never produces filter states itself.
type ImuDriver struct {
	handle *sensor.Handle
	period clock.Time
	count  int
	rng    *rand.Rand
}

// NewImuDriver creates a driver emitting count samples spaced period apart.
func NewImuDriver(h *sensor.Handle, period clock.Time, count int, seed int64) *ImuDriver {
	return &ImuDriver{
		handle: h,
		period: period,
		count:  count,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Start emits the configured number of IMU samples in timestamp order.
func (d *ImuDriver) Start(ctx context.Context) (<-chan buffer.Entry, error) {
	ch := make(chan buffer.Entry)
	go func() {
		defer close(ch)
		ts := clock.Time(0)
		for i := 0; i < d.count; i++ {
			m := payload.NewImuMeasurement(
				[3]float64{d.rng.NormFloat64(), d.rng.NormFloat64(), 9.81 + d.rng.NormFloat64()*0.1},
				[3]float64{d.rng.NormFloat64() * 0.01, d.rng.NormFloat64() * 0.01, d.rng.NormFloat64() * 0.01},
			)
			e := buffer.NewEntry(ts, buffer.MeasurementData(m), d.handle, buffer.MetaMeasurement)
			select {
			case ch <- e:
			case <-ctx.Done():
				return
			}
			ts = ts.Add(d.period)
		}
	}()
	return ch, nil
}

// Name returns the driver identifier.
func (d *ImuDriver) Name() string { return "imu:" + d.handle.Name() }
