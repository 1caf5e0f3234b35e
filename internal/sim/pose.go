package sim

import (
	"context"
	"math/rand"

	"github.com/statefuse/statefuse/buffer"
	"github.com/statefuse/statefuse/clock"
	"github.com/statefuse/statefuse/payload"
	"github.com/statefuse/statefuse/sensor"
)

// PoseDriver emits full-state entries (measurement plus core and sensor
// state) at a slower rate. Every DelayEvery-th sample is held back and
// delivered after its successor, modelling transport delay that produces
// out-of-order arrivals at the buffer.
type PoseDriver struct {
	handle     *sensor.Handle
	period     clock.Time
	offset     clock.Time
	count      int
	delayEvery int
	rng        *rand.Rand
}

// NewPoseDriver creates a pose driver. offset shifts the first sample so
// several drivers interleave rather than collide. delayEvery <= 0 disables
// delayed delivery.
func NewPoseDriver(h *sensor.Handle, period, offset clock.Time, count, delayEvery int, seed int64) *PoseDriver {
	return &PoseDriver{
		handle:     h,
		period:     period,
		offset:     offset,
		count:      count,
		delayEvery: delayEvery,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Start emits the configured number of pose samples. Held-back samples are
// emitted one slot late and tagged as out of order.
func (d *PoseDriver) Start(ctx context.Context) (<-chan buffer.Entry, error) {
	ch := make(chan buffer.Entry)
	go func() {
		defer close(ch)
		var held *buffer.Entry
		for i := 0; i < d.count; i++ {
			ts := d.offset.Add(clock.Time(i) * d.period)
			e := d.sample(ts, i)

			if d.delayEvery > 0 && (i+1)%d.delayEvery == 0 {
				// Hold this one back; it arrives after the next sample.
				late := buffer.NewEntry(e.Timestamp(), e.Data(), e.Sensor(), buffer.MetaOutOfOrder)
				held = &late
				continue
			}

			select {
			case ch <- e:
			case <-ctx.Done():
				return
			}

			if held != nil {
				select {
				case ch <- *held:
				case <-ctx.Done():
					return
				}
				held = nil
			}
		}
		if held != nil {
			select {
			case ch <- *held:
			case <-ctx.Done():
			}
		}
	}()
	return ch, nil
}

// Name returns the driver identifier.
func (d *PoseDriver) Name() string { return "pose:" + d.handle.Name() }

func (d *PoseDriver) sample(ts clock.Time, i int) buffer.Entry {
	x, y, z := d.rng.Float64()*10, d.rng.Float64()*10, d.rng.Float64()*2
	meas := payload.NewPoseMeasurement(x, y, z, payload.Identity())

	core := payload.NewCoreState([]float64{x, y, z, 0, 0, 0}, nil)
	calib := &payload.PoseSensorState{
		Position:    meas.Position,
		Orientation: payload.Identity(),
	}

	data := buffer.MeasurementData(meas)
	data.SetStates(core, calib)

	meta := buffer.MetaSensorState
	if i == 0 {
		meta = buffer.MetaInitState
	}
	return buffer.NewEntry(ts, data, d.handle, meta)
}
