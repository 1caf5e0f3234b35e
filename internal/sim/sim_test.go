package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statefuse/statefuse/buffer"
	"github.com/statefuse/statefuse/clock"
	"github.com/statefuse/statefuse/sensor"
)

func drain(t *testing.T, d Driver) []buffer.Entry {
	t.Helper()
	ch, err := d.Start(context.Background())
	require.NoError(t, err)

	var out []buffer.Entry
	for e := range ch {
		out = append(out, e)
	}
	return out
}

func TestImuDriver(t *testing.T) {
	imu := sensor.New("imu")
	d := NewImuDriver(imu, 0.01, 50, 1)

	entries := drain(t, d)
	require.Len(t, entries, 50)

	for i, e := range entries {
		assert.True(t, e.Sensor().Same(imu))
		assert.Equal(t, buffer.MetaMeasurement, e.Metadata())
		assert.True(t, e.HasMeasurement())
		assert.False(t, e.HasStates())
		if i > 0 {
			assert.True(t, e.Timestamp().After(entries[i-1].Timestamp()))
		}
	}
	assert.Equal(t, "imu:imu", d.Name())
}

func TestImuDriverCancellation(t *testing.T) {
	imu := sensor.New("imu")
	d := NewImuDriver(imu, 0.01, 1000, 1)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := d.Start(ctx)
	require.NoError(t, err)

	<-ch
	cancel()

	// The channel closes without delivering all samples.
	n := 1
	for range ch {
		n++
	}
	assert.Less(t, n, 1000)
}

func TestPoseDriverStates(t *testing.T) {
	pose := sensor.New("pose_1")
	d := NewPoseDriver(pose, 0.1, 0.005, 10, 0, 1)

	entries := drain(t, d)
	require.Len(t, entries, 10)

	assert.Equal(t, buffer.MetaInitState, entries[0].Metadata())
	for i, e := range entries {
		assert.True(t, e.HasStates())
		assert.True(t, e.HasMeasurement())
		if i > 0 {
			assert.Equal(t, buffer.MetaSensorState, e.Metadata())
		}
	}
	assert.Equal(t, clock.Time(0.005), entries[0].Timestamp())
	assert.Equal(t, "pose:pose_1", d.Name())
}

func TestPoseDriverDelayedDelivery(t *testing.T) {
	pose := sensor.New("pose_1")
	d := NewPoseDriver(pose, 0.1, 0, 10, 3, 1)

	entries := drain(t, d)
	require.Len(t, entries, 10)

	var late int
	for i, e := range entries {
		if e.Metadata() == buffer.MetaOutOfOrder {
			late++
			// A held-back sample arrives behind a newer one.
			require.Greater(t, i, 0)
			assert.True(t, e.Timestamp().Before(entries[i-1].Timestamp()))
		}
	}
	assert.Equal(t, 3, late)
}

func TestRunScenario(t *testing.T) {
	imu := sensor.New("imu")
	pose := sensor.New("pose_1")

	b := buffer.New(20)
	stats := NewStats()
	cfg := &Config{
		Buffer: b,
		Drivers: []Driver{
			NewImuDriver(imu, 0.01, 100, 1),
			NewPoseDriver(pose, 0.1, 0.005, 10, 4, 2),
		},
		Stats: stats,
	}

	require.NoError(t, Run(context.Background(), cfg))

	assert.Equal(t, uint64(110), stats.Inserted())
	assert.True(t, b.IsSorted())
	assert.Equal(t, b.MaxSize(), b.Len())
	assert.Equal(t, stats.Inserted()-uint64(b.Len()), stats.Evicted())
}

// endlessDriver emits the same entry until its context is cancelled and
// signals on done when its goroutine has exited.
type endlessDriver struct {
	handle *sensor.Handle
	done   chan struct{}
}

func (d *endlessDriver) Start(ctx context.Context) (<-chan buffer.Entry, error) {
	ch := make(chan buffer.Entry)
	go func() {
		defer close(ch)
		defer close(d.done)
		m := 1
		e := buffer.NewEntry(0, buffer.MeasurementData(&m), d.handle, buffer.MetaMeasurement)
		for {
			select {
			case ch <- e:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func (d *endlessDriver) Name() string { return "endless:" + d.handle.Name() }

type failingDriver struct{}

func (failingDriver) Start(context.Context) (<-chan buffer.Entry, error) {
	return nil, errors.New("device unavailable")
}

func (failingDriver) Name() string { return "failing" }

func TestRunStartFailureStopsStartedDrivers(t *testing.T) {
	first := &endlessDriver{handle: sensor.New("imu"), done: make(chan struct{})}
	cfg := &Config{
		Buffer:  buffer.New(10),
		Drivers: []Driver{first, failingDriver{}},
	}

	err := Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")

	select {
	case <-first.done:
	case <-time.After(time.Second):
		t.Fatal("first driver still running after a later start failure")
	}
}

func TestRunValidation(t *testing.T) {
	err := Run(context.Background(), &Config{})
	assert.Error(t, err)

	err = Run(context.Background(), &Config{Buffer: buffer.New(10)})
	assert.Error(t, err)
}

func TestStatsCounters(t *testing.T) {
	s := NewStats()
	s.RecordInsert()
	s.RecordInsert()
	s.RecordOutOfOrder()
	s.RecordEvicted(3)
	s.RecordEvicted(-1)

	assert.Equal(t, uint64(2), s.Inserted())
	assert.Equal(t, uint64(1), s.OutOfOrder())
	assert.Equal(t, uint64(3), s.Evicted())
	assert.Contains(t, s.Summary(), "Inserted:     2")
}
