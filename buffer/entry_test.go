package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/statefuse/statefuse/sensor"
)

func TestMetadataString(t *testing.T) {
	for _, m := range []Metadata{
		MetaMeasurement, MetaSensorState, MetaCoreState, MetaInitState,
		MetaOutOfOrder, MetaAutoAdd, MetaMeasurementAuto, MetaCoreStateAuto,
	} {
		assert.Equal(t, m, ParseMetadata(m.String()))
	}

	assert.Equal(t, MetaInvalid, ParseMetadata("bogus"))
	assert.Equal(t, "invalid", MetaInvalid.String())
}

func TestMetadataKinds(t *testing.T) {
	assert.True(t, MetaMeasurement.IsMeasurementKind())
	assert.True(t, MetaMeasurementAuto.IsMeasurementKind())
	assert.False(t, MetaSensorState.IsMeasurementKind())

	assert.True(t, MetaSensorState.IsStateKind())
	assert.True(t, MetaCoreState.IsStateKind())
	assert.True(t, MetaInitState.IsStateKind())
	assert.True(t, MetaCoreStateAuto.IsStateKind())
	assert.False(t, MetaMeasurement.IsStateKind())

	assert.True(t, MetaAutoAdd.IsAuto())
	assert.True(t, MetaMeasurementAuto.IsAuto())
	assert.True(t, MetaCoreStateAuto.IsAuto())
	assert.False(t, MetaSensorState.IsAuto())
}

func TestDataEnvelope(t *testing.T) {
	core, sens, m := 1, 2, 3

	var d Data
	assert.False(t, d.HasStates())
	assert.False(t, d.HasMeasurement())

	d.SetMeasurement(&m)
	assert.True(t, d.HasMeasurement())
	assert.False(t, d.HasStates())

	d.SetStates(&core, &sens)
	assert.True(t, d.HasStates())
	assert.True(t, d.HasCoreState())
	assert.True(t, d.HasSensorState())

	// Clearing states keeps the measurement in place.
	d.ClearStates()
	assert.False(t, d.HasStates())
	assert.True(t, d.HasMeasurement())
	assert.Same(t, &m, d.Measurement())
}

func TestDataSharedPayload(t *testing.T) {
	m := 42
	a := MeasurementData(&m)
	b := MeasurementData(&m)

	// Both envelopes alias the same payload.
	assert.Same(t, a.Measurement(), b.Measurement())
}

func TestEntryString(t *testing.T) {
	pose := sensor.New("pose_1")
	e := NewEntry(1.5, dataFull(), pose, MetaSensorState)

	s := e.String()
	assert.Contains(t, s, "pose_1")
	assert.Contains(t, s, "sensor_state")
	assert.Contains(t, s, "states=true")
	assert.Contains(t, s, "measurement=true")
}
