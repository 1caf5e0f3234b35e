package buffer

// Data is the payload envelope of an entry. Each slot is independently
// optional and type-erased: the buffer never inspects payload contents,
// it only tracks their presence. Payloads are shared by reference, so the
// same state or measurement object may be aliased by several entries and
// query results without being copied.
type Data struct {
	coreState   any
	sensorState any
	measurement any
}

// NewData returns an envelope carrying a core and a sensor state.
func NewData(coreState, sensorState any) Data {
	return Data{coreState: coreState, sensorState: sensorState}
}

// MeasurementData returns an envelope carrying only a measurement.
func MeasurementData(m any) Data {
	return Data{measurement: m}
}

// SetStates stores the core and sensor state payloads.
func (d *Data) SetStates(coreState, sensorState any) {
	d.coreState = coreState
	d.sensorState = sensorState
}

// SetMeasurement stores the measurement payload.
func (d *Data) SetMeasurement(m any) {
	d.measurement = m
}

// ClearStates drops the core and sensor state payloads.
// The measurement, if any, is retained.
func (d *Data) ClearStates() {
	d.coreState = nil
	d.sensorState = nil
}

// HasStates reports whether both the core and the sensor state are present.
func (d Data) HasStates() bool {
	return d.coreState != nil && d.sensorState != nil
}

// HasCoreState reports whether a core state is present.
func (d Data) HasCoreState() bool { return d.coreState != nil }

// HasSensorState reports whether a sensor state is present.
func (d Data) HasSensorState() bool { return d.sensorState != nil }

// HasMeasurement reports whether a measurement is present.
func (d Data) HasMeasurement() bool { return d.measurement != nil }

// CoreState returns the core state payload, or nil.
func (d Data) CoreState() any { return d.coreState }

// SensorState returns the sensor state payload, or nil.
func (d Data) SensorState() any { return d.sensorState }

// Measurement returns the measurement payload, or nil.
func (d Data) Measurement() any { return d.measurement }
