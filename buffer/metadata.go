package buffer

// Metadata classifies the purpose of a buffer entry.
type Metadata int

const (
	MetaInvalid Metadata = iota
	// MetaMeasurement tags a raw sensor measurement.
	MetaMeasurement
	// MetaSensorState tags an ordinary sensor filter state.
	MetaSensorState
	// MetaCoreState tags a core filter state.
	MetaCoreState
	// MetaInitState tags the first state produced for a sensor.
	MetaInitState
	// MetaOutOfOrder tags an entry inserted behind already processed entries.
	MetaOutOfOrder
	// MetaAutoAdd tags a synthetically generated entry.
	MetaAutoAdd
	// MetaMeasurementAuto tags the measurement half of an intermediate pair.
	MetaMeasurementAuto
	// MetaCoreStateAuto tags the state half of an intermediate pair.
	MetaCoreStateAuto
)

// String returns the string representation of a Metadata value.
func (m Metadata) String() string {
	switch m {
	case MetaMeasurement:
		return "measurement"
	case MetaSensorState:
		return "sensor_state"
	case MetaCoreState:
		return "core_state"
	case MetaInitState:
		return "init_state"
	case MetaOutOfOrder:
		return "out_of_order"
	case MetaAutoAdd:
		return "auto_add"
	case MetaMeasurementAuto:
		return "measurement_auto"
	case MetaCoreStateAuto:
		return "core_state_auto"
	default:
		return "invalid"
	}
}

// ParseMetadata converts a string to a Metadata value.
func ParseMetadata(s string) Metadata {
	switch s {
	case "measurement":
		return MetaMeasurement
	case "sensor_state":
		return MetaSensorState
	case "core_state":
		return MetaCoreState
	case "init_state":
		return MetaInitState
	case "out_of_order":
		return MetaOutOfOrder
	case "auto_add":
		return MetaAutoAdd
	case "measurement_auto":
		return MetaMeasurementAuto
	case "core_state_auto":
		return MetaCoreStateAuto
	default:
		return MetaInvalid
	}
}

// IsMeasurementKind reports whether m tags a measurement entry.
func (m Metadata) IsMeasurementKind() bool {
	return m == MetaMeasurement || m == MetaMeasurementAuto
}

// IsStateKind reports whether m tags a state entry.
func (m Metadata) IsStateKind() bool {
	switch m {
	case MetaSensorState, MetaCoreState, MetaInitState, MetaCoreStateAuto:
		return true
	}
	return false
}

// IsAuto reports whether m tags a synthetically generated entry.
func (m Metadata) IsAuto() bool {
	switch m {
	case MetaAutoAdd, MetaMeasurementAuto, MetaCoreStateAuto:
		return true
	}
	return false
}
