// Package payload provides concrete payload types carried by history
// entries: the core filter state and the measurement types of the common
// sensor modalities. The history store itself never inspects these; they
// exist for the filter core, the sensor drivers, and the tests.
package payload

import "gonum.org/v1/gonum/mat"

// CoreState is the core filter state: the stacked estimate vector
// (position, velocity, orientation) and its covariance.
type CoreState struct {
	Mean *mat.VecDense
	Cov  *mat.SymDense
}

// NewCoreState builds a core state from a mean vector and its covariance.
// Cov may be nil for states whose uncertainty is not tracked yet.
func NewCoreState(mean []float64, cov *mat.SymDense) *CoreState {
	return &CoreState{
		Mean: mat.NewVecDense(len(mean), mean),
		Cov:  cov,
	}
}

// Dim returns the dimension of the state vector.
func (s *CoreState) Dim() int {
	if s.Mean == nil {
		return 0
	}
	return s.Mean.Len()
}

// PoseSensorState is the per-sensor calibration state of a pose sensor:
// the position and orientation of the sensor frame in the body frame.
type PoseSensorState struct {
	Position    *mat.VecDense
	Orientation Quaternion
}

// Quaternion is a unit quaternion in w, x, y, z order.
type Quaternion [4]float64

// Identity returns the identity rotation.
func Identity() Quaternion { return Quaternion{1, 0, 0, 0} }

// PoseMeasurement is a 6-DoF pose: position and orientation.
type PoseMeasurement struct {
	Position    *mat.VecDense
	Orientation Quaternion
}

// NewPoseMeasurement builds a pose measurement from a position [x y z]
// and an orientation quaternion.
func NewPoseMeasurement(x, y, z float64, q Quaternion) *PoseMeasurement {
	return &PoseMeasurement{
		Position:    mat.NewVecDense(3, []float64{x, y, z}),
		Orientation: q,
	}
}

// PositionMeasurement is a 3-DoF position.
type PositionMeasurement struct {
	Position *mat.VecDense
}

// NewPositionMeasurement builds a position measurement from [x y z].
func NewPositionMeasurement(x, y, z float64) *PositionMeasurement {
	return &PositionMeasurement{Position: mat.NewVecDense(3, []float64{x, y, z})}
}

// VelocityMeasurement is a 3-DoF velocity [x y z].
type VelocityMeasurement struct {
	Velocity *mat.VecDense
}

// NewVelocityMeasurement builds a velocity measurement from [x y z].
func NewVelocityMeasurement(x, y, z float64) *VelocityMeasurement {
	return &VelocityMeasurement{Velocity: mat.NewVecDense(3, []float64{x, y, z})}
}

// ImuMeasurement carries one inertial sample: linear acceleration and
// angular velocity in the body frame.
type ImuMeasurement struct {
	LinearAcceleration *mat.VecDense
	AngularVelocity    *mat.VecDense
}

// NewImuMeasurement builds an IMU sample from acceleration and angular
// velocity triples.
func NewImuMeasurement(acc, gyro [3]float64) *ImuMeasurement {
	return &ImuMeasurement{
		LinearAcceleration: mat.NewVecDense(3, acc[:]),
		AngularVelocity:    mat.NewVecDense(3, gyro[:]),
	}
}
