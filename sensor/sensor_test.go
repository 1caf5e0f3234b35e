package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	a := New("pose")
	b := New("pose")

	assert.True(t, a.Same(a))
	assert.False(t, a.Same(b), "equal names must not imply identity")
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNilHandle(t *testing.T) {
	var nilHandle *Handle
	a := New("pose")

	assert.True(t, nilHandle.Same(nil))
	assert.False(t, nilHandle.Same(a))
	assert.False(t, a.Same(nil))
	assert.Equal(t, "<none>", nilHandle.String())
}

func TestName(t *testing.T) {
	h := New("imu")
	assert.Equal(t, "imu", h.Name())
	assert.Equal(t, "imu", h.String())
}
