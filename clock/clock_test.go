package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdering(t *testing.T) {
	a, b := Time(1.5), Time(2.5)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.After(b))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}

func TestEqualIsExact(t *testing.T) {
	assert.True(t, Time(3).Equal(Time(3)))

	// Accumulated rounding breaks exact equality on purpose. Producers
	// that want identical stamps must reuse the same value.
	sum := Time(0.1).Add(0.2)
	assert.False(t, sum.Equal(Time(0.3)))
}

func TestArithmetic(t *testing.T) {
	a := Time(2)

	assert.Equal(t, Time(3.5), a.Add(1.5))
	assert.Equal(t, Time(0.5), a.Sub(1.5))
	assert.Equal(t, Time(1.5), a.Dist(3.5))
	assert.Equal(t, Time(1.5), Time(3.5).Dist(a))
	assert.Equal(t, 2.0, a.Seconds())
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.500000000", Time(1.5).String())
}
