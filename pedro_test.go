package pedro

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.InDelta(t, 5.0, P(3, 4).Length(), 1e-12)
	assert.InDelta(t, 90.0, P(0, 2).Angle(), 1e-12)
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestRotationIsCounterClockwise(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, P(1, 0).Rotated(90).Equal(P(0, 1)))
	assert.True(t, P(2, 1).RotatedAround(P(1, 1), 90).Equal(P(1, 2)))
}

func TestLerpEndpointsExact(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b := P(0.1, 0.7), P(133.3, 12.9)
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
}

func TestAngleHelpers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 350.0, NormalizeDeg(-10), 1e-9)
	assert.InDelta(t, 0.0, NormalizeDeg(720), 1e-9)
	assert.InDelta(t, 20.0, DeltaDeg(350, 10), 1e-9)
	assert.InDelta(t, -20.0, DeltaDeg(10, 350), 1e-9)
	assert.InDelta(t, 180.0, DeltaDeg(0, 180), 1e-9)
	assert.False(t, P(math.NaN(), 0).IsValid())
}

func TestInField(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, InField(P(0, 144)))
	assert.False(t, InField(P(-0.1, 3)))
	assert.False(t, InField(P(3, 144.5)))
}

func TestCombineOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(2, 0)
	// rotate first, then move
	q := Rotation(90).Combine(Translation(P(10, 0))).Transform(p)
	assert.True(t, q.Equal(P(10, 2)), "got %v", q)
	// move first, then rotate
	q = Translation(P(10, 0)).Combine(Rotation(90)).Transform(p)
	assert.True(t, q.Equal(P(0, 12)), "got %v", q)
	assert.Equal(t, p, Identity().Transform(p))
	assert.Equal(t, Origin, C2P(complex(math.NaN(), 1)))
}
