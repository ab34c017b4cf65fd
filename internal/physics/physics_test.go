package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRectAround(t *testing.T) {
	r := RectAround(mgl64.Vec2{300, 300}, 20, 30)
	assert.Equal(t, Rect{X: 290, Y: 285, W: 20, H: 30}, r)
}

func TestIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"shared edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"vertical only", Rect{X: 0, Y: 11, W: 10, H: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base))
		})
	}
}

func TestContainsAndGrow(t *testing.T) {
	field := Rect{W: 600, H: 600}.Grow(10)
	assert.True(t, field.Contains(mgl64.Vec2{-10, 610}))
	assert.False(t, field.Contains(mgl64.Vec2{-10.5, 300}))
	assert.False(t, field.Contains(mgl64.Vec2{300, 611}))
}

func TestMoveToward(t *testing.T) {
	from := mgl64.Vec2{0, 0}
	target := mgl64.Vec2{3, 4}

	got := MoveToward(from, target, 2.5)
	assert.InDelta(t, 1.5, got.X(), 1e-9)
	assert.InDelta(t, 2.0, got.Y(), 1e-9)

	assert.Equal(t, target, MoveToward(from, target, 10))
	assert.Equal(t, target, MoveToward(target, target, 1))
}
