package math

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Angle(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float32
	}{
		{Vec2{1, 0}, 0},
		{Vec2{0, 1}, Radians(90)},
		{Vec2{-1, 0}, Radians(180)},
		{Vec2{0, -1}, Radians(-90)},
	}
	for _, tt := range tests {
		if d := cmp.Diff(tt.want, tt.v.Angle(), approx); d != "" {
			t.Errorf("%v.Angle() mismatch:\n%s", tt.v, d)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if d := cmp.Diff(Vec3{0.6, 0, 0.8}, n, approx); d != "" {
		t.Errorf("Normalize mismatch:\n%s", d)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector should stay zero, got %v", z)
	}
}

func TestVec3DistanceSquared(t *testing.T) {
	got := Vec3{1, 2, 3}.DistanceSquared(Vec3{1, 4, 3})
	if got != 4 {
		t.Errorf("DistanceSquared = %v, want 4", got)
	}
}

func TestVec3From(t *testing.T) {
	s := []float32{1, 2, 3, 4}
	if got := Vec3From(s[1:]); got != (Vec3{2, 3, 4}) {
		t.Errorf("Vec3From = %v", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a, b := Vec3{0, 0, 0}, Vec3{2, 4, -2}
	if got := a.Lerp(b, 0.5); got != (Vec3{1, 2, -1}) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v", got)
	}
}
