package math

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	if d := cmp.Diff(m, m.Mul(Identity())); d != "" {
		t.Errorf("M * I should equal M (-want +got):\n%s", d)
	}
	if d := cmp.Diff(m, Identity().Mul(m)); d != "" {
		t.Errorf("I * M should equal M (-want +got):\n%s", d)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate then translate commutes, so check against a non-commuting pair.
	p := Perspective(Radians(90), 1, 1, 10)
	tr := Translate(0, 0, -5)
	got := p.Mul(tr).TransformVec3(Vec3{0, 0, 0})
	want := p.TransformVec3(Vec3{0, 0, -5})
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("(P*T)x should equal P(Tx) (-want +got):\n%s", d)
	}
}

func TestRadians(t *testing.T) {
	if d := cmp.Diff(float32(3.14159265), Radians(180), approx); d != "" {
		t.Errorf("Radians(180) mismatch:\n%s", d)
	}
	if Radians(0) != 0 {
		t.Error("Radians(0) should be 0")
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(Radians(45), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
	// Points on the near and far planes map to NDC -1 and 1.
	near := m.TransformVec3(Vec3{0, 0, -0.1})
	far := m.TransformVec3(Vec3{0, 0, -100})
	if d := cmp.Diff(float32(-1), near.Z, approx); d != "" {
		t.Errorf("near plane depth:\n%s", d)
	}
	if d := cmp.Diff(float32(1), far.Z, cmpopts.EquateApprox(0, 1e-3)); d != "" {
		t.Errorf("far plane depth:\n%s", d)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
	// The eye maps to the origin, the target lies down -Z.
	if d := cmp.Diff(Vec3{}, m.TransformVec3(eye), approx); d != "" {
		t.Errorf("eye should map to origin:\n%s", d)
	}
	if d := cmp.Diff(Vec3{0, 0, -5}, m.TransformVec3(Vec3{}), approx); d != "" {
		t.Errorf("target should map to -Z:\n%s", d)
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"identity", Identity()},
		{"translate", Translate(1, -2, 3)},
		{"look at", LookAt(Vec3{1, 2, 3}, Vec3{0, 0, 0}, Vec3{0, 1, 0})},
		{"projection view", Perspective(Radians(70), 1.5, 0.1, 1000).Mul(LookAt(Vec3{0, 0, -1}, Vec3{}, Vec3{0, 1, 0}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Inverse()
			if !ok {
				t.Fatal("expected invertible matrix")
			}
			if d := cmp.Diff(Identity(), inv.Mul(tt.m), approx); d != "" {
				t.Errorf("inv * m should be identity (-want +got):\n%s", d)
			}
		})
	}
}

func TestInverseTranslate(t *testing.T) {
	inv, ok := Translate(5, 10, 15).Inverse()
	if !ok {
		t.Fatal("translation should be invertible")
	}
	if d := cmp.Diff(Translate(-5, -10, -15), inv, approx); d != "" {
		t.Errorf("inverse translation (-want +got):\n%s", d)
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if _, ok := zero.Inverse(); ok {
		t.Error("zero matrix should not be invertible")
	}
}

func TestMulVec4(t *testing.T) {
	got := Translate(10, 20, 30).MulVec4(Vec4{1, 2, 3, 1})
	want := Vec4{11, 22, 33, 1}
	if got != want {
		t.Errorf("MulVec4: got %v, want %v", got, want)
	}
}
