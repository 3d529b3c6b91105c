package math

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
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

func TestVec3Length(t *testing.T) {
	v := Vec3{0, 3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("Vec3.Normalize() of zero vector should be zero")
	}
}

func TestVec3Less(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want bool
	}{
		{Vec3{0, 0, 0}, Vec3{1, 0, 0}, true},
		{Vec3{1, 0, 0}, Vec3{0, 9, 9}, false},
		{Vec3{1, 1, 0}, Vec3{1, 2, 0}, true},
		{Vec3{1, 1, 1}, Vec3{1, 1, 2}, true},
		{Vec3{1, 1, 1}, Vec3{1, 1, 1}, false},
	}

	for _, tc := range tests {
		if got := tc.a.Less(tc.b); got != tc.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestVec3MinMax(t *testing.T) {
	tests := []struct {
		a, b     Vec3
		min, max Vec3
	}{
		{Vec3{0, 5, 0}, Vec3{1, 0, 0}, Vec3{0, 5, 0}, Vec3{1, 0, 0}},
		{Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 0, 0}, Vec3{1, 0, 0}},
		{Vec3{1, 0, 0}, Vec3{0, 0, 0}, Vec3{0, 0, 0}, Vec3{1, 0, 0}},
		{Vec3{2, 2, 2}, Vec3{2, 2, 2}, Vec3{2, 2, 2}, Vec3{2, 2, 2}},
	}

	for _, tc := range tests {
		if got := Min(tc.a, tc.b); got != tc.min {
			t.Errorf("Min(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.min)
		}
		if got := Max(tc.a, tc.b); got != tc.max {
			t.Errorf("Max(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.max)
		}
		// Min and Max of a pair must return distinct endpoints unless the
		// inputs are equal; both collapsing to one point would merge
		// unrelated edge keys.
		if Min(tc.a, tc.b) == Max(tc.a, tc.b) && tc.a != tc.b {
			t.Errorf("Min and Max both returned %v for %v, %v", Min(tc.a, tc.b), tc.a, tc.b)
		}
	}
}

func TestTruncate(t *testing.T) {
	got := Truncate(Vec3{1.9, -1.9, 2.0})
	want := Vec3i{1, -1, 2}
	if got != want {
		t.Errorf("Truncate() = %v, want %v", got, want)
	}
}
