package tensor

import (
	"errors"
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // No axes
		{Shape{5}, 5},        // One mode
		{Shape{3, 4}, 12},    // Two modes
		{Shape{2, 3, 4}, 24}, // Three modes
		{Shape{1, 1, 1}, 1},  // Trivial modes
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	validShapes := []Shape{
		{},
		{1},
		{3, 4},
		{2, 3, 4},
	}

	for _, s := range validShapes {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	invalidShapes := []Shape{
		{0},
		{3, 0},
		{-1},
		{3, -4},
	}

	for _, s := range invalidShapes {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should fail but didn't", s)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{3}, Shape{3, 1}, false},
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{}, []int{}},
		{Shape{4}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{2, 1, 5}, []int{5, 5, 1}}, // trivial mode keeps its neighbour's step
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.expected) {
			t.Fatalf("Shape%v.ComputeStrides() length = %d, want %d", tt.shape, len(got), len(tt.expected))
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Shape%v.ComputeStrides()[%d] = %d, want %d", tt.shape, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestShapePermuted(t *testing.T) {
	s := Shape{2, 3, 5}
	assertEqualShape(t, Shape{5, 2, 3}, s.Permuted([]int{2, 0, 1}), "Permuted")
	assertEqualShape(t, Shape{2, 3, 5}, s, "original untouched")
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 7
	if s[0] != 2 {
		t.Error("Clone should not share memory")
	}
	if empty := Shape(nil).Clone(); empty == nil || len(empty) != 0 {
		t.Errorf("Clone of a modeless side = %#v, want empty non-nil", empty)
	}
}

// Dims Tests

func TestDimsSizeAndUniform(t *testing.T) {
	d := Dims{{2, 3}, {6}}
	rows, cols := d.Size()
	if rows != 6 || cols != 6 {
		t.Errorf("Size() = (%d, %d), want (6, 6)", rows, cols)
	}
	if d.Uniform() {
		t.Error("{{2,3},{6}} should not be uniform")
	}
	if !(Dims{{2, 3}, {2, 3}}).Uniform() {
		t.Error("{{2,3},{2,3}} should be uniform")
	}
	assertEqualShape(t, Shape{2, 3}, d.Rows(), "Rows")
	assertEqualShape(t, Shape{6}, d.Cols(), "Cols")

	ket := Dims{{4}, {}}
	if rows, cols := ket.Size(); rows != 4 || cols != 1 {
		t.Errorf("empty column side should count as 1, got (%d, %d)", rows, cols)
	}
}

func TestDimsValidate(t *testing.T) {
	if err := (Dims{{2}, {}}).Validate(); err != nil {
		t.Errorf("valid dims rejected: %v", err)
	}
	if err := (Dims{{2}, {0}}).Validate(); err == nil {
		t.Error("zero dimension should be rejected")
	}
}

func TestDimsString(t *testing.T) {
	if got := (Dims{{2, 3}, {1}}).String(); got != "[[2 3] [1]]" {
		t.Errorf("String() = %q", got)
	}
}

func TestCheckPermutation(t *testing.T) {
	tests := []struct {
		name  string
		order []int
		n     int
		ok    bool
	}{
		{"identity", []int{0, 1, 2}, 3, true},
		{"reversed", []int{2, 1, 0}, 3, true},
		{"empty", []int{}, 0, true},
		{"short", []int{0, 1}, 3, false},
		{"duplicate", []int{0, 0, 1}, 3, false},
		{"out of range", []int{0, 1, 3}, 3, false},
		{"negative", []int{-1, 0}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPermutation(tt.order, tt.n)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidOrder) {
				t.Errorf("expected ErrInvalidOrder, got %v", err)
			}
		})
	}
}
