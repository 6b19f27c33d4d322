package tensor

import (
	"errors"
	"testing"
)

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{1, 16, 16}, 256},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Validate() on zero dimension = %v, want ErrShapeMismatch", err)
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Fatalf("ComputeStrides() = %v, want %v", strides, want)
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{Shape{1, 2}, Shape{2, 1}, Shape{2, 2}, true, false},
		{Shape{5}, Shape{2, 5}, Shape{2, 5}, true, false},
		{Shape{3, 4}, Shape{3, 5}, nil, false, true},
		{Shape{2, 3, 3}, Shape{3, 2, 3}, nil, false, true},
	}

	for _, tt := range tests {
		got, broadcast, err := BroadcastShapes(tt.a, tt.b)
		if tt.wantErr {
			if !errors.Is(err, ErrBroadcast) {
				t.Errorf("BroadcastShapes(%v, %v) error = %v, want ErrBroadcast", tt.a, tt.b, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) unexpected error: %v", tt.a, tt.b, err)
			continue
		}
		assertEqualShape(t, tt.want, got, "BroadcastShapes")
		if broadcast != tt.broadcast {
			t.Errorf("BroadcastShapes(%v, %v) broadcast = %v, want %v", tt.a, tt.b, broadcast, tt.broadcast)
		}
	}
}

func TestBroadcastStrides(t *testing.T) {
	got := broadcastStrides(Shape{3, 1}, Shape{2, 3, 4})
	want := []int{0, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("broadcastStrides() = %v, want %v", got, want)
		}
	}
}

func TestNormalizeAxis(t *testing.T) {
	if ax, err := normalizeAxis(-1, 3); err != nil || ax != 2 {
		t.Errorf("normalizeAxis(-1, 3) = %d, %v; want 2, nil", ax, err)
	}
	if _, err := normalizeAxis(3, 3); !errors.Is(err, ErrRange) {
		t.Errorf("normalizeAxis(3, 3) error = %v, want ErrRange", err)
	}
	if _, err := normalizeAxis(-4, 3); !errors.Is(err, ErrRange) {
		t.Errorf("normalizeAxis(-4, 3) error = %v, want ErrRange", err)
	}
}
