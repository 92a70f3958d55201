package geom

import "testing"

func TestRectNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{
			name: "already normalized",
			in:   Rect{X: 10, Y: 20, Width: 30, Height: 40},
			want: Rect{X: 10, Y: 20, Width: 30, Height: 40},
		},
		{
			name: "negative width",
			in:   Rect{X: 100, Y: 20, Width: -30, Height: 40},
			want: Rect{X: 70, Y: 20, Width: 30, Height: 40},
		},
		{
			name: "negative height",
			in:   Rect{X: 10, Y: 100, Width: 30, Height: -40},
			want: Rect{X: 10, Y: 60, Width: 30, Height: 40},
		},
		{
			name: "both negative",
			in:   Rect{X: 50, Y: 50, Width: -20, Height: -10},
			want: Rect{X: 30, Y: 40, Width: 20, Height: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"interior", 50, 30, true},
		{"left edge", 10, 30, true},
		{"right edge", 110, 30, true},
		{"corner", 10, 10, true},
		{"outside left", 9.9, 30, false},
		{"outside below", 50, 60.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	got := r.Expand(5)
	want := Rect{X: 5, Y: 5, Width: 30, Height: 30}
	if got != want {
		t.Errorf("Expand(5) = %+v, want %+v", got, want)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 20, Width: 10, Height: 10}

	got := a.Union(b)
	want := Rect{X: 0, Y: 0, Width: 30, Height: 30}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	// Empty rects contribute nothing.
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %+v, want %+v", got, b)
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	cx, cy := r.Center()
	if cx != 60 || cy != 45 {
		t.Errorf("Center() = (%v, %v), want (60, 45)", cx, cy)
	}
}
