package utils

import "testing"

func TestPointInCircle(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"圆心", 100, 100, true},
		{"边界", 180, 100, true},
		{"圆外", 181, 100, false},
		{"外接正方形的角", 170, 170, false},
		{"对角线内", 150, 150, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInCircle(tt.px, tt.py, 100, 100, 80); got != tt.want {
				t.Errorf("PointInCircle(%v, %v) = %v, 期望 %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestPointInRect(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"左上角", 10, 20, true},
		{"内部", 50, 50, true},
		{"右边界", 110, 50, false},
		{"下边界", 50, 120, false},
		{"左侧", 9, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, 10, 20, 100, 100); got != tt.want {
				t.Errorf("PointInRect(%v, %v) = %v, 期望 %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}
