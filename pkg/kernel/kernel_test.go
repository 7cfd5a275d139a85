package kernel

import "testing"

func TestSignedArea(t *testing.T) {
	tests := []struct {
		name    string
		outline [][2]float64
		want    float64
	}{
		{"empty", nil, 0},
		{"ccw square", [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, 4},
		{"cw square", [][2]float64{{0, 0}, {0, 2}, {2, 2}, {2, 0}}, -4},
		{"triangle", [][2]float64{{0, 0}, {4, 0}, {0, 3}}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedArea(tt.outline); got != tt.want {
				t.Errorf("SignedArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCounterClockwise(t *testing.T) {
	cw := [][2]float64{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	ccw := CounterClockwise(cw)
	if SignedArea(ccw) <= 0 {
		t.Errorf("result should be counter-clockwise, area %v", SignedArea(ccw))
	}
	if cw[1] != [2]float64{0, 2} {
		t.Error("input should not be modified")
	}

	already := [][2]float64{{0, 0}, {1, 0}, {0, 1}}
	if got := CounterClockwise(already); got[1] != already[1] {
		t.Error("counter-clockwise input should keep its order")
	}
}
