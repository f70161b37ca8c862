package league

import (
	"reflect"
	"testing"
)

func TestRunningAverages(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected []float64
	}{
		{"three matches", []float64{40, 50, 30}, []float64{40, 45, 40}},
		{"single match", []float64{48.33}, []float64{48.33}},
		{"rounded to two decimals", []float64{40, 41}, []float64{40, 40.5}},
		{"repeating thirds", []float64{40, 40, 41}, []float64{40, 40, 40.33}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RunningAverages(tt.values)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("RunningAverages(%v) = %v, expected %v", tt.values, got, tt.expected)
			}
		})
	}
}
