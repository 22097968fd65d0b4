package elo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdate(t *testing.T) {
	type args struct {
		Ra float64
		Rb float64
		K  float64
		Sa Points
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			name: "same rating draw",
			args: args{Ra: 1000, Rb: 1000, K: 40, Sa: Draw},
			want: 1000,
		},
		{
			name: "same rating win",
			args: args{Ra: 1000, Rb: 1000, K: 40, Sa: Win},
			want: 1020,
		},
		{
			name: "same rating lose",
			args: args{Ra: 1000, Rb: 1000, K: 40, Sa: Lose},
			want: 980,
		},
		{
			name: "top rating draw",
			args: args{Ra: 1100, Rb: 1000, K: 40, Sa: Draw},
			want: 1094,
		},
		{
			name: "top rating win",
			args: args{Ra: 1100, Rb: 1000, K: 40, Sa: Win},
			want: 1114,
		},
		{
			name: "top rating lose",
			args: args{Ra: 1100, Rb: 1000, K: 40, Sa: Lose},
			want: 1074,
		},
		{
			name: "bottom rating draw",
			args: args{Ra: 1000, Rb: 1100, K: 40, Sa: Draw},
			want: 1006,
		},
		{
			name: "bottom rating win",
			args: args{Ra: 1000, Rb: 1100, K: 40, Sa: Win},
			want: 1026,
		},
		{
			name: "bottom rating lose",
			args: args{Ra: 1000, Rb: 1100, K: 40, Sa: Lose},
			want: 986,
		},
		{
			name: "close rating draw",
			args: args{Ra: 944, Rb: 938, K: 40, Sa: Draw},
			want: 944,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := math.Round(Update(tt.args.Ra, tt.args.Rb, tt.args.K, DefaultScale, tt.args.Sa))
			if got != tt.want {
				t.Errorf("Update() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpectedIsComplementary(t *testing.T) {
	pairs := [][2]float64{{1500, 1500}, {1700, 1300}, {900, 2400}, {1234.5, 1233.25}}
	for _, p := range pairs {
		ea := Expected(p[0], p[1], DefaultScale)
		eb := Expected(p[1], p[0], DefaultScale)
		assert.InDelta(t, 1.0, ea+eb, 1e-12)
	}
	assert.InDelta(t, 0.5, Expected(1500, 1500, DefaultScale), 1e-12)
	assert.InDelta(t, 10.0/11.0, Expected(1900, 1500, DefaultScale), 1e-12)
}

func TestDistribution(t *testing.T) {
	tests := []struct {
		name    string
		ratings []float64
		want    []float64
	}{
		{
			name:    "equal ratings",
			ratings: []float64{1500, 1500, 1500, 1500},
			want:    []float64{0.25, 0.25, 0.25, 0.25},
		},
		{
			name:    "four hundred apart",
			ratings: []float64{1900, 1500},
			want:    []float64{10.0 / 11.0, 1.0 / 11.0},
		},
		{
			name:    "single participant",
			ratings: []float64{1234},
			want:    []float64{1},
		},
		{
			name:    "huge ratings do not overflow",
			ratings: []float64{200000, 200000},
			want:    []float64{0.5, 0.5},
		},
		{
			name:    "nan falls back to uniform",
			ratings: []float64{math.NaN(), 1500, 1500},
			want:    []float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distribution(tt.ratings, DefaultScale)
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
			var sum float64
			for _, v := range got {
				sum += v
			}
			assert.InDelta(t, 1.0, sum, 1e-12)
		})
	}
	assert.Nil(t, Distribution(nil, DefaultScale))
}

func TestDistributionMatchesPairwiseForTwo(t *testing.T) {
	got := Distribution([]float64{1620, 1480}, DefaultScale)
	assert.InDelta(t, Expected(1620, 1480, DefaultScale), got[0], 1e-12)
	assert.InDelta(t, Expected(1480, 1620, DefaultScale), got[1], 1e-12)
}

func TestShares(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0.6, 0.4}, Shares([]float64{30, 20}), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, Shares([]float64{0, 0}), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, Shares([]float64{-1, 1}), 1e-12)
	assert.Nil(t, Shares(nil))
}
