package datasets

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/series"

	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
)

func TestClassProportions(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   map[string]float64
	}{
		{
			name:   "uneven",
			labels: []string{"ale", "ale", "ale", "lager"},
			want:   map[string]float64{"ale": 0.75, "lager": 0.25},
		},
		{
			name:   "single class",
			labels: []string{"stout", "stout"},
			want:   map[string]float64{"stout": 1},
		},
		{
			name:   "empty",
			labels: []string{},
			want:   map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassProportions(series.New(tt.labels, series.String, "style"))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for label, w := range tt.want {
				if math.Abs(got[label]-w) > 1e-12 {
					t.Errorf("proportion of %s = %v, want %v", label, got[label], w)
				}
			}
		})
	}
}

func TestPlotBalance(t *testing.T) {
	sets, err := SplitSetsRandom(beerFrame(90), "style", WithStratify(true), WithReduce(0.5))
	if err != nil {
		t.Fatalf("SplitSetsRandom() error = %v", err)
	}

	filename := filepath.Join(t.TempDir(), "balance.png")
	if err := PlotBalance(sets, filename); err != nil {
		t.Fatalf("PlotBalance() error = %v", err)
	}

	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("plot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestPlotBalanceNoRows(t *testing.T) {
	features, target, err := PopTarget(beerFrame(6), "style")
	if err != nil {
		t.Fatalf("PopTarget() error = %v", err)
	}
	empty, err := SubsetXY(features, target, 3, 3)
	if err != nil {
		t.Fatalf("SubsetXY() error = %v", err)
	}
	sets := &Sets{Train: empty, Val: empty, Test: empty}

	err = PlotBalance(sets, filepath.Join(t.TempDir(), "balance.png"))
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}
}
