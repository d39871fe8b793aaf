package datasets

import (
	"fmt"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// beerFrame builds an n-row table with an increasing id column, two numeric
// features and a "style" label cycling through styles.
func beerFrame(n int, styles ...string) dataframe.DataFrame {
	if len(styles) == 0 {
		styles = []string{"ale", "lager", "stout"}
	}
	ids := make([]int, n)
	abv := make([]float64, n)
	ibu := make([]float64, n)
	style := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = i
		abv[i] = 4.0 + float64(i%10)/10
		ibu[i] = float64(10 + i)
		style[i] = styles[i%len(styles)]
	}
	return dataframe.New(
		series.New(ids, series.Int, "id"),
		series.New(abv, series.Float, "abv"),
		series.New(ibu, series.Float, "ibu"),
		series.New(style, series.String, "style"),
	)
}

// labelledFrame builds a table whose "style" column has the given class counts.
func labelledFrame(t *testing.T, counts map[string]int, order ...string) dataframe.DataFrame {
	t.Helper()
	var ids []int
	var style []string
	for _, label := range order {
		for i := 0; i < counts[label]; i++ {
			ids = append(ids, len(ids))
			style = append(style, label)
		}
	}
	if len(ids) == 0 {
		t.Fatal("labelledFrame: no rows")
	}
	return dataframe.New(
		series.New(ids, series.Int, "id"),
		series.New(style, series.String, "style"),
	)
}

func ids(t *testing.T, p Partition) []int {
	t.Helper()
	if p.Len() == 0 {
		return nil
	}
	out, err := p.X.Col("id").Int()
	if err != nil {
		t.Fatalf("id column: %v", err)
	}
	return out
}

func rangeInts(start, end int) []int {
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

func equalInts(a, b []int) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}
