package datasets

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/series"

	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
)

// Classes returns the sorted distinct labels found in ys.
func Classes(ys ...series.Series) []string {
	seen := make(map[string]struct{})
	for _, y := range ys {
		for _, label := range y.Records() {
			seen[label] = struct{}{}
		}
	}
	classes := make([]string, 0, len(seen))
	for label := range seen {
		classes = append(classes, label)
	}
	sort.Strings(classes)
	return classes
}

// EncodeLabels replaces every label of y by its index in classes. The
// result is an Int series with the same name. A label missing from classes
// is a ValueError.
func EncodeLabels(y series.Series, classes []string) (series.Series, error) {
	codes := make(map[string]int, len(classes))
	for i, label := range classes {
		codes[label] = i
	}

	encoded := make([]int, y.Len())
	for i, label := range y.Records() {
		code, ok := codes[label]
		if !ok {
			return series.Series{}, errors.NewValueError("EncodeLabels",
				fmt.Sprintf("label %q of %q is not a known class", label, y.Name))
		}
		encoded[i] = code
	}
	return series.New(encoded, series.Int, y.Name), nil
}

// EncodeLabels encodes the target of every partition with one shared class
// list and returns that list; class i is stored as i. Call it before Arrays
// when the target holds categories.
func (s *Sets) EncodeLabels() ([]string, error) {
	parts := []*Partition{&s.Train, &s.Val, &s.Test}
	if s.Remaining != nil {
		parts = append(parts, s.Remaining)
	}

	ys := make([]series.Series, len(parts))
	for i, p := range parts {
		ys[i] = p.Y
	}
	classes := Classes(ys...)

	for _, p := range parts {
		y, err := EncodeLabels(p.Y, classes)
		if err != nil {
			return nil, err
		}
		p.Y = y
	}
	return classes, nil
}
