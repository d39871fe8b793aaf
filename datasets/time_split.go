package datasets

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/log"
)

// SubsetXY keeps rows [start, end) of features and target.
//
// Indices behave like Python slices: a negative index counts from the end,
// out-of-range indices are clamped, and start >= end yields an empty
// partition. features and target must have the same number of rows.
func SubsetXY(features dataframe.DataFrame, target series.Series, start, end int) (Partition, error) {
	n := target.Len()
	if features.Nrow() != n {
		return Partition{}, errors.NewDimensionError("SubsetXY", features.Nrow(), n, 0)
	}

	start, end = sliceIndex(start, n), sliceIndex(end, n)
	idx := make([]int, 0, max(end-start, 0))
	for i := start; i < end; i++ {
		idx = append(idx, i)
	}
	return Partition{X: features, Y: target}.take(idx)
}

func sliceIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n)
}

// SplitSetsByTime splits an ordered table into train, validation and test
// partitions without shuffling.
//
// With N rows and cutoff = N/5 (integer division) the partitions are rows
// [0, N-2*cutoff), [N-2*cutoff, N-cutoff) and [N-cutoff, N). That is an exact
// 60/20/20 split only when N is a multiple of 5. Tables with fewer than 5
// rows put every row in training and leave validation and test empty.
func SplitSetsByTime(df dataframe.DataFrame, targetCol string) (*Sets, error) {
	features, target, err := PopTarget(df, targetCol)
	if err != nil {
		return nil, err
	}

	n := target.Len()
	cutoff := n / 5

	var sets Sets
	if cutoff == 0 {
		// a -0 bound would stop training at row 0
		if sets.Train, err = SubsetXY(features, target, 0, n); err != nil {
			return nil, err
		}
		if sets.Val, err = SubsetXY(features, target, n, n); err != nil {
			return nil, err
		}
		if sets.Test, err = SubsetXY(features, target, n, n); err != nil {
			return nil, err
		}
	} else {
		if sets.Train, err = SubsetXY(features, target, 0, -cutoff*2); err != nil {
			return nil, err
		}
		if sets.Val, err = SubsetXY(features, target, -cutoff*2, -cutoff); err != nil {
			return nil, err
		}
		if sets.Test, err = SubsetXY(features, target, -cutoff, n); err != nil {
			return nil, err
		}
	}

	train, val, test := sets.Sizes()
	log.GetLoggerWithName("datasets").Debug("Split by time",
		log.OperationKey, log.OperationSplitTime,
		log.TargetKey, targetCol,
		log.SamplesKey, n,
		log.CutoffKey, cutoff,
		log.TrainSizeKey, train,
		log.ValSizeKey, val,
		log.TestSizeKey, test,
	)
	return &sets, nil
}
