package datasets

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
)

// Partition is a feature table and its row-aligned target.
type Partition struct {
	X dataframe.DataFrame
	Y series.Series
}

// Len returns the number of rows in the partition.
func (p Partition) Len() int {
	return p.Y.Len()
}

// take returns the rows at idx, in that order.
func (p Partition) take(idx []int) (Partition, error) {
	x := p.X.Subset(idx)
	if x.Err != nil {
		return Partition{}, errors.Wrap(x.Err, "subset features")
	}
	y := p.Y.Subset(idx)
	if y.Err != nil {
		return Partition{}, errors.Wrap(y.Err, "subset target")
	}
	return Partition{X: x, Y: y}, nil
}

// Sets groups the partitions produced by a split. Remaining is nil unless
// the split reduced the dataset first.
type Sets struct {
	Train     Partition
	Val       Partition
	Test      Partition
	Remaining *Partition
}

// Sizes returns the row counts of the train, validation and test partitions.
func (s *Sets) Sizes() (train, val, test int) {
	return s.Train.Len(), s.Val.Len(), s.Test.Len()
}

// Arrays converts every partition to plain gonum arrays, dropping column
// names. Partitions without rows convert to nil. A string target must be
// encoded with EncodeLabels first; otherwise Arrays returns a ValueError.
func (s *Sets) Arrays() (*ArraySets, error) {
	out := &ArraySets{}

	convert := func(p *Partition, x **mat.Dense, y **mat.VecDense) error {
		if p == nil || p.Len() == 0 {
			return nil
		}
		var err error
		if *x, err = toMatrix(p.X); err != nil {
			return err
		}
		*y, err = toVector(p.Y)
		return err
	}

	if err := convert(&s.Train, &out.XTrain, &out.YTrain); err != nil {
		return nil, errors.Wrap(err, "train partition")
	}
	if err := convert(&s.Val, &out.XVal, &out.YVal); err != nil {
		return nil, errors.Wrap(err, "validation partition")
	}
	if err := convert(&s.Test, &out.XTest, &out.YTest); err != nil {
		return nil, errors.Wrap(err, "test partition")
	}
	if err := convert(s.Remaining, &out.XRemaining, &out.YRemaining); err != nil {
		return nil, errors.Wrap(err, "remaining partition")
	}
	return out, nil
}

// ArraySets holds the array form of a split. A nil field means the array
// was not produced. The remaining pair is never persisted.
type ArraySets struct {
	XTrain *mat.Dense
	YTrain *mat.VecDense
	XVal   *mat.Dense
	YVal   *mat.VecDense
	XTest  *mat.Dense
	YTest  *mat.VecDense

	XRemaining *mat.Dense
	YRemaining *mat.VecDense
}
