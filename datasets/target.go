package datasets

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/nfragar/adv-dsi-ass-2-beer/core/parallel"
	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/log"
)

// PopTarget removes targetCol from a copy of df and returns the remaining
// features and the target. df itself is left unchanged.
//
// A missing column is reported as a KeyError.
func PopTarget(df dataframe.DataFrame, targetCol string) (features dataframe.DataFrame, target series.Series, err error) {
	const op = "PopTarget"
	defer errors.Recover(&err, op)

	if df.Err != nil {
		return dataframe.DataFrame{}, series.Series{}, errors.Wrap(df.Err, op)
	}
	if !hasColumn(df, targetCol) {
		return dataframe.DataFrame{}, series.Series{}, errors.NewKeyError(op, targetCol, df.Names())
	}
	if df.Ncol() == 1 {
		return dataframe.DataFrame{}, series.Series{}, errors.NewValueError(op,
			fmt.Sprintf("column %q is the only column; no features would remain", targetCol))
	}

	dfCopy := df.Copy()
	target = dfCopy.Col(targetCol)
	if target.Err != nil {
		return dataframe.DataFrame{}, series.Series{}, errors.Wrap(target.Err, op)
	}
	features = dfCopy.Drop(targetCol)
	if features.Err != nil {
		return dataframe.DataFrame{}, series.Series{}, errors.Wrap(features.Err, op)
	}

	log.GetLoggerWithName("datasets").Debug("Popped target",
		log.OperationKey, log.OperationPopTarget,
		log.TargetKey, targetCol,
		log.SamplesKey, target.Len(),
		log.FeaturesKey, features.Ncol(),
	)
	return features, target, nil
}

// PopTargetArrays is PopTarget followed by conversion to plain arrays.
// Column names are discarded and cannot be recovered. A target with
// non-numeric labels is rejected with a ValueError; encode it with
// EncodeLabels first.
func PopTargetArrays(df dataframe.DataFrame, targetCol string) (*mat.Dense, *mat.VecDense, error) {
	features, target, err := PopTarget(df, targetCol)
	if err != nil {
		return nil, nil, err
	}
	if target.Len() == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "PopTargetArrays")
	}

	X, err := toMatrix(features)
	if err != nil {
		return nil, nil, err
	}
	y, err := toVector(target)
	if err != nil {
		return nil, nil, err
	}
	return X, y, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// toMatrix copies df into a dense float64 matrix, one column per feature.
func toMatrix(df dataframe.DataFrame) (m *mat.Dense, err error) {
	defer errors.Recover(&err, "toMatrix")

	r, c := df.Nrow(), df.Ncol()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("toMatrix",
			fmt.Sprintf("cannot build a %dx%d matrix", r, c))
	}

	cols := make([][]float64, c)
	for j, name := range df.Names() {
		cols[j] = floats(df.Col(name))
	}

	m = mat.NewDense(r, c, nil)
	parallel.ParallelizeWithThreshold(r, parallel.DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				m.Set(i, j, cols[j][i])
			}
		}
	})
	return m, nil
}

// toVector copies the target s into a float64 vector. Unlike feature
// columns, a target never silently turns into NaN.
func toVector(s series.Series) (v *mat.VecDense, err error) {
	defer errors.Recover(&err, "toVector")

	if s.Len() == 0 {
		return nil, errors.NewValueError("toVector", "cannot build an empty vector")
	}
	values := s.Float()
	if s.Type() == series.String {
		if n := errors.CountNaN(values); n > 0 {
			return nil, errors.NewValueError("toVector",
				fmt.Sprintf("target %q has %d non-numeric label(s); encode it with EncodeLabels first", s.Name, n))
		}
	}
	return mat.NewVecDense(s.Len(), values), nil
}

// floats converts s to float64. Non-numeric strings become NaN, which is
// reported as a DataConversionWarning.
func floats(s series.Series) []float64 {
	values := s.Float()
	if s.Type() == series.String {
		if n := errors.CountNaN(values); n > 0 {
			errors.Warn(errors.NewDataConversionWarning(string(series.String), "float64",
				fmt.Sprintf("column %q: %d non-numeric value(s) became NaN", s.Name, n)))
		}
	}
	return values
}
