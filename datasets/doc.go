// Package datasets prepares tabular data for machine-learning workflows.
//
// A feature table is a gota dataframe.DataFrame and a target is a gota
// series.Series aligned with it by row position. The package
//
//   - extracts a target column from a table (PopTarget, PopTargetArrays),
//   - slices tables by row range (SubsetXY),
//   - splits a table into train, validation and test partitions either in
//     row order (SplitSetsByTime) or at random with optional stratification
//     and dataset reduction (SplitSetsRandom),
//   - encodes categorical targets as class indices (Sets.EncodeLabels),
//   - converts partitions to gonum arrays (Sets.Arrays), and
//   - saves and loads those arrays as NumPy .npy files (SaveSets, LoadSets).
//
// Example:
//
//	df, err := datasets.ReadCSV(f)
//	if err != nil {
//	    return err
//	}
//	sets, err := datasets.SplitSetsRandom(df, "style",
//	    datasets.WithTestRatio(0.2),
//	    datasets.WithStratify(true),
//	)
//	if err != nil {
//	    return err
//	}
//	classes, err := sets.EncodeLabels()
//	if err != nil {
//	    return err
//	}
//	arrays, err := sets.Arrays()
//	if err != nil {
//	    return err
//	}
//	err = datasets.SaveSets(arrays, "data/processed")
//
// Targets must be numeric to become arrays; y arrays of a categorical target
// hold indices into classes.
package datasets
