package datasets

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/log"
	"github.com/nfragar/adv-dsi-ass-2-beer/sklearn/model_selection"
)

// SplitSetsRandom pops targetCol and splits the rows of df at random into
// train, validation and test partitions.
//
// The steps are:
//
//  1. With WithReduce(r), a first split keeps about r of the rows as the
//     working set; the other rows become Sets.Remaining. With stratification
//     on, this split is stratified on the full target.
//  2. The working set loses testRatio of its rows to the test partition.
//  3. What is left is split again with valRatio = testRatio / (1 - testRatio),
//     so validation ends up the same size as test. For testRatio 0.2 the
//     result is 60/20/20 up to rounding; each split rounds its test side up.
//
// Steps 2 and 3 stratify on the target of the rows being split. All splits
// share one seed, so identical input always gives identical partitions.
// A class too small to appear on both sides of a stratified split yields a
// StratificationError.
func SplitSetsRandom(df dataframe.DataFrame, targetCol string, opts ...Option) (*Sets, error) {
	cfg := defaultRandomSplitConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := errors.CheckFraction("test_ratio", cfg.testRatio); err != nil {
		return nil, err
	}
	if cfg.reduce {
		if err := errors.CheckFraction("reduce_ratio", cfg.reduceRatio); err != nil {
			return nil, err
		}
	}

	features, target, err := PopTarget(df, targetCol)
	if err != nil {
		return nil, err
	}

	logger := log.GetLoggerWithName("datasets").With(
		log.OperationKey, log.OperationSplitRandom,
		log.TargetKey, targetCol,
		log.StratifyKey, cfg.stratify,
		log.RandomSeedKey, cfg.randomState,
	)

	var sets Sets
	work := Partition{X: features, Y: target}

	if cfg.reduce {
		remaining, kept, err := splitPartition(work, cfg.reduceRatio, cfg)
		if err != nil {
			return nil, errors.Wrap(err, "reduce dataset")
		}
		logger.Debug("Reduced dataset",
			log.ReduceRatioKey, cfg.reduceRatio,
			log.SamplesKey, work.Len(),
			"kept", kept.Len(),
		)
		sets.Remaining = &remaining
		work = kept
	}

	data, test, err := splitPartition(work, cfg.testRatio, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "split test set")
	}

	valRatio := cfg.testRatio / (1 - cfg.testRatio)
	train, val, err := splitPartition(data, valRatio, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "split validation set")
	}

	sets.Train, sets.Val, sets.Test = train, val, test

	logger.Debug("Split at random",
		log.TestRatioKey, cfg.testRatio,
		log.ValRatioKey, valRatio,
		log.TrainSizeKey, train.Len(),
		log.ValSizeKey, val.Len(),
		log.TestSizeKey, test.Len(),
	)
	return &sets, nil
}

// splitPartition returns the (train, test) sides of one seeded split of p.
func splitPartition(p Partition, testSize float64, cfg randomSplitConfig) (Partition, Partition, error) {
	var stratify []string
	if cfg.stratify {
		stratify = p.Y.Records()
	}

	trainIdx, testIdx, err := model_selection.TrainTestSplit(p.Len(), testSize, cfg.randomState, stratify)
	if err != nil {
		return Partition{}, Partition{}, err
	}

	train, err := p.take(trainIdx)
	if err != nil {
		return Partition{}, Partition{}, err
	}
	test, err := p.take(testIdx)
	if err != nil {
		return Partition{}, Partition{}, err
	}
	return train, test, nil
}
