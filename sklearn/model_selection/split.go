package model_selection

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/log"
)

// Fold holds the row indices of one train/test split.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// Splitter produces a single train/test fold over n rows.
// y carries the class label of each row and may be nil for splitters that
// do not stratify.
type Splitter interface {
	Split(n int, y []string) (Fold, error)
}

// ShuffleSplit draws a random test subset of size ceil(TestSize * n).
type ShuffleSplit struct {
	TestSize    float64
	RandomState uint64
}

// NewShuffleSplit creates a new shuffle splitter
func NewShuffleSplit(testSize float64, randomState uint64) *ShuffleSplit {
	return &ShuffleSplit{TestSize: testSize, RandomState: randomState}
}

// Split generates one shuffled train/test fold. y is ignored.
func (ss *ShuffleSplit) Split(n int, _ []string) (Fold, error) {
	nTrain, nTest, err := validateShuffleSplit(n, ss.TestSize)
	if err != nil {
		return Fold{}, err
	}

	r := newRand(ss.RandomState)
	perm := r.Perm(n)

	return Fold{
		TrainIndices: append([]int(nil), perm[nTest:nTest+nTrain]...),
		TestIndices:  append([]int(nil), perm[:nTest]...),
	}, nil
}

// StratifiedShuffleSplit draws a random test subset whose class proportions
// approximate those of y.
type StratifiedShuffleSplit struct {
	TestSize    float64
	RandomState uint64
}

// NewStratifiedShuffleSplit creates a new stratified shuffle splitter
func NewStratifiedShuffleSplit(testSize float64, randomState uint64) *StratifiedShuffleSplit {
	return &StratifiedShuffleSplit{TestSize: testSize, RandomState: randomState}
}

// Split generates one stratified train/test fold.
//
// Every class needs at least two members, and both sides of the split need
// at least one row per class; otherwise a StratificationError is returned.
func (sss *StratifiedShuffleSplit) Split(n int, y []string) (Fold, error) {
	const op = "StratifiedShuffleSplit.Split"

	if len(y) != n {
		return Fold{}, errors.NewDimensionError(op, n, len(y), 0)
	}
	nTrain, nTest, err := validateShuffleSplit(n, sss.TestSize)
	if err != nil {
		return Fold{}, err
	}

	classes, classIndices := groupByClass(y)
	nClasses := len(classes)

	counts := make([]int, nClasses)
	for k, idx := range classIndices {
		counts[k] = len(idx)
	}
	for k, c := range counts {
		if c < 2 {
			return Fold{}, errors.NewStratificationError(op, classes[k], c, 2)
		}
	}
	if nTrain < nClasses {
		return Fold{}, errors.NewStratificationError(op, "", nTrain, nClasses)
	}
	if nTest < nClasses {
		return Fold{}, errors.NewStratificationError(op, "", nTest, nClasses)
	}

	r := newRand(sss.RandomState)

	trainCounts := approximateMode(counts, nTrain, r)
	remaining := make([]int, nClasses)
	for k := range counts {
		remaining[k] = counts[k] - trainCounts[k]
	}
	testCounts := approximateMode(remaining, nTest, r)

	fold := Fold{
		TrainIndices: make([]int, 0, nTrain),
		TestIndices:  make([]int, 0, nTest),
	}
	for k, indices := range classIndices {
		perm := r.Perm(len(indices))
		for j, p := range perm {
			switch {
			case j < trainCounts[k]:
				fold.TrainIndices = append(fold.TrainIndices, indices[p])
			case j < trainCounts[k]+testCounts[k]:
				fold.TestIndices = append(fold.TestIndices, indices[p])
			}
		}
	}

	shuffle(r, fold.TrainIndices)
	shuffle(r, fold.TestIndices)

	log.GetLoggerWithName("model_selection").Debug("Stratified split",
		log.SamplesKey, n,
		log.ClassesKey, nClasses,
		log.TrainSizeKey, len(fold.TrainIndices),
		log.TestSizeKey, len(fold.TestIndices),
		log.RandomSeedKey, sss.RandomState,
	)

	return fold, nil
}

// TrainTestSplit splits the row range [0, n) into train and test indices.
//
// testSize is the test fraction in (0, 1); the test side gets
// ceil(testSize * n) rows. When stratify is non-nil it must hold one label
// per row and the split preserves label proportions. The same randomState
// always produces the same indices.
//
// 使用例:
//
//	train, test, err := model_selection.TrainTestSplit(df.Nrow(), 0.2, 8, nil)
func TrainTestSplit(n int, testSize float64, randomState uint64, stratify []string) (train, test []int, err error) {
	var splitter Splitter = NewShuffleSplit(testSize, randomState)
	if stratify != nil {
		splitter = NewStratifiedShuffleSplit(testSize, randomState)
	}

	fold, err := splitter.Split(n, stratify)
	if err != nil {
		return nil, nil, err
	}
	return fold.TrainIndices, fold.TestIndices, nil
}

// validateShuffleSplit returns the train and test sizes for n rows.
func validateShuffleSplit(n int, testSize float64) (nTrain, nTest int, err error) {
	const op = "TrainTestSplit"

	if math.IsNaN(testSize) || testSize <= 0 || testSize >= 1 {
		return 0, 0, errors.NewValueError(op,
			fmt.Sprintf("test_size=%v should be a float in the (0, 1) range", testSize))
	}

	nTest = int(math.Ceil(testSize * float64(n)))
	nTrain = n - nTest
	if nTrain <= 0 {
		return 0, 0, errors.NewValueError(op,
			fmt.Sprintf("with n_samples=%d and test_size=%v the resulting train set will be empty", n, testSize))
	}
	return nTrain, nTest, nil
}

// groupByClass returns the sorted distinct labels and, for each, the row
// indices carrying it in ascending order.
func groupByClass(y []string) ([]string, [][]int) {
	byLabel := make(map[string][]int)
	for i, label := range y {
		byLabel[label] = append(byLabel[label], i)
	}

	classes := make([]string, 0, len(byLabel))
	for label := range byLabel {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	indices := make([][]int, len(classes))
	for k, label := range classes {
		indices[k] = byLabel[label]
	}
	return classes, indices
}

// approximateMode distributes nDraws among classes proportionally to
// classCounts. Floors are taken first; leftover draws go to the largest
// fractional parts, with ties broken at random.
func approximateMode(classCounts []int, nDraws int, r *rand.Rand) []int {
	total := 0
	for _, c := range classCounts {
		total += c
	}

	floored := make([]int, len(classCounts))
	remainder := make([]float64, len(classCounts))
	needToAdd := nDraws
	for k, c := range classCounts {
		continuous := float64(nDraws) * float64(c) / float64(total)
		floored[k] = int(math.Floor(continuous))
		remainder[k] = continuous - float64(floored[k])
		needToAdd -= floored[k]
	}
	if needToAdd <= 0 {
		return floored
	}

	order := make([]int, len(classCounts))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainder[order[a]] > remainder[order[b]]
	})

	for start := 0; start < len(order) && needToAdd > 0; {
		end := start + 1
		for end < len(order) && remainder[order[end]] == remainder[order[start]] {
			end++
		}

		tied := order[start:end]
		shuffle(r, tied)

		addNow := len(tied)
		if addNow > needToAdd {
			addNow = needToAdd
		}
		for _, k := range tied[:addNow] {
			floored[k]++
		}
		needToAdd -= addNow
		start = end
	}
	return floored
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func shuffle(r *rand.Rand, indices []int) {
	r.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
}
