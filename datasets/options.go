package datasets

// DefaultRandomState is the seed every random split uses unless overridden.
const DefaultRandomState uint64 = 8

type randomSplitConfig struct {
	testRatio   float64
	stratify    bool
	reduce      bool
	reduceRatio float64
	randomState uint64
}

func defaultRandomSplitConfig() randomSplitConfig {
	return randomSplitConfig{
		testRatio:   0.2,
		reduceRatio: 0.2,
		randomState: DefaultRandomState,
	}
}

// Option configures SplitSetsRandom
type Option func(*randomSplitConfig)

// WithTestRatio sets the fraction of rows held out for testing. The same
// fraction of what is left over is used for validation.
func WithTestRatio(ratio float64) Option {
	return func(c *randomSplitConfig) {
		c.testRatio = ratio
	}
}

// WithStratify sets whether each split preserves the target's class proportions
func WithStratify(stratify bool) Option {
	return func(c *randomSplitConfig) {
		c.stratify = stratify
	}
}

// WithReduce shrinks the dataset to roughly ratio of its rows before
// splitting. The rows left out are returned as Sets.Remaining.
func WithReduce(ratio float64) Option {
	return func(c *randomSplitConfig) {
		c.reduce = true
		c.reduceRatio = ratio
	}
}

// WithRandomState sets the seed shared by every split
func WithRandomState(seed uint64) Option {
	return func(c *randomSplitConfig) {
		c.randomState = seed
	}
}
