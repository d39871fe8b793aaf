// Package log defines standard attribute keys for dataset operations.
//
// Keys follow a hierarchical naming convention (e.g. "data.samples",
// "split.test_ratio") so that log lines can be filtered by prefix.

package log

// Operation Context
const (
	// OperationKey specifies the operation being performed.
	// Standard values are the Operation* constants below.
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	ComponentKey = "ml.component"

	// PhaseKey names the partition an entry refers to ("training", "validation", ...).
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey indicates the number of rows in the table being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of feature columns.
	FeaturesKey = "data.features"

	// TargetKey is the name of the target column.
	TargetKey = "data.target"

	// ClassesKey is the number of distinct labels seen by a stratified split.
	ClassesKey = "data.classes"

	// DataTypeKey specifies the element type of a converted array.
	DataTypeKey = "data.type"
)

// Split Configuration
const (
	// TestRatioKey records the requested test fraction.
	TestRatioKey = "split.test_ratio"

	// ValRatioKey records the validation fraction derived from the test fraction.
	ValRatioKey = "split.val_ratio"

	// ReduceRatioKey records the fraction kept by dataset reduction.
	ReduceRatioKey = "split.reduce_ratio"

	// StratifyKey records whether stratified sampling was requested.
	StratifyKey = "split.stratify"

	// CutoffKey records the row cutoff of a time-ordered split.
	CutoffKey = "split.cutoff"

	// TrainSizeKey, ValSizeKey and TestSizeKey record partition row counts.
	TrainSizeKey = "split.train_size"
	ValSizeKey   = "split.val_size"
	TestSizeKey  = "split.test_size"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Persistence
const (
	// PathKey is the directory or file an operation reads or writes.
	PathKey = "io.path"

	// ArrayKey names a persisted array ("X_train", "y_test", ...).
	ArrayKey = "io.array"

	// ShapeKey records the shape of a persisted array.
	ShapeKey = "io.shape"
)

// Error Context
const (
	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationPopTarget   = "pop_target"
	OperationSubset      = "subset"
	OperationSplitTime   = "split_time"
	OperationSplitRandom = "split_random"
	OperationSave        = "save"
	OperationLoad        = "load"
	OperationReadCSV     = "read_csv"

	PhaseTraining   = "training"
	PhaseValidation = "validation"
	PhaseTesting    = "testing"
	PhaseRemaining  = "remaining"
)
