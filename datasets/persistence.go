package datasets

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/log"
)

// Array names; files are stored as <name>.npy.
const (
	XTrainName = "X_train"
	YTrainName = "y_train"
	XValName   = "X_val"
	YValName   = "y_val"
	XTestName  = "X_test"
	YTestName  = "y_test"
)

const npyExt = ".npy"

type featureSlot struct {
	name string
	m    **mat.Dense
}

type targetSlot struct {
	name string
	v    **mat.VecDense
}

func (a *ArraySets) featureSlots() []featureSlot {
	return []featureSlot{
		{XTrainName, &a.XTrain},
		{XValName, &a.XVal},
		{XTestName, &a.XTest},
	}
}

func (a *ArraySets) targetSlots() []targetSlot {
	return []targetSlot{
		{YTrainName, &a.YTrain},
		{YValName, &a.YVal},
		{YTestName, &a.YTest},
	}
}

// ArrayPath returns the file path of the named array under dir.
func ArrayPath(dir, name string) string {
	return filepath.Join(dir, name+npyExt)
}

// SaveSets writes the six train, validation and test arrays of sets to dir
// as .npy files.
//
// Nil arrays are skipped and no file is written for them. Existing files
// are overwritten. dir is never created; if it does not exist the
// filesystem error is returned. The remaining arrays are not saved.
//
// Example:
//
//	arrays, err := sets.Arrays()
//	if err != nil {
//	    return err
//	}
//	err = datasets.SaveSets(arrays, "data/processed")
func SaveSets(sets *ArraySets, dir string) error {
	if sets == nil {
		return nil
	}
	logger := log.GetLoggerWithName("datasets").With(
		log.OperationKey, log.OperationSave,
		log.PathKey, dir,
	)

	for _, slot := range sets.featureSlots() {
		if *slot.m == nil {
			continue
		}
		if err := writeArray(ArrayPath(dir, slot.name), *slot.m); err != nil {
			return err
		}
		r, c := (*slot.m).Dims()
		logger.Debug("Saved array", log.ArrayKey, slot.name, log.ShapeKey, []int{r, c})
	}

	for _, slot := range sets.targetSlots() {
		if *slot.v == nil {
			continue
		}
		data := mat.Col(nil, 0, *slot.v)
		if err := writeArray(ArrayPath(dir, slot.name), data); err != nil {
			return err
		}
		logger.Debug("Saved array", log.ArrayKey, slot.name, log.ShapeKey, []int{len(data)})
	}
	return nil
}

// LoadSets reads the six .npy files under dir.
//
// An array whose file does not exist stays nil; that is not an error.
// Stat, read and decode failures are returned.
func LoadSets(dir string) (*ArraySets, error) {
	sets := &ArraySets{}
	logger := log.GetLoggerWithName("datasets").With(
		log.OperationKey, log.OperationLoad,
		log.PathKey, dir,
	)

	for _, slot := range sets.featureSlots() {
		path := ArrayPath(dir, slot.name)
		ok, err := isFile(path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		m := &mat.Dense{}
		if err := readArray(path, m); err != nil {
			return nil, err
		}
		*slot.m = m
		logger.Debug("Loaded array", log.ArrayKey, slot.name)
	}

	for _, slot := range sets.targetSlots() {
		path := ArrayPath(dir, slot.name)
		ok, err := isFile(path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		var data []float64
		if err := readArray(path, &data); err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, errors.Wrapf(errors.ErrEmptyData, "load %s", path)
		}
		*slot.v = mat.NewVecDense(len(data), data)
		logger.Debug("Loaded array", log.ArrayKey, slot.name)
	}
	return sets, nil
}

func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", path)
	}
	return info.Mode().IsRegular(), nil
}

func writeArray(path string, val interface{}) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	err = errors.SafeExecute("npy encode", func() error {
		return npyio.Write(f, val)
	})
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return nil
}

func readArray(path string, ptr interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	err = errors.SafeExecute("npy decode", func() error {
		return npyio.Read(f, ptr)
	})
	if err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}
