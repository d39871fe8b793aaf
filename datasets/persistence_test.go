package datasets

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/nfragar/adv-dsi-ass-2-beer/pkg/errors"
)

func TestSaveLoadSetsRoundTrip(t *testing.T) {
	sets, err := SplitSetsByTime(beerFrame(10).Drop("style"), "ibu")
	if err != nil {
		t.Fatalf("SplitSetsByTime() error = %v", err)
	}
	arrays, err := sets.Arrays()
	if err != nil {
		t.Fatalf("Arrays() error = %v", err)
	}

	dir := t.TempDir()
	if err := SaveSets(arrays, dir); err != nil {
		t.Fatalf("SaveSets() error = %v", err)
	}

	for _, name := range []string{XTrainName, YTrainName, XValName, YValName, XTestName, YTestName} {
		if _, err := os.Stat(ArrayPath(dir, name)); err != nil {
			t.Errorf("expected %s.npy to exist: %v", name, err)
		}
	}

	loaded, err := LoadSets(dir)
	if err != nil {
		t.Fatalf("LoadSets() error = %v", err)
	}

	matrices := []struct {
		name      string
		want, got *mat.Dense
	}{
		{XTrainName, arrays.XTrain, loaded.XTrain},
		{XValName, arrays.XVal, loaded.XVal},
		{XTestName, arrays.XTest, loaded.XTest},
	}
	for _, m := range matrices {
		if m.got == nil {
			t.Errorf("%s: not loaded", m.name)
			continue
		}
		if !mat.Equal(m.want, m.got) {
			t.Errorf("%s: loaded %v, want %v", m.name, mat.Formatted(m.got), mat.Formatted(m.want))
		}
	}

	vectors := []struct {
		name      string
		want, got *mat.VecDense
	}{
		{YTrainName, arrays.YTrain, loaded.YTrain},
		{YValName, arrays.YVal, loaded.YVal},
		{YTestName, arrays.YTest, loaded.YTest},
	}
	for _, v := range vectors {
		if v.got == nil || !mat.Equal(v.want, v.got) {
			t.Errorf("%s: loaded vector does not match saved one", v.name)
		}
	}

	if loaded.XRemaining != nil || loaded.YRemaining != nil {
		t.Error("remaining arrays should never be loaded")
	}
}

func TestSaveSetsSkipsNil(t *testing.T) {
	dir := t.TempDir()
	arrays := &ArraySets{
		XTrain: mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
	}

	if err := SaveSets(arrays, dir); err != nil {
		t.Fatalf("SaveSets() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "X_train.npy" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("files = %v, want [X_train.npy]", names)
	}

	loaded, err := LoadSets(dir)
	if err != nil {
		t.Fatalf("LoadSets() error = %v", err)
	}
	if loaded.XTrain == nil {
		t.Fatal("XTrain not loaded")
	}
	if loaded.YTrain != nil || loaded.XVal != nil || loaded.YVal != nil || loaded.XTest != nil || loaded.YTest != nil {
		t.Error("arrays that were never saved should load as nil")
	}
}

func TestSaveSetsOverwrites(t *testing.T) {
	dir := t.TempDir()

	first := &ArraySets{YTest: mat.NewVecDense(3, []float64{1, 2, 3})}
	second := &ArraySets{YTest: mat.NewVecDense(2, []float64{7, 8})}
	for _, s := range []*ArraySets{first, second} {
		if err := SaveSets(s, dir); err != nil {
			t.Fatalf("SaveSets() error = %v", err)
		}
	}

	loaded, err := LoadSets(dir)
	if err != nil {
		t.Fatalf("LoadSets() error = %v", err)
	}
	if loaded.YTest == nil || !mat.Equal(loaded.YTest, second.YTest) {
		t.Errorf("YTest was not overwritten with %v", mat.Formatted(second.YTest.T()))
	}
}

func TestSaveSetsNothingToWrite(t *testing.T) {
	dir := t.TempDir()

	if err := SaveSets(nil, dir); err != nil {
		t.Errorf("SaveSets(nil) error = %v", err)
	}
	if err := SaveSets(&ArraySets{}, dir); err != nil {
		t.Errorf("SaveSets(empty) error = %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no files, found %d", len(entries))
	}
}

func TestSaveSetsMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	arrays := &ArraySets{XTrain: mat.NewDense(1, 1, []float64{1})}

	err := SaveSets(arrays, dir)
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if _, statErr := os.Stat(dir); !errors.Is(statErr, fs.ErrNotExist) {
		t.Error("SaveSets must not create the directory")
	}
}

func TestLoadSetsEmptyDirectory(t *testing.T) {
	loaded, err := LoadSets(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSets() error = %v", err)
	}
	if *loaded != (ArraySets{}) {
		t.Errorf("expected all arrays nil, got %+v", loaded)
	}
}

func TestLoadSetsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(ArrayPath(dir, XValName), []byte("not an npy file"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSets(dir); err == nil {
		t.Error("expected a decode error")
	}
}

func TestLoadSetsIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(ArrayPath(dir, XTestName), 0o755); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadSets(dir)
	if err != nil {
		t.Fatalf("LoadSets() error = %v", err)
	}
	if loaded.XTest != nil {
		t.Error("a directory named like an array file should be treated as absent")
	}
}
