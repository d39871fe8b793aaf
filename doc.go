// Package dsprep prepares tabular datasets for machine learning workflows.
//
// It splits a table into train, validation and test partitions, either in
// time order or at random (optionally stratified and optionally on a
// reduced subset), extracts the target column, and saves or loads the
// resulting arrays as NumPy .npy files.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/nfragar/adv-dsi-ass-2-beer/datasets"
//	)
//
//	func main() {
//	    f, err := os.Open("beer_reviews.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer f.Close()
//
//	    df, err := datasets.ReadCSV(f)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    sets, err := datasets.SplitSetsRandom(df, "beer_style",
//	        datasets.WithStratify(true),
//	        datasets.WithReduce(0.2),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // beer_style holds categories; store them as class indices
//	    if _, err := sets.EncodeLabels(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    arrays, err := sets.Arrays()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := datasets.SaveSets(arrays, "data/processed"); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - datasets: target extraction, time and random splits, .npy persistence
//   - sklearn/model_selection: seeded (stratified) train/test index splits
//   - core/parallel: Parallel processing utilities
//   - pkg/errors: typed errors, warnings and panic recovery
//   - pkg/log: structured logging
//
// # Reproducibility
//
// Random splits are seeded (8 unless datasets.WithRandomState says
// otherwise) and every split in one call shares the seed, so the same input
// always yields the same partitions.
package dsprep
