// Package model_selection provides seeded train/test index splitting.
//
// The splitters follow scikit-learn's train_test_split: the test side gets
// ceil(test_size * n) rows, the permutation comes from a PCG generator seeded
// with RandomState, and the stratified variant allocates each class by
// largest remainder so label proportions carry over to both sides.
//
// Splitters work on row indices only; callers apply the indices to their own
// tables, which keeps features and targets aligned by construction.
package model_selection
