// Package dataset provides an in-memory, columnar container for per-instance
// field values, such as the "word" and "tag" columns of an annotated corpus.
//
// - A Dataset keeps named columns of equal length in field order
// - Instances are materialized on demand as Row views (Get, All, Rows)
// - Columns can be sliced, reassigned, converted and shuffled together
// - Datasets are read from and written to a tab-separated CONLL-style format
//
// Design policy:
// - Keep the public API in the root package; ready-made converters live under codec/.
// - The missing sentinel is nil and is written as "-".
// - A Dataset is not safe for concurrent use; callers synchronise.
//
// Typical usage:
//
//	d, err := dataset.Load("train.conll")
//	d, err = d.Convert(map[string]dataset.Converter{"word": codec.Lower()}, true)
//	d.Shuffle()
//	for start, batch := range d.Batches(32) {
//		...
//	}
//	err = d.Store("train.shuffled.conll")
package dataset
