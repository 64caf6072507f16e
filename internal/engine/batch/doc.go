// Package batch estimates many households at once.
//
// Households are loaded from YAML, CSV or XLSX files (see Load), split into
// fixed-size batches and estimated concurrently with a bounded number of
// workers. A household with invalid input is reported in its Result and
// never aborts the rest of the run.
package batch
