// Package batch drives the pipeline over whole folders of images.
//
// It owns everything the pixel-processing core deliberately does not:
// directory walking, file decoding, JPEG encoding, progress logging, and
// per-file error isolation. One unreadable file in a batch is reported and
// skipped; the rest of the run continues.
//
// Images are processed concurrently, one pipeline invocation per file,
// bounded by the Workers option. The pipeline itself is synchronous and
// stateless, so this fan-out needs no coordination beyond collecting the
// per-file results.
package batch
