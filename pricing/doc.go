// Package pricing loads per-model token rates from a user-editable JSON
// file, seeding it with defaults on first use.
//
// The file is re-read on every lookup rather than cached. Provider
// prices drift, and users correct them by hand-editing the file; a
// lookup happens only when the user changes mode, image, or text, so the
// extra reads are off any hot path and edits take effect without a
// restart.
//
// A missing or unparseable file is never an error at lookup time: the
// caller gets no rates and renders "no estimate available".
package pricing
