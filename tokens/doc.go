// Package tokens counts tokens for pre-flight cost estimation.
//
// Text is counted with tiktoken's cl100k_base encoding when the encoder
// can be constructed, and with a deterministic ceil(len/4) heuristic when
// it cannot (no network for the BPE data, unknown encoding). Counting
// never fails; the worst case is a rougher estimate.
//
// Images are costed with the provider's fixed 512-pixel tiling formula,
// independent of image content.
package tokens
