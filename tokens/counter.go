package tokens

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the BPE encoding used for counting.
const DefaultEncoding = "cl100k_base"

// fallbackCharsPerToken is the chars-per-token ratio for the heuristic
// used when the encoder is unavailable.
const fallbackCharsPerToken = 4

// Counter counts tokens in text. The underlying encoder is built lazily
// on first use; if construction fails the counter falls back to the
// ceil(len/4) heuristic for the rest of its lifetime. Safe for
// concurrent use.
type Counter struct {
	encoding string

	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
}

// NewCounter returns a counter using the default encoding.
func NewCounter() *Counter {
	return &Counter{encoding: DefaultEncoding}
}

// NewCounterWithEncoding returns a counter using the named tiktoken
// encoding. An unknown name is not an error: the counter silently runs
// on the fallback heuristic.
func NewCounterWithEncoding(encoding string) *Counter {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	return &Counter{encoding: encoding}
}

func (c *Counter) init() {
	c.once.Do(func() {
		c.enc, c.err = tiktoken.GetEncoding(c.encoding)
	})
}

// Count returns the number of tokens in text. Empty text counts as 0;
// non-empty text counts as at least 1. Count never fails.
func (c *Counter) Count(text string) int {
	if text == "" {
		return 0
	}
	c.init()
	if c.err != nil || c.enc == nil {
		return fallbackCount(text)
	}
	return len(c.enc.Encode(text, nil, nil))
}

// fallbackCount is the deterministic estimate used when no encoder is
// available: ceil(len/4), minimum 1 for non-empty input.
func fallbackCount(text string) int {
	n := (len(text) + fallbackCharsPerToken - 1) / fallbackCharsPerToken
	if n < 1 {
		n = 1
	}
	return n
}
