package tokens

import (
	"fmt"
	"testing"
)

func TestCountImage(t *testing.T) {
	tests := []struct {
		w, h   int
		tiles  int
		tokens int
	}{
		{512, 512, 1, 210},
		{1024, 512, 2, 350},
		{1024, 1024, 4, 630},
		{2048, 2048, 16, 2310},
		{3840, 2160, 40, 5670},
		{1, 1, 1, 210},
		{513, 512, 2, 350},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.w, tt.h), func(t *testing.T) {
			got := CountImage(tt.w, tt.h)
			if got.Tiles != tt.tiles {
				t.Errorf("Tiles = %d, want %d", got.Tiles, tt.tiles)
			}
			if got.Tokens != tt.tokens {
				t.Errorf("Tokens = %d, want %d", got.Tokens, tt.tokens)
			}
		})
	}
}

func TestCountImageUnreadableSubstitution(t *testing.T) {
	// Callers substitute 512x512 for unreadable images; zero and negative
	// dimensions behave the same way.
	for _, dims := range [][2]int{{0, 0}, {-1, 100}, {0, 512}} {
		got := CountImage(dims[0], dims[1])
		if got.Tiles != 1 || got.Tokens != 210 {
			t.Errorf("CountImage(%d, %d) = %+v, want 1 tile / 210 tokens",
				dims[0], dims[1], got)
		}
	}
}
