package tokens

// TileSize is the pixel edge of the square tiles the provider bills
// image inputs in.
const TileSize = 512

// Per-image token constants of the tiling formula.
const (
	imageBaseTokens = 70
	tokensPerTile   = 140
)

// ImageCost is the token cost of attaching one image.
type ImageCost struct {
	Tiles  int
	Tokens int
}

// CountImage returns the token cost for an image of the given pixel
// dimensions: ceil(w/512) * ceil(h/512) tiles, minimum one, at
// 70 + 140 per tile. Non-positive dimensions cost a single tile, which
// is also the substitution callers make when an image cannot be read.
func CountImage(widthPx, heightPx int) ImageCost {
	tilesX := (widthPx + TileSize - 1) / TileSize
	tilesY := (heightPx + TileSize - 1) / TileSize
	if tilesX < 1 {
		tilesX = 1
	}
	if tilesY < 1 {
		tilesY = 1
	}
	tiles := tilesX * tilesY
	return ImageCost{
		Tiles:  tiles,
		Tokens: imageBaseTokens + tokensPerTile*tiles,
	}
}
