package wizard

import (
	"image"
	"net/http"
	"os"

	// Decoders for the formats the wizard accepts.
	_ "image/jpeg"
	_ "image/png"
)

// fallbackEdge is the dimension substituted when an image cannot be
// decoded, matching the single-tile estimate assumption.
const fallbackEdge = 512

// imageSize returns the pixel dimensions of the image at path, or
// 512x512 when the file is missing or undecodable. Estimation must not
// fail on a bad image.
func imageSize(path string) (width, height int) {
	f, err := os.Open(path)
	if err != nil {
		return fallbackEdge, fallbackEdge
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return fallbackEdge, fallbackEdge
	}
	return cfg.Width, cfg.Height
}

// readImage loads the image bytes for the real vision call and sniffs
// the media type for the data URL.
func readImage(path string) (data []byte, mediaType string, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return data, http.DetectContentType(data), nil
}
