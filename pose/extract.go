package pose

import (
	"encoding/json"
	"errors"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrNoPose indicates no bone-rotation dictionary could be extracted
// from the reply.
var ErrNoPose = errors.New("no pose found in reply")

var (
	fenceRegex  = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")
	inlineRegex = regexp.MustCompile(`(?s)\{.*\}`)
)

// Extract pulls a pose out of a model reply. Fenced json blocks are
// tried first, then yaml blocks, then bare fences, then the first inline
// {...} object. Bone entries that don't parse are skipped; an extraction
// with zero usable bones is ErrNoPose.
func Extract(response string) (Pose, error) {
	for _, match := range fenceRegex.FindAllStringSubmatch(response, -1) {
		lang, content := match[1], match[2]
		switch lang {
		case "yaml", "yml":
			if p, ok := fromYAML(content); ok {
				return p, nil
			}
		default:
			// json, unlabeled, or mislabeled fences all get the JSON try.
			if p, ok := fromJSON(content); ok {
				return p, nil
			}
		}
	}

	if loose := inlineRegex.FindString(response); loose != "" {
		if p, ok := fromJSON(loose); ok {
			return p, nil
		}
	}

	return nil, ErrNoPose
}

func fromJSON(content string) (Pose, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, false
	}
	return fromRaw(raw)
}

func fromYAML(content string) (Pose, bool) {
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(content), &raw); err != nil {
		return nil, false
	}
	return fromRaw(raw)
}

func fromRaw(raw map[string]any) (Pose, bool) {
	p := make(Pose, len(raw))
	for bone, val := range raw {
		if r, ok := toRotation(val); ok {
			p[bone] = r
		}
	}
	if len(p) == 0 {
		return nil, false
	}
	return p, true
}

// toRotation coerces either an {x,y,z} mapping or a [x,y,z] sequence.
func toRotation(val any) (Rotation, bool) {
	switch v := val.(type) {
	case map[string]any:
		x, okX := toFloat(v["x"])
		y, okY := toFloat(v["y"])
		z, okZ := toFloat(v["z"])
		if !okX && !okY && !okZ {
			return Rotation{}, false
		}
		return Rotation{X: x, Y: y, Z: z}, true

	case []any:
		if len(v) != 3 {
			return Rotation{}, false
		}
		x, okX := toFloat(v[0])
		y, okY := toFloat(v[1])
		z, okZ := toFloat(v[2])
		if !okX || !okY || !okZ {
			return Rotation{}, false
		}
		return Rotation{X: x, Y: y, Z: z}, true
	}
	return Rotation{}, false
}

// toFloat handles the numeric types json and yaml decoding produce.
// A missing or non-numeric axis reads as 0.
func toFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
