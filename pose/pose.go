package pose

import "sort"

// Rotation is one bone's Euler rotation in degrees.
type Rotation struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Pose maps armature bone names to rotations, e.g. "upperarm01.L".
type Pose map[string]Rotation

// Bones returns the bone names in sorted order, for stable display and
// export.
func (p Pose) Bones() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
