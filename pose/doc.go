// Package pose defines the bone-rotation result the wizard produces,
// builds the prompts for the two model calls, and extracts a pose from
// the model's reply.
//
// Extraction is deliberately tolerant. Models wrap the dictionary in a
// fenced json block most of the time, but sometimes a yaml block, a bare
// fence, or loose inline JSON; all are accepted, and individual bone
// entries that don't parse are skipped rather than failing the whole
// reply. Values may be {x,y,z} objects or three-element arrays.
package pose
