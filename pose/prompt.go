package pose

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
)

// describePrompt is the vision call: turn the photo into a factual
// posture description the text call can work from.
const describePrompt = `Look at the person in this photo and describe their body
posture precisely: torso lean and twist, head direction, and the bend and
rotation of each arm and leg joint. Describe only posture, not appearance.`

// posePromptFormat is the text call: turn the posture description into
// bone rotations matching the reply schema.
const posePromptFormat = `Convert this posture description into Euler rotations in
degrees for a humanoid armature. Use MakeHuman bone names (root, spine01-05,
neck01, head, and .L/.R suffixed limb bones such as upperarm01.L).

Posture description:
%s

Additional direction from the user:
%s

Reply with a single fenced json code block: an object mapping each bone name
to {"x": deg, "y": deg, "z": deg}, matching this JSON schema:

%s`

var (
	schemaOnce sync.Once
	schemaJSON string
)

// Schema returns the JSON schema for the expected reply object. It is
// embedded in the text prompt to steer the model toward parseable output.
func Schema() string {
	schemaOnce.Do(func() {
		s := jsonschema.Reflect(Pose{})
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			// Reflection over our own types cannot produce an
			// unmarshalable schema; keep the prompt usable anyway.
			schemaJSON = "{}"
			return
		}
		schemaJSON = string(data)
	})
	return schemaJSON
}

// DescribePrompt returns the prompt for the vision call.
func DescribePrompt() string {
	return describePrompt
}

// PosePrompt returns the prompt for the text call, combining the vision
// call's posture description with the user's own rough description.
func PosePrompt(postureDescription, userDescription string) string {
	if strings.TrimSpace(userDescription) == "" {
		userDescription = "(none)"
	}
	return fmt.Sprintf(posePromptFormat, postureDescription, userDescription, Schema())
}
