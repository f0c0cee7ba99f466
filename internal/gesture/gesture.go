package gesture

// Gesture is a discrete hand pose symbol.
type Gesture string

const (
	None         Gesture = "none"
	Unknown      Gesture = "unknown"
	OpenPalm     Gesture = "open_palm"
	Pinch        Gesture = "pinch"
	ThreeFingers Gesture = "three_fingers"
	Peace        Gesture = "peace"
	ThumbsUp     Gesture = "thumbs_up"
)

// All lists every symbol the classifier can produce.
var All = []Gesture{None, Unknown, OpenPalm, Pinch, ThreeFingers, Peace, ThumbsUp}

func (g Gesture) String() string {
	return string(g)
}

const (
	// PinchDistance is the largest thumb-tip to index-tip gap counted as a pinch.
	PinchDistance = 0.05
	// ThumbLift is how far above its base joint the thumb tip must be for a
	// thumbs up.
	ThumbLift = 0.05
)

// Rule maps a pose predicate to the gesture it produces.
type Rule struct {
	Gesture Gesture
	Match   func(p Pose) bool
}

// Rules is evaluated in order and the first match wins. The predicates
// overlap, so reordering changes classification.
var Rules = []Rule{
	{Pinch, func(p Pose) bool {
		return p.PinchGap < PinchDistance &&
			!p.Extended[Middle] && !p.Extended[Ring] && !p.Extended[Pinky]
	}},
	{OpenPalm, func(p Pose) bool {
		return p.Extended[Index] && p.Extended[Middle] && p.Extended[Ring] && p.Extended[Pinky]
	}},
	// thumb state is ignored here
	{ThreeFingers, func(p Pose) bool {
		return p.Extended[Index] && p.Extended[Middle] && p.Extended[Ring] && !p.Extended[Pinky]
	}},
	{Peace, func(p Pose) bool {
		return p.Extended[Index] && p.Extended[Middle] && !p.Extended[Ring] && !p.Extended[Pinky]
	}},
	{ThumbsUp, func(p Pose) bool {
		return p.Extended[Thumb] &&
			!p.Extended[Index] && !p.Extended[Middle] && !p.Extended[Ring] && !p.Extended[Pinky] &&
			p.ThumbLift > ThumbLift
	}},
}

// Classify returns the gesture for one skeleton. A nil skeleton means no hand
// was seen and yields None; a malformed one yields Unknown.
func Classify(s Skeleton) Gesture {
	if s == nil {
		return None
	}
	pose, ok := NewPose(s)
	if !ok {
		return Unknown
	}
	return ClassifyPose(pose, Rules)
}

// ClassifyPose runs an ordered rule list against a pose.
func ClassifyPose(p Pose, rules []Rule) Gesture {
	for _, r := range rules {
		if r.Match(p) {
			return r.Gesture
		}
	}
	return Unknown
}
