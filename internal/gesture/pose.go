package gesture

// Finger identifies one digit of the hand.
type Finger int

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky
)

var fingerNames = [...]string{"thumb", "index", "middle", "ring", "pinky"}

func (f Finger) String() string {
	if f < Thumb || f > Pinky {
		return "finger?"
	}
	return fingerNames[f]
}

type fingerJoints struct {
	tip, base int
	threshold float64
}

var joints = [5]fingerJoints{
	Thumb:  {ThumbTip, ThumbMCP, 1.2},
	Index:  {IndexTip, IndexMCP, 1.3},
	Middle: {MiddleTip, MiddleMCP, 1.3},
	Ring:   {RingTip, RingMCP, 1.3},
	Pinky:  {PinkyTip, PinkyMCP, 1.3},
}

// Threshold returns the extension ratio above which f counts as extended.
func (f Finger) Threshold() float64 {
	return joints[f].threshold
}

// minBaseDistance guards the ratio against a collapsed base joint.
const minBaseDistance = 1e-6

// Pose holds the geometric measurements the rules are written against.
type Pose struct {
	// Ratio is tip-to-wrist over base-joint-to-wrist distance per finger.
	Ratio    [5]float64
	Extended [5]bool
	// PinchGap is the thumb-tip to index-tip distance.
	PinchGap float64
	// ThumbLift is thumb base Y minus thumb tip Y; positive means the tip is
	// higher in the image.
	ThumbLift float64
}

// NewPose measures s. It reports false when s is malformed.
func NewPose(s Skeleton) (Pose, bool) {
	if !s.Valid() {
		return Pose{}, false
	}

	var p Pose
	wrist := s[Wrist]
	for f := Thumb; f <= Pinky; f++ {
		j := joints[f]
		p.Ratio[f] = extensionRatio(s[j.tip], s[j.base], wrist)
		p.Extended[f] = p.Ratio[f] > j.threshold
	}
	p.PinchGap = distance(s[ThumbTip], s[IndexTip])
	p.ThumbLift = s[ThumbMCP].Y - s[ThumbTip].Y
	return p, true
}

func extensionRatio(tip, base, wrist Landmark) float64 {
	baseToWrist := distance(base, wrist)
	if baseToWrist < minBaseDistance {
		return 0
	}
	return distance(tip, wrist) / baseToWrist
}
