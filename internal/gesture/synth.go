package gesture

// pointing directions in image space, Y grows downward
var fingerDirs = [5][2]float64{
	Thumb:  {-0.6, -0.8},
	Index:  {-0.2, -1},
	Middle: {0, -1},
	Ring:   {0.2, -1},
	Pinky:  {0.4, -1},
}

// Hand builds an upright skeleton with the wrist at (0.5, 0.9) and the
// listed fingers extended. Extended fingers have a ratio of 2.0, curled ones
// 1.1.
func Hand(extended ...Finger) Skeleton {
	wrist := Landmark{X: 0.5, Y: 0.9}
	s := make(Skeleton, LandmarkCount)
	for i := range s {
		s[i] = wrist
	}

	up := map[Finger]bool{}
	for _, f := range extended {
		up[f] = true
	}

	at := func(f Finger, scale float64) Landmark {
		d := fingerDirs[f]
		return Landmark{X: wrist.X + d[0]*scale, Y: wrist.Y + d[1]*scale}
	}

	for f := Thumb; f <= Pinky; f++ {
		j := joints[f]
		for i := j.base; i < j.tip; i++ {
			s[i] = at(f, 0.2)
		}
		if up[f] {
			s[j.tip] = at(f, 0.4)
		} else {
			s[j.tip] = at(f, 0.22)
		}
	}
	return s
}

// Synthesize returns a skeleton that classifies as g. None yields nil.
func Synthesize(g Gesture) Skeleton {
	switch g {
	case None:
		return nil
	case OpenPalm:
		return Hand(Thumb, Index, Middle, Ring, Pinky)
	case Pinch:
		s := Hand(Index)
		s[ThumbTip] = Landmark{X: s[IndexTip].X + 0.01, Y: s[IndexTip].Y + 0.01}
		return s
	case ThreeFingers:
		return Hand(Index, Middle, Ring)
	case Peace:
		return Hand(Index, Middle)
	case ThumbsUp:
		return Hand(Thumb)
	}
	return Hand(Thumb, Pinky)
}
