package detector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/gesture"
)

// Step holds gesture g from At until the next step.
type Step struct {
	At      time.Duration
	Gesture gesture.Gesture
}

// Encode writes f as one NDJSON line without the trailing newline.
func Encode(f Frame) ([]byte, error) {
	m := message{Landmarks: f.Skeleton}
	if f.Stamped {
		t := float64(f.At) / float64(time.Millisecond)
		m.T = &t
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode frame %d: %w", f.Seq, err)
	}
	return data, nil
}

// WriteScript renders steps as a stamped frame stream sampled every
// interval, with synthetic skeletons for each gesture.
func WriteScript(w io.Writer, steps []Step, interval time.Duration) error {
	if len(steps) == 0 {
		return nil
	}
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", interval)
	}

	end := steps[len(steps)-1].At + interval
	var buf bytes.Buffer
	cur := 0
	seq := 0
	for t := steps[0].At; t < end; t += interval {
		for cur+1 < len(steps) && steps[cur+1].At <= t {
			cur++
		}
		f := Frame{Seq: seq, At: t, Stamped: true, Skeleton: gesture.Synthesize(steps[cur].Gesture)}
		data, err := Encode(f)
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
		seq++
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// DemoScript walks through every action loops times, holding each pose for
// a second and dropping the hand in between.
func DemoScript(loops int) []Step {
	order := []gesture.Gesture{
		gesture.OpenPalm, gesture.Pinch, gesture.ThreeFingers,
		gesture.ThreeFingers, gesture.Peace, gesture.Pinch, gesture.ThumbsUp,
	}
	var steps []Step
	t := time.Duration(0)
	for range loops {
		for _, g := range order {
			steps = append(steps,
				Step{At: t, Gesture: g},
				Step{At: t + time.Second, Gesture: gesture.None})
			t += 4 * time.Second
		}
	}
	return steps
}
