// Package detector is the boundary to the external hand-landmark detector.
// Skeletons arrive as newline-delimited JSON, one line per captured frame.
package detector

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/gesture"
)

// ErrPartial is reported for a hand with the wrong number of landmarks.
var ErrPartial = errors.New("partial skeleton")

// Frame is one detector report. A nil Skeleton means no hand was seen.
type Frame struct {
	Seq      int
	At       time.Duration
	Stamped  bool
	Skeleton gesture.Skeleton
}

// Hand reports whether the frame carries a skeleton.
func (f Frame) Hand() bool {
	return f.Skeleton != nil
}

// message accepts both a flat landmark list and the detector's native
// multi-hand layout, of which only the first hand is used.
type message struct {
	T         *float64             `json:"t,omitempty"`
	Landmarks []gesture.Landmark   `json:"landmarks,omitempty"`
	MultiHand [][]gesture.Landmark `json:"multiHandLandmarks,omitempty"`
}

// Decode parses one line. Blank lines, null and empty objects are frames
// without a hand. A skeleton that is not exactly gesture.LandmarkCount long
// is dropped with ErrPartial; the returned frame is still usable as "no
// hand".
func Decode(line []byte) (Frame, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || bytes.Equal(line, []byte("null")) {
		return Frame{}, nil
	}

	var m message
	if err := json.Unmarshal(line, &m); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}

	var f Frame
	if m.T != nil {
		f.At = time.Duration(*m.T * float64(time.Millisecond))
		f.Stamped = true
	}

	landmarks := m.Landmarks
	if landmarks == nil && len(m.MultiHand) > 0 {
		landmarks = m.MultiHand[0]
	}
	if landmarks == nil {
		return f, nil
	}
	if len(landmarks) != gesture.LandmarkCount {
		return f, fmt.Errorf("%w: got %d landmarks", ErrPartial, len(landmarks))
	}
	f.Skeleton = gesture.Skeleton(landmarks)
	return f, nil
}

// Reader pulls frames off an NDJSON stream in order.
type Reader struct {
	scanner *bufio.Scanner
	seq     int
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	return &Reader{scanner: s}
}

// DecodeError is a line that could not be turned into a skeleton. The frame
// returned with it is hand-less and still valid.
type DecodeError struct {
	Seq int
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Seq, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Next returns the next frame. A *DecodeError comes back alongside a
// hand-less frame so the caller can log it and carry on; io.EOF marks the
// end of the stream and any other error is a failed read.
func (r *Reader) Next() (Frame, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return Frame{}, fmt.Errorf("read frame: %w", err)
		}
		return Frame{}, io.EOF
	}
	f, err := Decode(r.scanner.Bytes())
	f.Seq = r.seq
	r.seq++
	if err != nil {
		f.Skeleton = nil
		return f, &DecodeError{Seq: f.Seq, Err: err}
	}
	return f, nil
}
