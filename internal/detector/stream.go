package detector

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/clock"
)

// Detector delivers frames from a hand tracker.
type Detector interface {
	// Frames is closed once the source is exhausted.
	Frames() <-chan Frame
	// Close releases the source.
	Close() error
}

// Config holds options for a Stream.
type Config struct {
	// Buffer is how many undelivered frames are kept. When the consumer
	// falls behind the oldest frame is dropped.
	Buffer int
	// Paced replays stamped frames at their recorded times instead of as
	// fast as they can be read.
	Paced bool
}

// DefaultConfig returns a Config with a small buffer and no pacing.
func DefaultConfig() Config {
	return Config{Buffer: 8}
}

// Stream runs a Reader on its own goroutine and hands frames over a
// buffered channel that the update loop drains at tick boundaries.
type Stream struct {
	cfg    Config
	reader *Reader
	source io.Reader
	clock  clock.Clock
	frames chan Frame

	dropped int
}

// NewStream creates a stream over r. If r is an io.Closer, Close closes it.
func NewStream(r io.Reader, c clock.Clock, cfg Config) *Stream {
	if cfg.Buffer < 1 {
		cfg.Buffer = 1
	}
	return &Stream{
		cfg:    cfg,
		reader: NewReader(r),
		source: r,
		clock:  c,
		frames: make(chan Frame, cfg.Buffer),
	}
}

func (s *Stream) Frames() <-chan Frame {
	return s.frames
}

func (s *Stream) Close() error {
	if c, ok := s.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Dropped returns how many frames were discarded because the buffer was
// full. Only meaningful after Run returns.
func (s *Stream) Dropped() int {
	return s.dropped
}

// Run reads until EOF, a read error or ctx is done, then closes Frames.
// Undecodable lines are logged and delivered as hand-less frames.
func (s *Stream) Run(ctx context.Context) error {
	defer close(s.frames)

	start := s.clock.Now()
	for {
		f, err := s.reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var de *DecodeError
			if !errors.As(err, &de) {
				return err
			}
			log.Printf("Treating as no hand: %v", de)
		}

		if s.cfg.Paced && f.Stamped {
			if err := s.wait(ctx, start.Add(f.At)); err != nil {
				return err
			}
		}
		if err := s.push(ctx, f); err != nil {
			return err
		}
	}
}

func (s *Stream) wait(ctx context.Context, due time.Time) error {
	d := due.Sub(s.clock.Now())
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Stream) push(ctx context.Context, f Frame) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case s.frames <- f:
			return nil
		default:
		}
		select {
		case <-s.frames:
			s.dropped++
		default:
		}
	}
}

// Drain returns every frame currently buffered on ch without blocking, and
// whether ch has been closed.
func Drain(ch <-chan Frame) (frames []Frame, closed bool) {
	for {
		select {
		case f, ok := <-ch:
			if !ok {
				return frames, true
			}
			frames = append(frames, f)
		default:
			return frames, false
		}
	}
}
