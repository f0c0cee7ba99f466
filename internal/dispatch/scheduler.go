package dispatch

import (
	"cmp"
	"slices"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/scene"
)

// Scheduled is a command deferred to a point on the logical clock.
type Scheduled struct {
	At      time.Duration
	Seq     uint64
	Tag     Action
	Command scene.Command
}

// Scheduler is a queue of one-shot deferred commands ordered by due time,
// then by the order they were scheduled in.
type Scheduler struct {
	seq    uint64
	events []Scheduled
}

// Schedule queues cmd to fire at at. tag names the action that issued it.
func (q *Scheduler) Schedule(at time.Duration, tag Action, cmd scene.Command) Scheduled {
	q.seq++
	ev := Scheduled{At: at, Seq: q.seq, Tag: tag, Command: cmd}
	i, _ := slices.BinarySearchFunc(q.events, ev, compareScheduled)
	q.events = slices.Insert(q.events, i, ev)
	return ev
}

// Due removes and returns every event with At <= now, in firing order.
func (q *Scheduler) Due(now time.Duration) []Scheduled {
	n := 0
	for n < len(q.events) && q.events[n].At <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := slices.Clone(q.events[:n])
	q.events = slices.Delete(q.events, 0, n)
	return due
}

// Cancel drops pending events issued by tag and returns them.
func (q *Scheduler) Cancel(tag Action) []Scheduled {
	var dropped []Scheduled
	q.events = slices.DeleteFunc(q.events, func(ev Scheduled) bool {
		if ev.Tag == tag {
			dropped = append(dropped, ev)
			return true
		}
		return false
	})
	return dropped
}

// Clear drops every pending event.
func (q *Scheduler) Clear() {
	q.events = q.events[:0]
}

// Pending returns a copy of the queue in firing order.
func (q *Scheduler) Pending() []Scheduled {
	return slices.Clone(q.events)
}

// Next reports when the earliest pending event is due.
func (q *Scheduler) Next() (time.Duration, bool) {
	if len(q.events) == 0 {
		return 0, false
	}
	return q.events[0].At, true
}

func compareScheduled(a, b Scheduled) int {
	if c := cmp.Compare(a.At, b.At); c != 0 {
		return c
	}
	return cmp.Compare(a.Seq, b.Seq)
}
