package optimize

import (
	"fmt"
	"sync"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
	"github.com/google/uuid"
)

// RebuildSegment returns seg reshaped along optimised waypoints. The first
// waypoint stands for the segment's start, which belongs to the previous
// segment and is left alone. The last one becomes the end position; the end
// point keeps its heading rule. All others become control points.
func RebuildSegment(seg trajectory.Segment, wps []pedro.Pair) (trajectory.Segment, error) {
	if len(wps) < 2 {
		return seg, fmt.Errorf("%w: %d waypoints", ErrBadResult, len(wps))
	}
	rebuilt := seg.Clone()
	rebuilt.End.Pos = wps[len(wps)-1]
	rebuilt.Controls = append([]pedro.Pair{}, wps[1:len(wps)-1]...)
	return rebuilt, nil
}

// Ticket identifies one optimisation request for a segment.
type Ticket struct {
	ID      string
	Segment int
	Gen     uint64
}

// Tracker hands out tickets and tells current from stale results. It may be
// shared between goroutines.
type Tracker struct {
	mu      sync.Mutex
	counter uint64
	current map[int]uint64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{current: make(map[int]uint64)}
}

// Begin issues a ticket for segment, superseding all earlier tickets for
// the same segment.
func (t *Tracker) Begin(segment int) Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counter++
	t.current[segment] = t.counter
	return Ticket{ID: uuid.NewString(), Segment: segment, Gen: t.counter}
}

// Current is a predicate: is ticket the latest one for its segment?
func (t *Tracker) Current(ticket Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	gen, ok := t.current[ticket.Segment]
	return ok && gen == ticket.Gen
}

// Apply rebuilds the ticket's segment of path from res. Failed and stale
// results leave path unchanged; failures are returned, stale results yield
// ErrStale. A ticket is retired once its result has been handled.
func (t *Tracker) Apply(path *trajectory.Path, res Result) error {
	if !t.Current(res.Ticket) {
		tracer().Infof("discarding stale result %s for segment %d", res.Ticket.ID, res.Ticket.Segment)
		return fmt.Errorf("%w: request %s", ErrStale, res.Ticket.ID)
	}
	t.retire(res.Ticket)
	if res.Err != nil {
		tracer().Errorf("optimisation of segment %d failed: %v", res.Ticket.Segment, res.Err)
		return res.Err
	}
	i := res.Ticket.Segment
	if i < 0 || i >= path.N() {
		return fmt.Errorf("%w: %d", trajectory.ErrNoSegment, i)
	}
	seg, err := RebuildSegment(path.Lines[i], res.Waypoints)
	if err != nil {
		return err
	}
	path.Lines[i] = seg
	tracer().Infof("segment %d rebuilt with %d control points", i, len(seg.Controls))
	return nil
}

func (t *Tracker) retire(ticket Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current[ticket.Segment] == ticket.Gen {
		delete(t.current, ticket.Segment)
	}
}
