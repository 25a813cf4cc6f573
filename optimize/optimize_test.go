package optimize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService finishes every job after a number of pending polls.
type fakeService struct {
	pending   int
	final     Status
	submitErr error
	pollErr   error
	polls     int
	requests  []Request
}

func (s *fakeService) Submit(ctx context.Context, req Request) (string, error) {
	if s.submitErr != nil {
		return "", s.submitErr
	}
	s.requests = append(s.requests, req)
	return fmt.Sprintf("job-%d", len(s.requests)), nil
}

func (s *fakeService) Poll(ctx context.Context, id string) (Status, error) {
	s.polls++
	if s.pollErr != nil {
		return Status{}, s.pollErr
	}
	if s.polls <= s.pending {
		return Status{State: StatePending}, nil
	}
	return s.final, nil
}

func done(raw string) Status {
	return Status{State: StateDone, Result: json.RawMessage(raw)}
}

func testpath() *trajectory.Path {
	return trajectory.Begin(trajectory.At(10, 10, trajectory.Constant{Degrees: 90})).
		LineTo(trajectory.At(40, 10, trajectory.Tangential{})).
		CurveTo(trajectory.At(80, 50, trajectory.Linear{StartDeg: 0, EndDeg: 90}), pedro.P(80, 10)).Wait(1)
}

func TestNewRequest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	req, err := NewRequest(testpath(), 1, DefaultLimits(), 18, 16)
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{40, 10}, {80, 10}, {80, 50}}, req.Waypoints)
	assert.Equal(t, 0.0, req.StartHeadingDegrees)
	assert.Equal(t, 90.0, req.EndHeadingDegrees)
	assert.Equal(t, 18.0, req.RobotWidth)
	assert.Equal(t, 144.0, req.MaxCoordField)
	raw, err := json.Marshal(req)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"waypoints", "start_heading_degrees", "end_heading_degrees",
		"x_velocity", "y_velocity", "angular_velocity", "friction_coefficient",
		"robot_width", "robot_height", "min_coord_field", "max_coord_field", "interpolation"} {
		assert.Contains(t, fields, key)
	}
	assert.Len(t, fields, 12)
	_, err = NewRequest(testpath(), 5, DefaultLimits(), 18, 16)
	assert.True(t, errors.Is(err, trajectory.ErrNoSegment))
}

func TestParseResult(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts, err := ParseResult([]byte(`{"optimized_waypoints": [[1,2],[3,4],[5,6]]}`))
	require.NoError(t, err)
	assert.Equal(t, []pedro.Pair{pedro.P(1, 2), pedro.P(3, 4), pedro.P(5, 6)}, pts)
	pts, err = ParseResult([]byte(`[[1,2],[5,6]]`))
	require.NoError(t, err)
	assert.Equal(t, []pedro.Pair{pedro.P(1, 2), pedro.P(5, 6)}, pts)
	for _, raw := range []string{`{"status": "ok"}`, `[[1,2]]`, `"nope"`, `{"optimized_waypoints": []}`} {
		_, err = ParseResult([]byte(raw))
		assert.True(t, errors.Is(err, ErrBadResult), raw)
	}
}

func TestOptimizePolls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	service := &fakeService{pending: 3, final: done(`{"optimized_waypoints": [[40,10],[70,20],[80,50]]}`)}
	client := &Client{Service: service, Attempts: 10, Backoff: time.Millisecond}
	pts, err := client.Optimize(context.Background(), Request{})
	require.NoError(t, err)
	assert.Len(t, pts, 3)
	assert.Equal(t, 4, service.polls)
}

func TestOptimizeFailures(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ctx := context.Background()
	client := &Client{Attempts: 5}

	client.Service = &fakeService{submitErr: errors.New("connection refused")}
	_, err := client.Optimize(ctx, Request{})
	assert.True(t, errors.Is(err, ErrServiceFailed))

	client.Service = &fakeService{pollErr: errors.New("503")}
	_, err = client.Optimize(ctx, Request{})
	assert.True(t, errors.Is(err, ErrServiceFailed))

	client.Service = &fakeService{final: Status{State: StateFailed, Error: "infeasible"}}
	_, err = client.Optimize(ctx, Request{})
	assert.True(t, errors.Is(err, ErrJobFailed))

	service := &fakeService{pending: 100}
	client.Service = service
	_, err = client.Optimize(ctx, Request{})
	assert.True(t, errors.Is(err, ErrPollExhausted))
	assert.Equal(t, 5, service.polls)

	client.Service = &fakeService{final: done(`{}`)}
	_, err = client.Optimize(ctx, Request{})
	assert.True(t, errors.Is(err, ErrBadResult))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	client = &Client{Service: &fakeService{pending: 100}, Attempts: 5, Backoff: time.Hour}
	_, err = client.Optimize(cancelled, Request{})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRebuildSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := testpath().Lines[1]
	rebuilt, err := RebuildSegment(seg, []pedro.Pair{pedro.P(40, 10), pedro.P(60, 5), pedro.P(85, 20), pedro.P(82, 52)})
	require.NoError(t, err)
	assert.Equal(t, []pedro.Pair{pedro.P(60, 5), pedro.P(85, 20)}, rebuilt.Controls)
	assert.Equal(t, pedro.P(82, 52), rebuilt.End.Pos)
	assert.Equal(t, seg.End.Heading, rebuilt.End.Heading)
	assert.Equal(t, seg.Wait, rebuilt.Wait)
	assert.Equal(t, []pedro.Pair{pedro.P(80, 10)}, seg.Controls)
	line, err := RebuildSegment(seg, []pedro.Pair{pedro.P(40, 10), pedro.P(80, 50)})
	require.NoError(t, err)
	assert.Empty(t, line.Controls)
	_, err = RebuildSegment(seg, nil)
	assert.True(t, errors.Is(err, ErrBadResult))
}

func TestTrackerDiscardsStaleResults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	keep := path.Clone()
	tracker := NewTracker()
	first := tracker.Begin(1)
	second := tracker.Begin(1)
	other := tracker.Begin(0)
	assert.False(t, tracker.Current(first))
	assert.True(t, tracker.Current(second))
	assert.True(t, tracker.Current(other))
	assert.NotEqual(t, first.ID, second.ID)

	wps := []pedro.Pair{pedro.P(40, 10), pedro.P(70, 20), pedro.P(80, 50)}
	err := tracker.Apply(path, Result{Ticket: first, Waypoints: wps})
	assert.True(t, errors.Is(err, ErrStale))
	assert.Equal(t, keep, *path)

	require.NoError(t, tracker.Apply(path, Result{Ticket: second, Waypoints: wps}))
	assert.Equal(t, []pedro.Pair{pedro.P(70, 20)}, path.Lines[1].Controls)
	assert.False(t, tracker.Current(second))
	// a ticket is good for one result only
	assert.True(t, errors.Is(tracker.Apply(path, Result{Ticket: second, Waypoints: wps}), ErrStale))

	failed := errors.New("boom")
	before := path.Clone()
	assert.Equal(t, failed, tracker.Apply(path, Result{Ticket: other, Err: failed}))
	assert.Equal(t, before, *path)
}

func TestStartDeliversResult(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	req, err := NewRequest(path, 1, DefaultLimits(), 16, 16)
	require.NoError(t, err)
	service := &fakeService{pending: 1, final: done(`[[40,10],[60,30],[80,50]]`)}
	client := &Client{Service: service, Attempts: 3, Backoff: time.Millisecond}
	tracker := NewTracker()
	ticket := tracker.Begin(1)
	select {
	case res := <-client.Start(context.Background(), ticket, req):
		require.NoError(t, tracker.Apply(path, res))
	case <-time.After(5 * time.Second):
		t.Fatal("no result")
	}
	assert.Equal(t, []pedro.Pair{pedro.P(60, 30)}, path.Lines[1].Controls)
}
