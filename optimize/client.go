package optimize

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
)

// Job states reported by the service.
const (
	StatePending = "pending"
	StateDone    = "done"
	StateFailed  = "failed"
)

// Status is the answer to a poll.
type Status struct {
	State  string
	Result json.RawMessage // for StateDone
	Error  string          // for StateFailed
}

// Service is the remote optimisation service. Transport and encoding are up
// to the implementation.
type Service interface {
	// Submit creates a job and returns its id.
	Submit(ctx context.Context, req Request) (string, error)
	// Poll reports the state of a job.
	Poll(ctx context.Context, jobID string) (Status, error)
}

// Client defaults.
const (
	DefaultAttempts = 60
	DefaultBackoff  = time.Second
)

// Client runs jobs on a Service.
type Client struct {
	Service  Service
	Attempts int           // poll attempts per job
	Backoff  time.Duration // pause before every poll
}

// NewClient creates a client for service with default poll settings.
func NewClient(service Service) *Client {
	return &Client{Service: service, Attempts: DefaultAttempts, Backoff: DefaultBackoff}
}

// Optimize submits req and waits for the optimised waypoints. It blocks
// until the job is done, has failed, the poll attempts are exhausted, or ctx
// is cancelled.
func (c *Client) Optimize(ctx context.Context, req Request) ([]pedro.Pair, error) {
	id, err := c.Service.Submit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: submit: %w", ErrServiceFailed, err)
	}
	tracer().Debugf("job %s submitted with %d waypoints", id, len(req.Waypoints))
	attempts := c.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	for n := 1; n <= attempts; n++ {
		if err := c.pause(ctx); err != nil {
			return nil, err
		}
		st, err := c.Service.Poll(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: poll %s: %w", ErrServiceFailed, id, err)
		}
		switch st.State {
		case StateDone:
			tracer().Infof("job %s done after %d polls", id, n)
			return ParseResult(st.Result)
		case StateFailed:
			return nil, fmt.Errorf("%w: %s: %s", ErrJobFailed, id, st.Error)
		case StatePending:
		default:
			return nil, fmt.Errorf("%w: job %s in unknown state %q", ErrServiceFailed, id, st.State)
		}
	}
	tracer().Errorf("job %s still pending after %d polls", id, attempts)
	return nil, fmt.Errorf("%w: job %s, %d attempts", ErrPollExhausted, id, attempts)
}

func (c *Client) pause(ctx context.Context) error {
	if c.Backoff <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.Backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Result is the outcome of a job started with Start.
type Result struct {
	Ticket    Ticket
	Waypoints []pedro.Pair
	Err       error
}

// Start runs Optimize on a new goroutine. The result is delivered on the
// returned channel, which has room for it, so the goroutine never blocks on
// a caller who has lost interest.
func (c *Client) Start(ctx context.Context, ticket Ticket, req Request) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		wps, err := c.Optimize(ctx, req)
		ch <- Result{Ticket: ticket, Waypoints: wps, Err: err}
	}()
	return ch
}
