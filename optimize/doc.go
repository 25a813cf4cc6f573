/*
Package optimize talks to a remote curve optimisation service.

A segment's waypoints are sent to the service together with the robot's
dimensions and motion limits. The service answers with a job id; the job is
polled a bounded number of times with a fixed pause in between, until it
has finished, has failed, or the attempts are used up. A finished job
yields an optimised list of waypoints, from which the segment is rebuilt:
the first and last waypoint stand for the segment's start and end, all
others become control points.

Requests run on their own goroutine and report through a channel, so the
caller's frame loop never blocks on the service. A fresh request for a
segment supersedes all earlier ones; a Tracker hands out tickets and
discards results whose ticket is no longer current. Results are applied to
the path as a whole or not at all.

# BSD License

# Copyright (c) Bryce Tieu

All rights reserved.

Please refer to the license file for more information.
*/
package optimize

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pedro.optimize'
func tracer() tracing.Trace {
	return tracing.Select("pedro.optimize")
}

var (
	// ErrServiceFailed indicates that the service could not be reached or
	// rejected a request.
	ErrServiceFailed = errors.New("optimisation service failed")
	// ErrJobFailed indicates a job which finished without result.
	ErrJobFailed = errors.New("optimisation job failed")
	// ErrPollExhausted indicates a job still running after all poll attempts.
	ErrPollExhausted = errors.New("optimisation job did not finish in time")
	// ErrBadResult indicates a result which is not a list of waypoints.
	ErrBadResult = errors.New("malformed optimisation result")
	// ErrStale indicates a result superseded by a newer request.
	ErrStale = errors.New("optimisation result is stale")
)
