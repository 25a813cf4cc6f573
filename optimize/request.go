package optimize

import (
	"encoding/json"
	"fmt"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
)

// Request is the job description sent to the service.
type Request struct {
	Waypoints           [][2]float64 `json:"waypoints"`
	StartHeadingDegrees float64      `json:"start_heading_degrees"`
	EndHeadingDegrees   float64      `json:"end_heading_degrees"`
	XVelocity           float64      `json:"x_velocity"`
	YVelocity           float64      `json:"y_velocity"`
	AngularVelocity     float64      `json:"angular_velocity"`
	FrictionCoefficient float64      `json:"friction_coefficient"`
	RobotWidth          float64      `json:"robot_width"`
	RobotHeight         float64      `json:"robot_height"`
	MinCoordField       float64      `json:"min_coord_field"`
	MaxCoordField       float64      `json:"max_coord_field"`
	Interpolation       string       `json:"interpolation"`
}

// Limits are the robot's motion limits.
type Limits struct {
	XVelocity           float64 // field units per second
	YVelocity           float64 // field units per second
	AngularVelocity     float64 // radians per second
	FrictionCoefficient float64
	Interpolation       string
}

// DefaultLimits returns the limits of a typical mecanum drive.
func DefaultLimits() Limits {
	return Limits{
		XVelocity:           60,
		YVelocity:           50,
		AngularVelocity:     3.14,
		FrictionCoefficient: 0.1,
		Interpolation:       "cubic",
	}
}

// NewRequest describes the optimisation of segment i of path for a robot of
// the given size. Start and end heading are the robot's heading at the
// segment's ends.
func NewRequest(path *trajectory.Path, i int, limits Limits, width, height float64) (Request, error) {
	wps, err := path.Waypoints(i)
	if err != nil {
		return Request{}, err
	}
	prev := path.StartHeading()
	for j := 0; j < i; j++ {
		prev = path.SegmentPose(j, 1, prev).Heading
	}
	start := path.SegmentPose(i, 0, prev).Heading
	end := path.SegmentPose(i, 1, start).Heading
	return Request{
		Waypoints:           wps,
		StartHeadingDegrees: start,
		EndHeadingDegrees:   end,
		XVelocity:           limits.XVelocity,
		YVelocity:           limits.YVelocity,
		AngularVelocity:     limits.AngularVelocity,
		FrictionCoefficient: limits.FrictionCoefficient,
		RobotWidth:          width,
		RobotHeight:         height,
		MinCoordField:       pedro.FieldMin,
		MaxCoordField:       pedro.FieldMax,
		Interpolation:       limits.Interpolation,
	}, nil
}

// ParseResult reads the waypoint list of a finished job. The service
// answers either with an object holding "optimized_waypoints" or, in older
// versions, with the bare list.
func ParseResult(raw []byte) ([]pedro.Pair, error) {
	var wrapped struct {
		Waypoints *[][2]float64 `json:"optimized_waypoints"`
	}
	var list [][2]float64
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Waypoints != nil {
		list = *wrapped.Waypoints
	} else if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResult, err)
	}
	if len(list) < 2 {
		return nil, fmt.Errorf("%w: %d waypoints", ErrBadResult, len(list))
	}
	pts := make([]pedro.Pair, len(list))
	for i, wp := range list {
		pts[i] = pedro.P(wp[0], wp[1])
		if !pts[i].IsValid() {
			return nil, fmt.Errorf("%w: waypoint %d", ErrBadResult, i)
		}
	}
	return pts, nil
}
