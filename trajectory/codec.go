package trajectory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	pedro "github.com/BryceTieu/Pedro-Visualzier-18127"
)

var (
	// ErrLoadFailed indicates a trajectory file which could not be loaded.
	// It always wraps the cause.
	ErrLoadFailed = errors.New("load failed")
	// ErrMissingField indicates a required field absent from a trajectory file.
	ErrMissingField = errors.New("missing required field")
	// ErrUnknownHeading indicates a heading mode name not understood.
	ErrUnknownHeading = errors.New("unknown heading mode")
)

// File is the content of a trajectory file. Robot dimensions are optional
// in the file.
type File struct {
	Path        Path
	RobotWidth  float64
	RobotHeight float64
}

// --- Wire format -----------------------------------------------------------

type wireBase struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type wirePoint struct {
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Heading  string   `json:"heading"`
	StartDeg *float64 `json:"startDeg,omitempty"`
	EndDeg   *float64 `json:"endDeg,omitempty"`
	Degrees  *float64 `json:"degrees,omitempty"`
	Reverse  *bool    `json:"reverse,omitempty"`
}

type wireLine struct {
	Name          string     `json:"name,omitempty"`
	Color         string     `json:"color,omitempty"`
	EndPoint      *wirePoint `json:"endPoint"`
	ControlPoints []wireBase `json:"controlPoints"`
	WaitTime      *float64   `json:"waitTime,omitempty"`
}

type wireFile struct {
	StartPoint  *wirePoint `json:"startPoint"`
	Lines       []wireLine `json:"lines"`
	RobotWidth  *float64   `json:"robotWidth,omitempty"`
	RobotHeight *float64   `json:"robotHeight,omitempty"`
}

func f64(v float64) *float64 {
	return &v
}

func toWirePoint(pt Point) *wirePoint {
	wp := &wirePoint{X: f64(pt.X()), Y: f64(pt.Y())}
	switch h := pt.Heading.(type) {
	case Linear:
		wp.Heading = ModeLinear
		wp.StartDeg, wp.EndDeg = f64(h.StartDeg), f64(h.EndDeg)
	case Constant:
		wp.Heading = ModeConstant
		wp.Degrees = f64(h.Degrees)
	case Tangential:
		wp.Heading = ModeTangential
		reverse := h.Reverse
		wp.Reverse = &reverse
	}
	return wp
}

func fromWirePoint(wp *wirePoint) (Point, error) {
	if wp == nil {
		return Point{}, ErrMissingField
	}
	if wp.X == nil || wp.Y == nil {
		return Point{}, fmt.Errorf("%w: x/y", ErrMissingField)
	}
	pt := Point{Pos: pedro.P(*wp.X, *wp.Y)}
	switch wp.Heading {
	case ModeLinear:
		if wp.StartDeg == nil || wp.EndDeg == nil {
			return Point{}, fmt.Errorf("%w: startDeg/endDeg", ErrMissingField)
		}
		pt.Heading = Linear{StartDeg: *wp.StartDeg, EndDeg: *wp.EndDeg}
	case ModeConstant:
		if wp.Degrees == nil {
			return Point{}, fmt.Errorf("%w: degrees", ErrMissingField)
		}
		pt.Heading = Constant{Degrees: *wp.Degrees}
	case ModeTangential:
		pt.Heading = Tangential{Reverse: wp.Reverse != nil && *wp.Reverse}
	case "":
		return Point{}, fmt.Errorf("%w: heading", ErrMissingField)
	default:
		return Point{}, fmt.Errorf("%w %q", ErrUnknownHeading, wp.Heading)
	}
	return pt, nil
}

// Encode writes f as an indented JSON trajectory file.
func Encode(w io.Writer, f File) error {
	wf := wireFile{
		StartPoint:  toWirePoint(f.Path.Start),
		Lines:       make([]wireLine, len(f.Path.Lines)),
		RobotWidth:  f64(f.RobotWidth),
		RobotHeight: f64(f.RobotHeight),
	}
	for i, seg := range f.Path.Lines {
		wl := wireLine{
			Name:          seg.Name,
			Color:         seg.Color,
			EndPoint:      toWirePoint(seg.End),
			ControlPoints: make([]wireBase, len(seg.Controls)),
		}
		for j, c := range seg.Controls {
			wl.ControlPoints[j] = wireBase{X: f64(c.X()), Y: f64(c.Y())}
		}
		if seg.Wait > 0 {
			wl.WaitTime = f64(seg.Wait)
		}
		wf.Lines[i] = wl
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(wf)
}

// Decode reads a trajectory file. Optional fields missing from the file keep
// the values of current. Malformed input yields an error wrapping
// ErrLoadFailed, and current is returned unchanged.
func Decode(r io.Reader, current File) (File, error) {
	var wf wireFile
	if err := json.NewDecoder(r).Decode(&wf); err != nil {
		return current, loadFailed(err)
	}
	start, err := fromWirePoint(wf.StartPoint)
	if err != nil {
		return current, loadFailed(fmt.Errorf("startPoint: %w", err))
	}
	if wf.Lines == nil {
		return current, loadFailed(fmt.Errorf("%w: lines", ErrMissingField))
	}
	f := File{
		Path:        Path{Start: start, Lines: make([]Segment, len(wf.Lines))},
		RobotWidth:  current.RobotWidth,
		RobotHeight: current.RobotHeight,
	}
	for i, wl := range wf.Lines {
		end, err := fromWirePoint(wl.EndPoint)
		if err != nil {
			return current, loadFailed(fmt.Errorf("lines[%d].endPoint: %w", i, err))
		}
		seg := Segment{Name: wl.Name, Color: wl.Color, End: end}
		for j, c := range wl.ControlPoints {
			if c.X == nil || c.Y == nil {
				return current, loadFailed(fmt.Errorf("lines[%d].controlPoints[%d]: %w: x/y", i, j, ErrMissingField))
			}
			seg.Controls = append(seg.Controls, pedro.P(*c.X, *c.Y))
		}
		if wl.WaitTime != nil {
			seg.Wait = *wl.WaitTime
		}
		f.Path.Lines[i] = seg
	}
	if err := f.Path.Validate(); err != nil {
		return current, loadFailed(err)
	}
	if wf.RobotWidth != nil {
		f.RobotWidth = *wf.RobotWidth
	}
	if wf.RobotHeight != nil {
		f.RobotHeight = *wf.RobotHeight
	}
	tracer().Infof("loaded trajectory of %d segments", f.Path.N())
	return f, nil
}

func loadFailed(err error) error {
	tracer().Errorf("trajectory file rejected: %v", err)
	return fmt.Errorf("%w: %w", ErrLoadFailed, err)
}
