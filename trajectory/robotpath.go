package trajectory

import (
	"github.com/google/uuid"
)

// RobotPath is a named, independently colourable path used for comparing
// several trajectories side by side.
type RobotPath struct {
	ID      string
	Name    string
	Color   string
	Path    Path
	Visible bool
}

// NewRobotPath creates a visible robot path holding its own copy of path.
func NewRobotPath(name, color string, path *Path) RobotPath {
	return RobotPath{
		ID:      uuid.NewString(),
		Name:    name,
		Color:   color,
		Path:    path.Clone(),
		Visible: true,
	}
}

func (rp RobotPath) clone() RobotPath {
	c := rp
	c.Path = rp.Path.Clone()
	return c
}

// FleetPose is the pose of one visible robot path.
type FleetPose struct {
	ID   string
	Pose Pose
}

// Fleet is an ordered set of robot paths, one of which is active. The active
// entry mirrors the working path of the editing session; all entries own
// independent copies.
type Fleet struct {
	paths  []RobotPath
	active int
}

// NewFleet creates a fleet whose single, active entry is a copy of working.
func NewFleet(name, color string, working *Path) *Fleet {
	return &Fleet{paths: []RobotPath{NewRobotPath(name, color, working)}}
}

// Add appends a copy of path and returns its id.
func (f *Fleet) Add(name, color string, path *Path) string {
	rp := NewRobotPath(name, color, path)
	f.paths = append(f.paths, rp)
	tracer().Debugf("fleet: added path %q (%s)", name, rp.ID)
	return rp.ID
}

// Len returns the number of robot paths.
func (f *Fleet) Len() int {
	return len(f.paths)
}

func (f *Fleet) index(id string) int {
	for i, rp := range f.paths {
		if rp.ID == id {
			return i
		}
	}
	return -1
}

// Remove deletes a robot path. The last remaining path cannot be removed.
// If the active path is removed, the first path becomes active.
func (f *Fleet) Remove(id string) bool {
	i := f.index(id)
	if i < 0 || len(f.paths) == 1 {
		return false
	}
	f.paths = append(f.paths[:i], f.paths[i+1:]...)
	switch {
	case i == f.active:
		f.active = 0
	case i < f.active:
		f.active--
	}
	return true
}

// Active returns a copy of the active robot path.
func (f *Fleet) Active() RobotPath {
	return f.paths[f.active].clone()
}

// Activate makes another robot path active and returns a copy of its path,
// to become the new working path.
func (f *Fleet) Activate(id string) (Path, bool) {
	i := f.index(id)
	if i < 0 {
		return Path{}, false
	}
	f.active = i
	return f.paths[i].Path.Clone(), true
}

// SyncActive copies the working path into the active entry.
func (f *Fleet) SyncActive(working *Path) {
	f.paths[f.active].Path = working.Clone()
}

// SetVisible shows or hides a robot path.
func (f *Fleet) SetVisible(id string, visible bool) bool {
	i := f.index(id)
	if i < 0 {
		return false
	}
	f.paths[i].Visible = visible
	return true
}

// Paths returns copies of all robot paths, in order.
func (f *Fleet) Paths() []RobotPath {
	out := make([]RobotPath, len(f.paths))
	for i, rp := range f.paths {
		out[i] = rp.clone()
	}
	return out
}

// PosesAt evaluates every visible robot path at the same overall position.
func (f *Fleet) PosesAt(percent float64) []FleetPose {
	var poses []FleetPose
	for i := range f.paths {
		rp := &f.paths[i]
		if !rp.Visible || rp.Path.N() == 0 {
			continue
		}
		poses = append(poses, FleetPose{
			ID:   rp.ID,
			Pose: rp.Path.PoseAt(percent, rp.Path.StartHeading()),
		})
	}
	return poses
}
