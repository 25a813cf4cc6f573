package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BryceTieu/Pedro-Visualzier-18127/footprint"
	"github.com/BryceTieu/Pedro-Visualzier-18127/playback"
	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
)

// PoseLine is one sampled frame of the simulation.
type PoseLine struct {
	Millis       int64   `json:"ms"`
	Percent      float64 `json:"percent"`
	RobotPercent float64 `json:"robotPercent"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Heading      float64 `json:"heading"`
	Segment      int     `json:"segment"`
	Waiting      bool    `json:"waiting,omitempty"`
}

// Crossing locates the first centre line crossing.
type Crossing struct {
	Segment int     `json:"segment"`
	T       float64 `json:"t"`
}

// Report is the outcome of checking and simulating a trajectory.
type Report struct {
	File         string      `json:"file"`
	Segments     int         `json:"segments"`
	RobotWidth   float64     `json:"robotWidth"`
	RobotHeight  float64     `json:"robotHeight"`
	DurationMs   float64     `json:"durationMs"`
	Crossing     *Crossing   `json:"crossing,omitempty"`
	OutOfField   []int       `json:"outOfField,omitempty"` // segments
	OffFieldArea float64     `json:"offFieldArea"`
	Collisions   [][2]string `json:"collisions,omitempty"`
	Poses        []PoseLine  `json:"poses"`
}

func load(name string, width, height float64) (trajectory.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return trajectory.File{}, err
	}
	defer f.Close()
	return trajectory.Decode(f, trajectory.File{RobotWidth: width, RobotHeight: height})
}

// Analyse loads the trajectory in file, checks its footprint and plays it
// back once.
func Analyse(file string, opts Options) (*Report, error) {
	tf, err := load(file, opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	path := &tf.Path
	robot := footprint.Robot{Length: tf.RobotHeight, Width: tf.RobotWidth}
	report := &Report{
		File:        file,
		Segments:    path.N(),
		RobotWidth:  tf.RobotWidth,
		RobotHeight: tf.RobotHeight,
		DurationMs:  playback.TimingOf(path).TotalMs() / speedOf(opts),
	}
	if fp, crossed := robot.CenterLineCrossing(path); crossed {
		report.Crossing = &Crossing{Segment: fp.Pose.Segment, T: fp.Pose.T}
	}
	sweep := robot.Sweep(path, footprint.Options{Steps: opts.Steps})
	seen := map[int]bool{}
	for _, fp := range footprint.OutOfField(sweep) {
		if !seen[fp.Pose.Segment] {
			seen[fp.Pose.Segment] = true
			report.OutOfField = append(report.OutOfField, fp.Pose.Segment)
		}
	}
	if len(report.OutOfField) > 0 {
		report.OffFieldArea = footprint.Area(footprint.Outside(footprint.Corridor(sweep)))
	}
	if len(opts.Compare) > 0 {
		if report.Collisions, err = compare(path, robot, opts); err != nil {
			return nil, err
		}
	}
	report.Poses = Simulate(path, opts)
	return report, nil
}

func speedOf(opts Options) float64 {
	if opts.Speed <= 0 {
		return 1
	}
	return opts.Speed
}

// compare replays all trajectories side by side and collects the pairs of
// robots whose footprints overlap at some instant.
func compare(path *trajectory.Path, robot footprint.Robot, opts Options) ([][2]string, error) {
	fleet := trajectory.NewFleet("main", "", path)
	names := map[string]string{fleet.Active().ID: "main"}
	for _, name := range opts.Compare {
		other, err := load(name, opts.Width, opts.Height)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		names[fleet.Add(name, "", &other.Path)] = name
	}
	var collisions [][2]string
	found := map[[2]string]bool{}
	for p := 0.0; p < 100; p += 0.5 {
		for _, ids := range robot.Collisions(fleet.PosesAt(p)) {
			pair := [2]string{names[ids[0]], names[ids[1]]}
			if !found[pair] {
				found[pair] = true
				collisions = append(collisions, pair)
			}
		}
	}
	return collisions, nil
}

// Simulate plays path once on a virtual display and samples every
// opts.Every-th frame, plus the final one.
func Simulate(path *trajectory.Path, opts Options) []PoseLine {
	frame := opts.Frame
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	every := max(opts.Every, 1)
	start := time.Unix(0, 0)
	frames := playback.NewFrames(start)
	session := playback.NewSession(path, frames, playback.Config{Speed: speedOf(opts)})
	sample := func() PoseLine {
		st, pose := session.State(), session.Pose()
		return PoseLine{
			Millis:       frames.Now().Sub(start).Milliseconds(),
			Percent:      st.Percent,
			RobotPercent: st.RobotPercent,
			X:            pose.Pos.X(),
			Y:            pose.Pos.Y(),
			Heading:      pose.Heading,
			Segment:      pose.Segment,
			Waiting:      st.WaitingUntil != nil,
		}
	}
	lines := []PoseLine{sample()}
	session.Play()
	prev := session.State().Percent
	// one pass, with some frames to spare
	frameMs := float64(frame) / float64(time.Millisecond)
	limit := int(playback.TimingOf(path).TotalMs()/speedOf(opts)/frameMs) + 10*path.N() + 10
	for n := 1; n <= limit && frames.Advance(frame); n++ {
		cur := session.State().Percent
		if cur < prev {
			session.Pause()
			break
		}
		prev = cur
		if n%every == 0 {
			lines = append(lines, sample())
		}
	}
	final := PoseLine{
		Millis:       frames.Now().Sub(start).Milliseconds(),
		Percent:      100,
		RobotPercent: 100,
	}
	end := path.Lines[path.N()-1].End
	final.X, final.Y = end.X(), end.Y()
	final.Heading = path.PoseAt(playback.RobotCap, lines[len(lines)-1].Heading).Heading
	final.Segment = path.N() - 1
	return append(lines, final)
}

// WriteText prints the report for humans.
func (r *Report) WriteText(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	printf("%s: %d segments, robot %.1f×%.1f, one pass %.2fs\n",
		r.File, r.Segments, r.RobotHeight, r.RobotWidth, r.DurationMs/1000)
	if r.Crossing != nil {
		printf("WARNING: crosses the centre line in segment %d (t=%.2f)\n", r.Crossing.Segment+1, r.Crossing.T)
	}
	for _, seg := range r.OutOfField {
		printf("WARNING: segment %d leaves the field\n", seg+1)
	}
	if r.OffFieldArea > 0 {
		printf("         area off the field: %.1f\n", r.OffFieldArea)
	}
	for _, pair := range r.Collisions {
		printf("WARNING: %s collides with %s\n", pair[0], pair[1])
	}
	printf("%8s %8s %8s %8s %8s %8s\n", "ms", "time%", "robot%", "x", "y", "heading")
	for _, p := range r.Poses {
		mark := ""
		if p.Waiting {
			mark = " (waiting)"
		}
		printf("%8d %8.3f %8.3f %8.2f %8.2f %8.2f%s\n", p.Millis, p.Percent, p.RobotPercent, p.X, p.Y, p.Heading, mark)
	}
	return err
}
