// Command pathsim checks and simulates robot trajectory files.
//
// It loads a trajectory, checks the robot's footprint against the field and
// the centre line, and plays the path back on a virtual display, printing
// the robot's poses. Further trajectory files are compared against the
// first one for collisions.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/pflag"
)

// Options collects the command line settings.
type Options struct {
	Frame   time.Duration
	Speed   float64
	Every   int
	Steps   int
	Width   float64
	Height  float64
	Compare []string
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pathsim [options] trajectory.pp\n\n")
		fmt.Fprintf(os.Stderr, "pathsim checks a robot trajectory and plays it back on a virtual display.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pathsim auto.pp                 # report and pose trace\n")
		fmt.Fprintf(os.Stderr, "  pathsim -j auto.pp              # report as JSON\n")
		fmt.Fprintf(os.Stderr, "  pathsim auto.pp -c partner.pp   # check for collisions with a second robot\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Print the report as JSON")
	frameFlag := pflag.DurationP("frame", "f", 16*time.Millisecond, "Interval between display frames")
	speedFlag := pflag.Float64P("speed", "s", 1, "Playback speed factor")
	everyFlag := pflag.IntP("every", "e", 10, "Print every n-th frame's pose")
	stepsFlag := pflag.Int("steps", 20, "Footprint samples per segment")
	widthFlag := pflag.Float64("width", 16, "Robot width, if not given by the file")
	heightFlag := pflag.Float64("height", 16, "Robot length front to back, if not given by the file")
	compareFlag := pflag.StringSliceP("compare", "c", nil, "Trajectory files of other robots to check for collisions")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Trace engine internals")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag || pflag.NArg() != 1 {
		pflag.Usage()
		if !*helpFlag {
			os.Exit(2)
		}
		return
	}
	level := tracing.LevelError
	if *verboseFlag {
		level = tracing.LevelDebug
	}
	for _, key := range []string{"pedro", "pedro.trajectory", "pedro.playback", "pedro.footprint"} {
		tracing.Select(key).SetTraceLevel(level)
	}

	opts := Options{
		Frame:   *frameFlag,
		Speed:   *speedFlag,
		Every:   *everyFlag,
		Steps:   *stepsFlag,
		Width:   *widthFlag,
		Height:  *heightFlag,
		Compare: *compareFlag,
	}
	report, err := Analyse(pflag.Arg(0), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *jsonFlag {
		err = writeJSON(os.Stdout, report)
	} else {
		err = report.WriteText(os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if report.Crossing != nil || len(report.OutOfField) > 0 || len(report.Collisions) > 0 {
		os.Exit(3)
	}
}

func writeJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
