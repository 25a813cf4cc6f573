package playback_test

import (
	"fmt"
	"time"

	"github.com/BryceTieu/Pedro-Visualzier-18127/playback"
	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
)

func ExampleSession_usage() {
	path := trajectory.Begin(trajectory.At(10, 10, trajectory.Constant{})).
		LineTo(trajectory.At(50, 10, trajectory.Constant{Degrees: 90})).Wait(0.5)
	frames := playback.NewFrames(time.Unix(0, 0))
	session := playback.NewSession(path, frames, playback.DefaultConfig())
	fmt.Printf("one pass = %.0f ms\n", session.Timing().TotalMs())
	session.ScrubTo(50)
	pose := session.Pose()
	fmt.Printf("robot at %.2f%%: %.2f,%.2f @ %.0f\n", session.State().RobotPercent, pose.Pos.X(), pose.Pos.Y(), pose.Heading)
	session.Play()
	for frames.Advance(16 * time.Millisecond) {
		if session.State().WaitingUntil != nil {
			break
		}
	}
	pose = session.Pose()
	fmt.Printf("dwelling at %.2f,%.2f\n", pose.Pos.X(), pose.Pos.Y())
	session.Pause()

	// one pass = 2038 ms
	// robot at 66.25%: 40.89,10.00 @ 90
	// dwelling at 50.00,10.00
}
