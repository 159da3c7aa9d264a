package progress

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/xONEIROS/swisstronik-mint-NFT-ERC721/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
)

// SpinnerProgress renders deployment stages behind a spinner.
// Everything goes to out (stderr in the CLI) so stdout carries only the result.
type SpinnerProgress struct {
	spinner *spinner.Spinner
	out     io.Writer
	stages  []stageInfo
	title   cases.Caser
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Message   string
}

// NewSpinnerProgress creates a new spinner-based progress sink writing to out
func NewSpinnerProgress(out io.Writer) *SpinnerProgress {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgress{
		spinner: s,
		out:     out,
		title:   cases.Title(language.English),
	}
}

// OnProgress handles progress events
func (r *SpinnerProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	current := r.current()
	if current == nil || current.Stage != event.Stage {
		r.completeCurrentStage()
		r.stages = append(r.stages, stageInfo{
			Stage:     event.Stage,
			StartTime: time.Now(),
			Status:    statusRunning,
		})
		current = r.current()
	}

	// An empty, non-spinning event closes the stage
	if !event.Spinner && event.Message == "" {
		r.completeCurrentStage()
	} else {
		current.Message = event.Message
	}

	if event.Spinner {
		r.spinner.Suffix = " " + r.display()
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgress) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerProgress) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

// pause stops the spinner around fn so the line is not overwritten
func (r *SpinnerProgress) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerProgress) current() *stageInfo {
	if len(r.stages) == 0 {
		return nil
	}
	return &r.stages[len(r.stages)-1]
}

// completeCurrentStage marks the current stage as completed
func (r *SpinnerProgress) completeCurrentStage() {
	if current := r.current(); current != nil && current.Status == statusRunning {
		current.EndTime = time.Now()
		current.Status = statusCompleted
	}
}

// display renders the stage trail, e.g. "✓ Resolve Artifact → ● Submit (2s) Deploying ..."
func (r *SpinnerProgress) display() string {
	parts := make([]string, 0, len(r.stages))
	for _, stage := range r.stages {
		var (
			icon       string
			stageColor *color.Color
			duration   string
		)
		switch stage.Status {
		case statusCompleted:
			icon = "✓"
			stageColor = color.New(color.FgGreen)
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		default:
			icon = "●"
			stageColor = color.New(color.FgYellow)
			duration = fmt.Sprintf(" (%s)", time.Since(stage.StartTime).Round(time.Second))
		}
		parts = append(parts, fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(r.title.String(stage.Stage)), duration))
	}

	display := strings.Join(parts, " → ")
	if current := r.current(); current != nil && current.Message != "" {
		display += " " + current.Message
	}
	return display
}

// Ensure SpinnerProgress implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgress)(nil)
