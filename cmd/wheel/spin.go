package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/randomtoy/ideawheel/internal/adapters/clock"
	"github.com/randomtoy/ideawheel/internal/adapters/feedback"
	"github.com/randomtoy/ideawheel/internal/app"
	"github.com/randomtoy/ideawheel/internal/domain"
	"github.com/randomtoy/ideawheel/internal/ports"
)

var spinFast bool

var spinCmd = &cobra.Command{
	Use:   "spin OPTION...",
	Short: "Spin once over the given options",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSpin,
}

var labelStyle = lipgloss.NewStyle().Faint(true)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int   { return rand.IntN(n) }
func (stdRNG) Float64() float64 { return rand.Float64() }

// settled forwards pulses and closes done after the success pulse, so the
// winner prints after the terminal feedback.
type settled struct {
	next ports.Feedback
	done chan struct{}
}

func (s *settled) Pulse(kind ports.PulseKind) {
	s.next.Pulse(kind)
	if kind == ports.PulseSuccess {
		close(s.done)
	}
}

func runSpin(cmd *cobra.Command, args []string) error {
	profile, err := wheelProfile()
	if err != nil {
		return err
	}
	if spinFast {
		profile = profile.Scaled(10)
	}

	items := make([]domain.Item, len(args))
	for i, label := range args {
		items[i] = domain.Item{ID: fmt.Sprintf("opt-%d", i+1), Label: label}
	}

	term := feedback.NewTerminal(cmd.OutOrStdout())
	fb := &settled{next: term, done: make(chan struct{})}
	wheel := app.NewWheel(clock.Real{}, stdRNG{}, fb, nil, profile.EngineConfig(), newLogger())
	wheel.UpdateSections(items)

	picked := make(chan domain.Item, 1)
	if err := wheel.Spin(cmd.Context(), func(it domain.Item) { picked <- it }); err != nil {
		return err
	}

	select {
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	case item := <-picked:
		<-fb.done
		for _, s := range wheel.Sections() {
			if s.Item.ID == item.ID {
				term.Println(labelStyle.Render("picked"), feedback.Swatch(s))
				return nil
			}
		}
		term.Println(item.Label)
		return nil
	}
}
