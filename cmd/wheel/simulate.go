package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/randomtoy/ideawheel/internal/adapters/feedback"
	"github.com/randomtoy/ideawheel/internal/app"
	"github.com/randomtoy/ideawheel/internal/domain"
)

var (
	simItems   int
	simSpins   int
	simWorkers int
	simSeed    uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run many spins and report the selection counts",
	Long: `Draw and resolve spins without the timed phases, split across workers,
and print how often each section won along with Pearson's chi-square
statistic against a uniform distribution.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	countStyle  = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
)

// pcgRNG adapts a seeded *rand.Rand to domain.RNG.
type pcgRNG struct {
	*rand.Rand
}

func (r pcgRNG) Intn(n int) int { return r.IntN(n) }

func runSimulate(cmd *cobra.Command, _ []string) error {
	if simItems < 1 {
		return fmt.Errorf("--items must be at least 1")
	}
	if simSpins < 1 {
		return fmt.Errorf("--spins must be at least 1")
	}
	out := cmd.OutOrStdout()
	profile, err := wheelProfile()
	if err != nil {
		return err
	}

	items := make([]domain.Item, simItems)
	for i := range items {
		items[i] = domain.Item{ID: fmt.Sprintf("item-%d", i+1), Label: fmt.Sprintf("item %d", i+1)}
	}

	newRNG := func(worker int) domain.RNG {
		return pcgRNG{rand.New(rand.NewPCG(simSeed, uint64(worker)))}
	}
	res, err := app.Simulate(cmd.Context(), items, simSpins, simWorkers, newRNG, profile.EngineConfig())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d spins over %d sections", res.Tally.Total(), len(res.Sections))))
	expected := float64(res.Tally.Total()) / float64(len(res.Sections))
	for i, s := range res.Sections {
		count := res.Tally[i]
		fmt.Fprintf(out, "%s %s  %+6.2f%%\n",
			countStyle.Render(fmt.Sprint(count)),
			feedback.Swatch(s),
			100*(float64(count)-expected)/expected,
		)
	}
	fmt.Fprintf(out, "chi-square %.3f (df %d)\n", res.ChiSquare, len(res.Sections)-1)
	return nil
}
