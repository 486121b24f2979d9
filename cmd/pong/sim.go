package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagSimTicks   int
	flagSimRallies int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless CPU-vs-CPU match",
	Long: `Run the simulation without a terminal UI, with the CPU steering both
paddles. The next rally starts right after each goal. The run stops after
--ticks ticks or, when set, after --rallies goals.

The same --seed always produces the same match.

Examples:
  pong sim --seed 42
  pong sim --rallies 20 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 36000, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimRallies, "rallies", 0, "Stop after this many goals (0 = no limit)")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simReport is the outcome of a headless run.
type simReport struct {
	Seed    int64
	Ticks   int
	Score   pong.Score
	Rallies []int // Ticks per finished rally
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("%w: --ticks must be positive", config.ErrInvalidConfig)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Controls.Player1 = config.ControlCPU
	cfg.Controls.Player2 = config.ControlCPU
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	report, err := simulate(cfg, tui.SessionOptions{Config: cfg, Logger: logger, AutoResume: true}, flagSimTicks, flagSimRallies)
	if err != nil {
		return err
	}

	logger.Debug("simulation finished", "ticks", report.Ticks, "rallies", len(report.Rallies))
	printReport(cmd.OutOrStdout(), report)
	return nil
}

// simulate runs a session until maxTicks ticks or maxRallies goals.
func simulate(cfg config.PongConfig, opts tui.SessionOptions, maxTicks, maxRallies int) (simReport, error) {
	session, err := tui.NewSession(opts)
	if err != nil {
		return simReport{}, err
	}

	report := simReport{Seed: cfg.Seed}
	for report.Ticks < maxTicks {
		out := session.Tick()
		report.Ticks++

		if out.Result.Kind == pong.RallyOver {
			report.Rallies = append(report.Rallies, out.RallyTicks)
			if maxRallies > 0 && len(report.Rallies) >= maxRallies {
				break
			}
		}
	}
	report.Score = session.Score()
	return report, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// maxListedRallies caps the rally lengths printed in the report.
const maxListedRallies = 12

func printReport(w io.Writer, r simReport) {
	seed := "random"
	if r.Seed != 0 {
		seed = fmt.Sprintf("%d", r.Seed)
	}

	rows := []string{
		titleStyle.Render("Pong simulation"),
		"",
		labelStyle.Render("Seed") + seed,
		labelStyle.Render("Ticks") + fmt.Sprintf("%d", r.Ticks),
		labelStyle.Render("Score") + scoreStyle.Render(fmt.Sprintf("%d : %d", r.Score.Of(core.Player1), r.Score.Of(core.Player2))),
		labelStyle.Render("Rallies") + fmt.Sprintf("%d", len(r.Rallies)),
	}

	if len(r.Rallies) > 0 {
		longest, total := 0, 0
		lengths := make([]string, 0, len(r.Rallies))
		for i, n := range r.Rallies {
			longest = max(longest, n)
			total += n
			if i < maxListedRallies {
				lengths = append(lengths, fmt.Sprintf("%d", n))
			}
		}
		if len(r.Rallies) > maxListedRallies {
			lengths = append(lengths, "…")
		}
		rows = append(rows,
			labelStyle.Render("Average")+fmt.Sprintf("%.1f ticks", float64(total)/float64(len(r.Rallies))),
			labelStyle.Render("Longest")+fmt.Sprintf("%d ticks", longest),
			"",
			labelStyle.Render("Lengths")+strings.Join(lengths, " "),
		)
	}

	fmt.Fprintln(w, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}
