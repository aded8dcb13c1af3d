package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillnotes/quill/internal/q/uni"
	"github.com/quillnotes/quill/internal/wordcount"
)

func progressCmd() *cobra.Command {
	var (
		flagVault string
		flagGoal  int
		flagWatch bool
		flagFiles bool
	)

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show today's writing progress for the tracked folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := openVault(flagVault)
			if err != nil {
				return err
			}
			dir := cfg.TrackedDir()
			if flagVault != "" {
				dir = flagVault
			}
			goal := cfg.Progress.DailyGoal
			if flagGoal > 0 {
				goal = flagGoal
			}

			tracker := wordcount.NewTracker(dir, goal)
			p, err := tracker.Progress(time.Now())
			if err != nil {
				return err
			}
			printProgress(cmd, p, flagFiles)

			if !flagWatch {
				return nil
			}
			return tracker.Watch(cmd.Context(), func(p wordcount.Progress) {
				printProgress(cmd, p, false)
			})
		},
	}

	cmd.Flags().StringVar(&flagVault, "vault", "", "folder to track (default: configured folder)")
	cmd.Flags().IntVar(&flagGoal, "goal", 0, "daily word goal (default: configured goal)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "keep running and report on every change")
	cmd.Flags().BoolVar(&flagFiles, "files", false, "list per-note word counts")
	return cmd
}

func printProgress(cmd *cobra.Command, p wordcount.Progress, files bool) {
	if files {
		for _, f := range p.Files {
			cmd.Println(fmt.Sprintf("%6d  %s", f.Words, f.Path))
		}
	}
	line := fmt.Sprintf("%d words today (%d total)", p.Written(), p.Total)
	if p.Goal > 0 {
		line = fmt.Sprintf("%s  %s %d/%d", line, progressBar(p.Fraction(), 20), p.Written(), p.Goal)
	}
	cmd.Println(line)
}

// progressBar renders fraction as a fixed-width bar, ex: "[=====>    ]".
// Width is measured in display cells so the bar stays aligned next to text
// containing wide runes.
func progressBar(fraction float64, width int) string {
	if width < 2 {
		width = 2
	}
	inner := width - 2
	filled := int(fraction * float64(inner))
	if filled > inner {
		filled = inner
	}
	var b strings.Builder
	b.WriteByte('[')
	if filled > 0 {
		b.WriteString(strings.Repeat("=", filled-1))
		if filled < inner {
			b.WriteByte('>')
		} else {
			b.WriteByte('=')
		}
	}
	b.WriteString(strings.Repeat(" ", inner-filled))
	b.WriteByte(']')

	bar := b.String()
	if uni.TextWidth(bar, nil) != width {
		// ASCII only, so widths always match; guard against future edits.
		return strings.Repeat("=", width)
	}
	return bar
}
