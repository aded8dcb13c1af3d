package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quillnotes/quill/internal/notediff"
	"github.com/quillnotes/quill/internal/worddiff"
)

func diffCmd() *cobra.Command {
	var flagWords bool

	cmd := &cobra.Command{
		Use:   "diff <old-note> <new-note>",
		Short: "Compare two note revisions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldData, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			newData, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			if flagWords {
				diff := worddiff.Compute(string(oldData), string(newData))
				if !diff.HasChanges() {
					return nil
				}
				if stdoutIsTerminal() {
					cmd.Println(diff.RenderPretty())
				} else {
					cmd.Println(diff.RenderMarkers())
				}
				return nil
			}

			diff := notediff.DiffLines(string(oldData), string(newData))
			if !diff.HasChanges() {
				return nil
			}
			cmd.Println(diff.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagWords, "words", false, "diff word by word instead of line by line")
	return cmd
}
