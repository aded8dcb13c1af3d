package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillnotes/quill/internal/transcribe"
)

func transcribeCmd() *cobra.Command {
	var (
		flagVault  string
		flagTitle  string
		flagStdout bool
	)

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an audio file into a new note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audioPath := args[0]
			if err := transcribe.CheckFormat(audioPath); err != nil {
				return err
			}

			cfg, v, err := openVault(flagVault)
			if err != nil {
				return err
			}

			tr, err := transcribe.New(transcribe.Config{
				APIKey:   cfg.Edit.APIKey,
				BaseURL:  cfg.Edit.BaseURL,
				Model:    cfg.Transcribe.Model,
				Language: cfg.Transcribe.Language,
			})
			if err != nil {
				return err
			}

			result, err := tr.Transcribe(cmd.Context(), audioPath)
			if err != nil {
				return err
			}

			if flagStdout {
				cmd.Println(result.Text)
				return nil
			}

			title := flagTitle
			if title == "" {
				base := filepath.Base(audioPath)
				title = strings.TrimSuffix(base, filepath.Ext(base))
			}
			notePath, err := v.WriteTranscriptNote(title, result.Text, time.Now())
			if err != nil {
				return err
			}
			cmd.Println(fmt.Sprintf("Transcribed %s -> %s", audioPath, notePath))
			return nil
		},
	}

	cmd.Flags().StringVar(&flagVault, "vault", "", "vault directory (default: configured vault)")
	cmd.Flags().StringVar(&flagTitle, "title", "", "note title (default: audio file name)")
	cmd.Flags().BoolVar(&flagStdout, "stdout", false, "print the transcript instead of writing a note")
	return cmd
}
