package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillnotes/quill/internal/editmenu"
	"github.com/quillnotes/quill/internal/llm"
	"github.com/quillnotes/quill/internal/textedit"
)

func editCmd() *cobra.Command {
	var (
		flagVault        string
		flagFrom         int
		flagTo           int
		flagInstructions string
		flagContext      int
		flagApply        bool
	)

	cmd := &cobra.Command{
		Use:   "edit <action> <note>",
		Short: "Run an edit action on a selection and preview the change",
		Long: `Run an edit action on a byte range of a note and print a word-level
preview of the proposed change. Actions: ` + actionList() + `.

With --apply the revision is written back, unless the note changed since
the selection was read.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := editmenu.ParseAction(args[0])
			if err != nil {
				return err
			}

			cfg, v, err := openVault(flagVault)
			if err != nil {
				return err
			}

			r := textedit.Range{Start: flagFrom, End: flagTo}
			if err := r.Validate(); err != nil {
				return err
			}

			src := v.Note(args[1])
			selection, err := src.Selection(r)
			if err != nil {
				return err
			}

			req := editmenu.Request{
				Action:       action,
				Text:         selection,
				Instructions: flagInstructions,
			}
			if flagContext > 0 {
				before, after, err := src.Context(r, flagContext)
				if err != nil {
					return err
				}
				req.Context = before + "..." + after
			}

			conv := editmenu.NewConversation(llm.Config{
				APIKey:  cfg.Edit.APIKey,
				BaseURL: cfg.Edit.BaseURL,
				Model:   cfg.Edit.Model,
			})
			result, err := editmenu.Run(cmd.Context(), conv, req, editmenu.Options{
				MaxPromptTokens: cfg.Edit.MaxPromptTokens,
			})
			if err != nil {
				return err
			}

			if !result.Diff.HasChanges() {
				cmd.Println("No changes proposed.")
				return nil
			}
			if stdoutIsTerminal() {
				cmd.Println(result.Diff.RenderPretty())
			} else {
				cmd.Println(result.Diff.RenderMarkers())
			}

			if !flagApply {
				cmd.Println("\nRun again with --apply to accept.")
				return nil
			}
			if err := editmenu.Apply(src, r, result); err != nil {
				return err
			}
			cmd.Println(fmt.Sprintf("Applied to %s.", args[1]))
			return nil
		},
	}

	cmd.Flags().StringVar(&flagVault, "vault", "", "vault directory (default: configured vault)")
	cmd.Flags().IntVar(&flagFrom, "from", 0, "selection start (byte offset)")
	cmd.Flags().IntVar(&flagTo, "to", 0, "selection end (byte offset)")
	cmd.Flags().StringVar(&flagInstructions, "instructions", "", "extra guidance for the model (required for custom)")
	cmd.Flags().IntVar(&flagContext, "context", 0, "bytes of surrounding note text to send as context")
	cmd.Flags().BoolVar(&flagApply, "apply", false, "write the revision back to the note")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func actionList() string {
	var names []string
	for _, a := range editmenu.Actions() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}
