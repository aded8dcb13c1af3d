// Package cli implements the quill command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quillnotes/quill/internal/config"
	"github.com/quillnotes/quill/internal/simplelogger"
	"github.com/quillnotes/quill/internal/vault"
)

// Version is the quill version. It is a var (not a const) so build tooling can
// override it via `-ldflags "-X .../internal/cli.Version=1.2.3"`.
var Version = "0.3.0"

// Run executes the quill CLI and returns the process exit code.
func Run() int {
	simplelogger.Log("quill %s: %v", Version, os.Args[1:])

	rootCmd := &cobra.Command{
		Use:           "quill [command]",
		Short:         "Note-taking companion: transcription, edit menu, writing progress",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		transcribeCmd(),
		editCmd(),
		diffCmd(),
		progressCmd(),
		configCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quill version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("quill " + Version)
		},
	}
}

// stdoutIsTerminal gates color output: pipes and redirects get plain text.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// openVault loads the config and opens the configured vault. A --vault flag
// value, when non-empty, wins over the config file.
func openVault(flagVault string) (*config.Config, *vault.Vault, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	dir := cfg.Vault
	if flagVault != "" {
		dir = flagVault
	}
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return nil, nil, err
		}
	}
	v, err := vault.New(dir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}
