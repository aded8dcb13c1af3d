package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/quillnotes/quill/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path, err := config.Path()
			if err != nil {
				return err
			}
			cmd.Println("# " + path)
			redacted := *cfg
			if redacted.Edit.APIKey != "" {
				redacted.Edit.APIKey = "[redacted]"
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(redacted)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				cmd.Println("Config already exists: " + path)
				return nil
			}
			if err := config.Save(config.Default()); err != nil {
				return err
			}
			cmd.Println("Wrote " + path)
			return nil
		},
	})
	return cmd
}
