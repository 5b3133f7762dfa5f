package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/study-tracker/internal/config"
	"github.com/Zuo-Peng/study-tracker/internal/open"
)

func configCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config, or open the config file in $EDITOR",
		Long: `Without flags, print the effective configuration (file values over defaults)
as TOML. With --edit, open the config file in $VISUAL or $EDITOR, writing the
defaults there first if it does not exist yet, and validate it afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loadErr := config.Load()
			if !edit {
				if loadErr != nil {
					return fmt.Errorf("load config: %w", loadErr)
				}
				return toml.NewEncoder(os.Stdout).Encode(cfg)
			}

			path, err := config.FilePath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if loadErr != nil {
					return fmt.Errorf("load config: %w", loadErr)
				}
				if err := cfg.Write(path); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "Wrote defaults to %s\n", path)
			}
			if err := open.File(path); err != nil {
				return err
			}

			if _, err := config.Load(); err != nil {
				return fmt.Errorf("config has problems: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Config OK.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "Open the config file in an editor")

	return cmd
}
