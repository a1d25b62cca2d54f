package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tripcheck/tripcheck/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long:  `Write a commented default configuration to ~/.tripcheck.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("config file already exists at %s, use --force to overwrite", path)
		}

		if err := os.WriteFile(path, []byte(config.DefaultTemplate()), 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		log.Info("wrote config file", "path", path)
		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}
