package main

import (
	"os"

	"github.com/spf13/cobra"
)

var flagConfigDifficulty string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the rules configuration after the config file, T2048_* environment
variables and the difficulty preset have been applied.

The output is valid YAML and can be saved to ~/.t2048/configs/t2048.yaml
as a starting point.

Examples:
  t2048 config
  t2048 config --difficulty hard
  T2048_GOAL=4096 t2048 config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfigDifficulty)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
