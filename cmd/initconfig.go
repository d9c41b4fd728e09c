package cmd

import (
	"fmt"

	"github.com/resumesmith/resumesmith/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Create a default configuration file at $HOME/.resumesmith/config.json.

Edit the file afterwards to set your Anthropic API key, or set the
ANTHROPIC_API_KEY environment variable instead. Without credentials,
generation still works via the local fallback.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	fmt.Println("Configuration file created.")
	fmt.Println("Edit it to set your Anthropic API key, then add a profile with 'resumesmith profile save'.")
	return err
}
