/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aymanalhattami/deepseek-go-client/internal/config"
	"github.com/spf13/cobra"
)

// modelsCmd represents the models command
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available to the configured API key",
	Long: `List all models available to the configured API key.
Fetches the latest model information directly from the API.

Example:
  dsc models`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client, err := newClient(cfg)
		if err != nil {
			return fmt.Errorf("creating client: %w", err)
		}

		models, err := client.Models(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing models: %w", err)
		}

		if len(models) == 0 {
			fmt.Println("No models returned from API.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MODEL\tOWNED BY\tDEFAULT")
		fmt.Fprintln(w, "-----\t--------\t-------")
		for _, m := range models {
			defaultMark := ""
			if m.ID == cfg.Model {
				defaultMark = "Yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.OwnedBy, defaultMark)
		}
		w.Flush()

		fmt.Printf("\nUse a model with: dsc chat --model <model> [message]\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
