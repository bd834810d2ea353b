package cmd

import (
	"fmt"
	"strings"

	"github.com/aymanalhattami/deepseek-go-client/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: configfile, base_url, token, model, timeout_seconds, temperature, promptdirs, session_retention_days

Examples:
  dsc config             # Show all configuration
  dsc config model       # Show only model
  dsc config base_url    # Show only base URL
  dsc config token       # Show only the (masked) token`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if len(args) > 0 {
			field := strings.ToLower(args[0])
			switch field {
			case "configfile":
				fmt.Println(viper.ConfigFileUsed())
			case "base_url", "baseurl":
				fmt.Println(cfg.GetBaseURL())
			case "token":
				fmt.Println(maskToken(cfg.Token))
			case "model":
				fmt.Println(cfg.Model)
			case "timeout_seconds", "timeout":
				fmt.Println(cfg.TimeoutSeconds)
			case "temperature":
				fmt.Println(cfg.Temperature)
			case "promptdirs", "prompt_dirs":
				fmt.Println(strings.Join(cfg.PromptDirs, ","))
			case "session_retention_days":
				fmt.Println(cfg.SessionRetentionDays)
			default:
				return fmt.Errorf("unknown field: %s", args[0])
			}
			return nil
		}

		fmt.Printf("ConfigFile: %s\n", viper.ConfigFileUsed())
		fmt.Printf("BaseURL: %s\n", cfg.GetBaseURL())
		fmt.Printf("Token: %s\n", maskToken(cfg.Token))
		fmt.Printf("Model: %s\n", cfg.Model)
		fmt.Printf("TimeoutSeconds: %d\n", cfg.TimeoutSeconds)
		fmt.Printf("Temperature: %g\n", cfg.Temperature)
		fmt.Printf("PromptDirectories: %s\n", strings.Join(cfg.PromptDirs, ","))
		fmt.Printf("SessionRetentionDays: %d\n", cfg.SessionRetentionDays)
		return nil
	},
}

// maskToken returns a masked version of the token for security
func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
}
