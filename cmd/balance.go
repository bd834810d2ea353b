package cmd

import (
	"fmt"

	"github.com/aymanalhattami/deepseek-go-client/internal/config"
	"github.com/spf13/cobra"
)

// balanceCmd represents the balance command
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the account balance for the configured API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client, err := newClient(cfg)
		if err != nil {
			return fmt.Errorf("creating client: %w", err)
		}

		balance, err := client.Balance(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetching balance: %w", err)
		}

		available := "no"
		if balance.IsAvailable {
			available = "yes"
		}
		fmt.Printf("Available: %s\n", available)

		for _, b := range balance.BalanceInfos {
			fmt.Printf("%s: total %s (granted %s, topped up %s)\n",
				b.Currency, b.TotalBalance, b.GrantedBalance, b.ToppedUpBalance)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
