package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "authhub",
	Short: "authhub signs users in with EVM wallets, X and WhatsApp",
	Long: `authhub is a session-based authentication service supporting Sign-In with
Ethereum, X OAuth2 and WhatsApp one-time passwords, plus api secrets for
machine callers.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
