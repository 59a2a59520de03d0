package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "phonefix",
	Short: "Admin backend for the repair shop site",
	Long: `phonefix serves the admin API for the repair shop: price-list catalog,
news, FAQ, site configuration and the product sync batch tables.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(useraddCmd)
}
