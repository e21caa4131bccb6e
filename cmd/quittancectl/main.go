// quittancectl is the operator CLI: migrations, demo data, batch PDF export.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "quittancectl",
		Short: "Outils d'administration de l'app quittances",
	}

	rootCmd.AddCommand(
		migrateCmd(),
		seedCmd(),
		exportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
