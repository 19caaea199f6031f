package commands

import (
	"fmt"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/database"
	"github.com/spf13/cobra"
)

// seedCmd loads the sample catalog
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample ingredients and pizzas",
	Long:  `Insert the sample ingredients and, when the catalog is empty, the sample pizzas. Running it twice is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := database.Seed(db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Catalog seeded")
		return nil
	},
}
