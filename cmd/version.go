package cmd

import (
	"fmt"

	"github.com/rcdesign/gorcc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcc v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Column Capacity Tool")
		fmt.Println("Based on ACI 318-14 strain compatibility provisions")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
