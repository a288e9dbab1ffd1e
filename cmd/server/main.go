// Package main is the entry point for the vtm-builder gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vtm-builder/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "vtm-builder",
	Short: "Vampire: The Masquerade character builder",
	Long:  `vtm-builder serves the character creation steps for Vampire: The Masquerade 5th edition over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
