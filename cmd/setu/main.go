package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "setu",
	Short: "Setu, an HTTP server bootstrap kit",
	Long:  "Setu composes an HTTP pipeline (router, logging, request IDs, tracing, CORS) and runs it. This CLI serves the built-in demo application.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the setu version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(versionCmd)
}
