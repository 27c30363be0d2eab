package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of trendscout",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trendscout %s\n", version)
	},
}
