package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamed0406/domainwatch/internal/config"
	"github.com/hamed0406/domainwatch/internal/domain"
)

// validateCmd loads the endpoints file and reports what would be monitored,
// without sending a single probe.
var validateCmd = &cobra.Command{
	Use:          "validate <endpoints-file>",
	Short:        "Check an endpoints file without probing",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		eps, err := config.LoadEndpoints(args[0])
		if err != nil {
			return err
		}
		if len(eps) == 0 {
			fmt.Println("✔ file is valid (no endpoints configured)")
			return nil
		}
		for _, ep := range eps {
			key, _ := domain.Key(ep.URL)
			fmt.Printf("✔ %s %s %s (domain %s)\n", ep.Name, ep.Method, ep.URL, key)
		}
		fmt.Printf("✔ %d endpoint(s) valid\n", len(eps))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
