package main

import (
	"fmt"
	"os"

	"byrates/internal/app"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scraper",
	Short: "Bank cash rate scraper",
	Long: `Scrapes cash exchange rates of Minsk banks and writes the bank rates
snapshot read by the byrates API.`,
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape once or on a schedule",
	RunE: func(cmd *cobra.Command, _ []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		output, _ := cmd.Flags().GetString("output")
		interval, _ := cmd.Flags().GetDuration("interval")
		once, _ := cmd.Flags().GetBool("once")

		return app.RunScraper(app.ScraperOptions{
			ConfigPath: configPath,
			Output:     output,
			Interval:   interval,
			Once:       once,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "config file path")

	runCmd.Flags().Bool("once", false, "scrape a single time and exit")
	runCmd.Flags().Duration("interval", 0, "time between scrapes (default from config, 30m)")
	runCmd.Flags().String("output", "", "snapshot file path (default from config)")

	rootCmd.AddCommand(runCmd)
}
