// Package cmd implements the wpt CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/watch-price-tracker/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "wpt",
		Short: "CLI client for Watch Price Tracker",
		Long: "wpt is a command-line client for the Watch Price Tracker API.\n" +
			"It lets you upload dealer price lists, parse single lines, query\n" +
			"stored records and inspect scheduled jobs from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.wpt.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(uploadCmd())
	rootCmd.AddCommand(uploadsCmd())
	rootCmd.AddCommand(recordsCmd())
	rootCmd.AddCommand(brandsCmd())
	rootCmd.AddCommand(jobsCmd())
	rootCmd.AddCommand(stateCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wpt")
	}

	viper.SetEnvPrefix("WPT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
