package cmd

import (
	"strings"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "skipselect",
	Short: "Choose a skip size for your location",
	Long: `skipselect fetches the skip hire offers available at a location and
lets you browse, filter and pick one from the terminal.

Run without arguments to open the selector for the configured postcode
and area.`,
	RunE: runStart,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.config/skipselect/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SKIPSELECT")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SKIPSELECT_CATALOG_BASE_URL for catalog.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
