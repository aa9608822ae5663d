package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ewan-klein/carneades/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "carneades",
	Short: "Carneades - structured argument evaluation under proof standards",
	Long: `Carneades evaluates formal arguments about statements to decide, for a
given audience and proof standard, whether each statement is accepted,
rejected, or undecided.

Cases are declarative YAML files: arguments with premises, assumption-
premises, and exceptions; an audience with assumed statements and argument
weights; and a proof standard per statement (scintilla, preponderance,
clear_and_convincing, beyond_reasonable_doubt).

Carneades does not determine truth. It reports which statements meet their
burden of proof for a particular audience.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Carneades.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("carneades v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.carneades/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.carneades")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CARNEADES_*
	viper.SetEnvPrefix("CARNEADES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig layers the config file over the built-in defaults. Flags are
// applied on top by the individual commands.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()
	if viper.IsSet("standards.default") {
		cfg.Standards.Default = viper.GetString("standards.default")
	}
	if viper.IsSet("standards.alpha") {
		cfg.Standards.Alpha = viper.GetFloat64("standards.alpha")
	}
	if viper.IsSet("standards.beta") {
		cfg.Standards.Beta = viper.GetFloat64("standards.beta")
	}
	if viper.IsSet("standards.gamma") {
		cfg.Standards.Gamma = viper.GetFloat64("standards.gamma")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.dir") {
		cfg.Cache.Dir = viper.GetString("cache.dir")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}
	cfg.Output.Verbose = verbose
	return cfg
}

// cacheDir resolves the report cache directory, defaulting under the
// user's home.
func cacheDir(cfg *model.Config) string {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".carneades-cache"
	}
	return home + "/.carneades/cache"
}
