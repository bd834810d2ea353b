/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aymanalhattami/deepseek-go-client/internal/config"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dsc",
	Short: "A CLI for the DeepSeek chat completion API",
	Long: `dsc is a command-line client for the DeepSeek chat completion API.
It sends one-shot messages or multi-turn session conversations, and can apply
TOML prompt templates.
You can configure the tool using a TOML configuration file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger, initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dsc/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initLogger configures the logger from the verbose flag.
func initLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A .env file in the working directory can supply DEEPSEEK_API_KEY.
	_ = godotenv.Load()

	viper.SetEnvPrefix("DSC")
	viper.AutomaticEnv()

	// Determine config directory for user config
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	userConfigDir := filepath.Join(home, ".config", "dsc")

	// Later directories in the array take precedence over earlier ones.
	defaultPromptDirs := []string{
		"/usr/share/dsc/prompts",
		"/usr/local/share/dsc/prompts",
		filepath.Join(userConfigDir, "prompts"),
	}
	defaultConfig := config.NewDefaultConfig(filepath.Join(userConfigDir, "prompts"))

	viper.SetDefault("base_url", defaultConfig.BaseURL)
	viper.SetDefault("token", defaultConfig.Token)
	viper.SetDefault("model", defaultConfig.Model)
	viper.SetDefault("timeout_seconds", defaultConfig.TimeoutSeconds)
	viper.SetDefault("temperature", defaultConfig.Temperature)
	viper.SetDefault("prompt_dirs", defaultPromptDirs)
	viper.SetDefault("session_retention_days", defaultConfig.SessionRetentionDays)

	// Bind environment variables
	viper.BindEnv("base_url", "DSC_BASE_URL")
	viper.BindEnv("token", "DSC_TOKEN", "DEEPSEEK_API_KEY")
	viper.BindEnv("model", "DSC_MODEL")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	} else {
		// Load system-wide config first (lower priority)
		systemConfigPaths := []string{
			"/etc/dsc",
			"/usr/local/etc/dsc",
		}

		for _, path := range systemConfigPaths {
			viper.AddConfigPath(path)
		}
		viper.SetConfigType("toml")
		viper.SetConfigName("config")

		systemConfigLoaded := false
		if err := viper.ReadInConfig(); err == nil {
			systemConfigLoaded = true
			logrus.Debugf("loaded system-wide config: %s", viper.ConfigFileUsed())
		}

		// Load user config (higher priority) - merge with system config
		viper.AddConfigPath(userConfigDir)
		if systemConfigLoaded {
			if err := viper.MergeInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					fmt.Fprintf(os.Stderr, "Error merging user config file: %v\n", err)
				}
			} else {
				logrus.Debugf("merged user config: %s", viper.ConfigFileUsed())
			}
		} else {
			if err := viper.ReadInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				}
			}
		}
	}

	logrus.Debugf("using config file: %s", viper.ConfigFileUsed())
}
