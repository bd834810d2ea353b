/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aymanalhattami/deepseek-go-client/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var withDir bool

// promptCmd represents the prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "List available prompt templates",
	Long: `List all available prompt templates from the configured prompt directories.
This command recursively scans all prompt directories specified in the configuration and displays
the names of available .toml prompt files, including those in subdirectories.

Prompt names are displayed as relative paths from the prompt directory root.
For example, a file at ${prompt_dir}/foo/bar.toml will be displayed as "foo/bar".

If you want to see which directory each prompt comes from, use the --with-dir option.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logrus.Debugf("prompt directories: %v", cfg.PromptDirs)

		// Collect all prompt files from all directories
		var allPrompts []string
		promptMap := make(map[string]string) // prompt name -> directory path

		for _, promptDir := range cfg.PromptDirs {
			if _, err := os.Stat(promptDir); os.IsNotExist(err) {
				logrus.Debugf("prompt directory does not exist: %s", promptDir)
				continue
			}

			err := filepath.Walk(promptDir, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() {
					return nil
				}
				if !strings.HasSuffix(info.Name(), ".toml") {
					return nil
				}

				relPath, err := filepath.Rel(promptDir, path)
				if err != nil {
					logrus.Debugf("error calculating relative path for %s: %v", path, err)
					return nil
				}

				promptName := filepath.ToSlash(strings.TrimSuffix(relPath, ".toml"))
				if _, exists := promptMap[promptName]; !exists {
					promptMap[promptName] = promptDir
					allPrompts = append(allPrompts, promptName)
				}
				return nil
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error walking prompt directory %s: %v\n", promptDir, err)
				continue
			}
		}

		sort.Strings(allPrompts)

		if len(allPrompts) == 0 {
			fmt.Println("No prompt templates found.")
			fmt.Println("Create .toml files in the following directories:")
			for _, promptDir := range cfg.PromptDirs {
				fmt.Printf("  - %s\n", promptDir)
			}
			return nil
		}

		fmt.Printf("Available prompt templates (%d found):\n\n", len(allPrompts))
		for _, promptName := range allPrompts {
			if withDir {
				fmt.Printf("  %s (from %s)\n", promptName, promptMap[promptName])
			} else {
				fmt.Printf("  %s\n", promptName)
			}
		}

		fmt.Printf("\nUse a prompt template with: dsc chat --prompt <name> [message]\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().BoolVar(&withDir, "with-dir", false, "Show the directory each prompt was found in")
}
