/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/aymanalhattami/deepseek-go-client/deepseek"
	"github.com/aymanalhattami/deepseek-go-client/internal/config"
	promptpkg "github.com/aymanalhattami/deepseek-go-client/internal/prompt"
	"github.com/aymanalhattami/deepseek-go-client/internal/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	model       string
	temperature float64
	promptName  string
	argFlags    []string
	useEditor   bool
	sessionID   string
	newSession  bool
	sessionName string
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a message to the DeepSeek API",
	Long: `Send a message to the DeepSeek API and print the reply.

If no message is provided as an argument, it reads from stdin.
If --editor flag is set, it opens the default editor (from EDITOR environment variable) to compose the message.

Use --new-session to start a multi-turn conversation and --session to continue
one; without either flag the command performs a one-shot request.

The prompt file should be in TOML format with the following structure:
system = "System prompt with optional {{input}} placeholder"
user = "User prompt with optional {{input}} placeholder"
model = "optional-model-name"  # Optional: overrides the default model for this prompt
temperature = 1.3  # Optional: overrides the temperature for this prompt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Validate session flags
		if sessionID != "" && newSession {
			return fmt.Errorf("cannot specify both --session and --new-session")
		}
		if sessionID != "" && promptName != "" {
			return fmt.Errorf("cannot use --prompt with an existing session")
		}

		// Get message from arguments, editor, or stdin
		var message string
		if useEditor {
			message, err = getMessageFromEditor()
			if err != nil {
				return fmt.Errorf("getting message from editor: %w", err)
			}
		} else if len(args) > 0 {
			message = strings.Join(args, " ")
		} else {
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading from stdin: %w", err)
			}
			message = strings.TrimSpace(string(input))
		}

		// Apply the prompt template; without --prompt the message passes
		// through as the user prompt.
		formatted, err := promptpkg.FormatMessage(message, promptName, cfg.PromptDirs, argFlags)
		if err != nil {
			return fmt.Errorf("formatting message with prompt: %w", err)
		}

		// Overrides: flag > prompt template > config file
		if cmd.Flags().Changed("model") {
			cfg.Model = model
		} else if formatted.Model != nil {
			cfg.Model = *formatted.Model
		}
		if cmd.Flags().Changed("temperature") {
			cfg.Temperature = temperature
		} else if formatted.Temperature != nil {
			cfg.Temperature = *formatted.Temperature
		}

		// Determine session mode
		var sess *session.Session
		var isNewSession bool
		if sessionID != "" {
			sess, err = session.FindByPrefix(sessionID)
			if err != nil {
				return fmt.Errorf("finding session: %w", err)
			}
			// Sessions pin their own model and temperature.
			cfg.Model = sess.Model
			cfg.Temperature = sess.Temperature
			logrus.Debugf("continuing session %s (model %s)", sess.ShortID(), sess.Model)
		} else if newSession {
			isNewSession = true
			sess = session.NewSession(cfg.Model, cfg.Temperature)
			sess.Name = sessionName
			sess.TemplateName = promptName
			sess.SystemPrompt = formatted.System
			logrus.Debugf("creating session %s (model %s)", sess.ShortID(), sess.Model)
		}

		client, err := newClient(cfg)
		if err != nil {
			return fmt.Errorf("creating client: %w", err)
		}
		client.WithModel(cfg.Model).SetTemperature(cfg.Temperature)

		ctx := cmd.Context()
		var response string
		if sess == nil {
			// One-shot mode
			if formatted.System != "" {
				client.Query(formatted.System, deepseek.RoleSystem)
			}
			response, err = client.Query(formatted.User).Run(ctx)
			if err != nil {
				return fmt.Errorf("chat request failed: %w", err)
			}
		} else {
			// Session mode: replay history, then send the new message
			for _, msg := range sess.History() {
				client.Query(msg.Content, msg.Role)
			}
			response, err = client.Query(formatted.User).Run(ctx)
			if err != nil {
				return fmt.Errorf("chat request failed: %w", err)
			}

			sess.AddMessage(deepseek.RoleUser, formatted.User)
			sess.AddMessage(deepseek.RoleAssistant, response)
			if err := session.Save(sess); err != nil {
				return fmt.Errorf("saving session: %w", err)
			}
		}

		if result, err := client.Result(); err == nil {
			logrus.Debugf("tokens: prompt=%d completion=%d total=%d",
				result.Usage.PromptTokens, result.Usage.CompletionTokens, result.Usage.TotalTokens)
		}

		fmt.Println(response)

		if isNewSession {
			fmt.Fprintf(os.Stderr, "\nSession created: %s\n", sess.ShortID())
			fmt.Fprintf(os.Stderr, "Next time, use:\n  dsc chat -s %s \"your message\"\n", sess.ShortID())
		}

		return nil
	},
}

// getMessageFromEditor opens the default editor and returns the edited message
func getMessageFromEditor() (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return "", fmt.Errorf("EDITOR environment variable is not set")
	}

	tmpFile, err := os.CreateTemp("", "dsc-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	editorCmd := exec.Command(editor, tmpFile.Name())
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return "", fmt.Errorf("failed to open editor: %v", err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited content: %v", err)
	}

	return strings.TrimSpace(string(content)), nil
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVarP(&model, "model", "m", "", "Model to use (e.g. deepseek-chat, deepseek-reasoner)")
	chatCmd.Flags().Float64VarP(&temperature, "temperature", "t", deepseek.TemperatureGeneralConversation, "Sampling temperature")
	chatCmd.Flags().StringVarP(&promptName, "prompt", "p", "", "Name of the prompt template (without .toml extension)")
	chatCmd.Flags().StringArrayVar(&argFlags, "arg", []string{}, "Key-value pairs for prompt template (format: key:value)")
	chatCmd.Flags().BoolVarP(&useEditor, "editor", "e", false, "Use default editor (from EDITOR environment variable) to compose message")

	// Session flags
	chatCmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session ID (short or full UUID, or 'latest' for most recent session)")
	chatCmd.Flags().BoolVarP(&newSession, "new-session", "n", false, "Create a new session")
	chatCmd.Flags().StringVar(&sessionName, "session-name", "", "Name for the new session (optional)")
}
