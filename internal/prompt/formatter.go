package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Formatted is the result of applying a prompt template to an input message.
type Formatted struct {
	System      string
	User        string
	Model       *string  // model override from the template, if any
	Temperature *float64 // temperature override from the template, if any
}

// FormatMessage applies the named prompt template to the message. When
// promptName is empty the message passes through unchanged as the user
// prompt. args are extra key:value placeholder replacements; {{input}} is
// always replaced by the message.
func FormatMessage(message, promptName string, promptDirs []string, args []string) (*Formatted, error) {
	if promptName == "" {
		return &Formatted{User: message}, nil
	}

	promptFile := promptName
	if !strings.HasSuffix(promptFile, ".toml") {
		promptFile = promptFile + ".toml"
	}

	// Later directories take precedence over earlier ones.
	var promptPath string
	var found bool
	for _, promptDir := range promptDirs {
		candidatePath := filepath.Join(promptDir, promptFile)
		if _, err := os.Stat(candidatePath); err == nil {
			promptPath = candidatePath
			found = true
		}
	}

	if !found {
		return nil, fmt.Errorf("prompt file '%s' not found in any of the prompt directories: %v", promptFile, promptDirs)
	}

	promptTemplate, err := LoadPrompt(promptPath)
	if err != nil {
		return nil, fmt.Errorf("error loading prompt file: %v", err)
	}

	argMap, err := processArgs(args)
	if err != nil {
		return nil, fmt.Errorf("error processing arguments: %v", err)
	}

	replacements := make(map[string]string)
	replacements["input"] = message
	for key, value := range argMap {
		replacements[key] = value
	}

	systemPrompt := promptTemplate.System
	userPrompt := promptTemplate.User
	for key, value := range replacements {
		placeholder := fmt.Sprintf("{{%s}}", key)
		systemPrompt = strings.ReplaceAll(systemPrompt, placeholder, value)
		userPrompt = strings.ReplaceAll(userPrompt, placeholder, value)
	}

	return &Formatted{
		System:      systemPrompt,
		User:        userPrompt,
		Model:       promptTemplate.Model,
		Temperature: promptTemplate.Temperature,
	}, nil
}

// processArgs processes the command line arguments and returns a map of key-value pairs.
func processArgs(args []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if strings.HasPrefix(arg, `"`) && strings.HasSuffix(arg, `"`) {
			arg = strings.Trim(arg, `"`)
		}

		parts := strings.SplitN(arg, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid argument format: %s. Expected format: key:value", arg)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove escape characters from value
		value = strings.ReplaceAll(value, `\:`, ":")
		value = strings.ReplaceAll(value, `\"`, `"`)

		if key == "input" {
			return nil, fmt.Errorf("'input' is a reserved keyword and cannot be used as a key")
		}
		result[key] = value
	}
	return result, nil
}
