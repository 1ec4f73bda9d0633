package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"treedrag.dev/treedrag/internal/errors"
	"treedrag.dev/treedrag/internal/intent"
)

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("TREEDRAG_TEST_NO_INTERACTIVE") != "" {
		return errors.ErrInteractiveDisabled
	}
	return nil
}

// intentDescriptions explains each intent relative to the target row
var intentDescriptions = map[intent.Intent]string{
	intent.Above: "insert before the target, as its sibling",
	intent.Over:  "nest inside the target, as its last child",
	intent.Below: "insert after the target, as its sibling",
}

// IntentOptions returns the choices offered by PromptIntent
func IntentOptions() []string {
	options := make([]string, 0, len(intent.All))
	for _, in := range intent.All {
		options = append(options, in.String())
	}
	return options
}

// PromptIntent asks where the source row should land relative to the target
func PromptIntent(sourceID, targetID string) (intent.Intent, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return intent.None, err
	}

	prompt := &survey.Select{
		Message: fmt.Sprintf("Move %s where relative to %s?", sourceID, targetID),
		Options: IntentOptions(),
		Default: intent.Over.String(),
		Description: func(value string, _ int) string {
			in, err := intent.Parse(value)
			if err != nil {
				return ""
			}
			return intentDescriptions[in]
		},
	}

	var answer string
	if err := survey.AskOne(prompt, &answer); err != nil {
		return intent.None, fmt.Errorf("intent prompt: %w", err)
	}
	return intent.Parse(answer)
}
