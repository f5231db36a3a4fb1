package generator

import (
	"fmt"
	"strings"
)

// ScriptSpecification describes the script to generate
type ScriptSpecification struct {
	// Lang is the shell the script is written for
	Lang string
	// Instruction is the goal given by the user
	Instruction string
	// Requirements are extra constraints and evaluated contexts
	Requirements []string
}

// ChatPrompt is the pair of messages sent to the model
type ChatPrompt struct {
	System string
	User   string
}

const systemTemplate = "You are a %[1]s script generator.\n" +
	"The user gives you a description/goal for a %[1]s script and sometimes a list of extra requirements or context.\n" +
	"You respond with the %[1]s script.\n" +
	"Note that you only respond with the script, not additional explanation, no code block etc.\n" +
	"Your response must be a valid %[1]s script. So never use ''' to indicate the script start and end"

// NewChatPrompt builds the prompt for spec. Empty requirements are
// skipped; requirements that already start with "-" are not bulleted again.
func NewChatPrompt(spec ScriptSpecification) ChatPrompt {
	var user strings.Builder
	user.WriteString(spec.Instruction)

	if len(spec.Requirements) > 0 {
		user.WriteString("\n\nAdditional Requirements:\n")
		for _, req := range spec.Requirements {
			if req == "" {
				continue
			}
			user.WriteByte('\n')
			if !strings.HasPrefix(req, "-") {
				user.WriteString("- ")
			}
			user.WriteString(req)
		}
	}

	return ChatPrompt{
		System: fmt.Sprintf(systemTemplate, spec.Lang),
		User:   user.String(),
	}
}

// String renders the prompt for verbose output
func (p ChatPrompt) String() string {
	return "[System]\n" + p.System + "\n[User]\n" + p.User
}
