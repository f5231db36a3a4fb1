// Package generator turns an instruction into a script with a chat model.
//
// NewChatPrompt builds the system and user messages for a
// ScriptSpecification. OpenAIGenerator sends them to an OpenAI compatible
// chat completions endpoint and returns the script from the first choice.
package generator
