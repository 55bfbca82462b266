package hook

// Input is the PreToolUse record delivered on stdin
type Input struct {
	ToolName  string    `json:"tool_name"`
	ToolInput ToolInput `json:"tool_input"`
}

// ToolInput carries the shell command being executed
type ToolInput struct {
	Command string `json:"command"`
}

// Output instructs the caller to substitute the rewritten command
type Output struct {
	HookSpecificOutput SpecificOutput `json:"hookSpecificOutput"`
}

// SpecificOutput is the PreToolUse decision payload
type SpecificOutput struct {
	HookEventName      string       `json:"hookEventName"`
	PermissionDecision string       `json:"permissionDecision"`
	UpdatedInput       UpdatedInput `json:"updatedInput"`
}

// UpdatedInput holds the replacement command string
type UpdatedInput struct {
	Command string `json:"command"`
}

// NewOutput builds an allow decision carrying the rewritten command.
func NewOutput(command string) Output {
	return Output{
		HookSpecificOutput: SpecificOutput{
			HookEventName:      "PreToolUse",
			PermissionDecision: "allow",
			UpdatedInput: UpdatedInput{
				Command: command,
			},
		},
	}
}
