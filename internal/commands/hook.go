package commands

import (
	"context"

	"github.com/genui-tools/genui/internal/hook"
)

// Hook runs the PreToolUse attribution stripper over stdin. It is wired
// into agent settings as a pre-execution hook on shell commands and must
// never fail the outer operation: malformed input is silently ignored and
// output appears only when the command was rewritten.
func (c *Controller) Hook(ctx context.Context) error {
	return hook.Run(c.stdin(), c.stdout())
}
