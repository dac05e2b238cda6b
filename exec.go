package firemarks

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

var execCommandContext = exec.CommandContext

// execFeed runs an external command with input on its stdin and captures
// stderr for error reporting.
func execFeed(ctx context.Context, input string, name string, args []string) error {
	cmd := execCommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(input)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errBuf.String()); msg != "" {
			return fmt.Errorf("%s: %w (%s)", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
