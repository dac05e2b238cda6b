package firemarks

import (
	"context"
	"fmt"
)

// xclipArgs requests UTF-8 text entry into the clipboard selection.
// "-loops 2" is needed because in practice something reads the clipboard as
// soon as it is updated, and xclip must stay alive until the user pastes.
var xclipArgs = []string{
	"-target", "UTF8_STRING",
	"-in",
	"-verbose",
	"-selection", "clipboard",
	"-loops", "2",
}

// copyToClipboard hands the fully buffered text to xclip on stdin.
func copyToClipboard(ctx context.Context, text string) error {
	if err := execFeed(ctx, text, "xclip", xclipArgs); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}
