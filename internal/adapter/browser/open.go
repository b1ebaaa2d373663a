package browser

import (
	"context"
	"fmt"
	"io"
	"net/url"

	clibrowser "github.com/cli/browser"
)

// Opener opens web pages in the user's default browser.
type Opener struct {
	open func(rawURL string) error
}

// NewOpener returns an Opener backed by the platform's URL handler. Output
// of the launched command is discarded because the terminal belongs to the
// TUI.
func NewOpener() *Opener {
	clibrowser.Stdout = io.Discard
	clibrowser.Stderr = io.Discard
	return &Opener{open: clibrowser.OpenURL}
}

// Open shows rawURL in the default browser. Only http and https URLs are
// accepted.
func (o *Opener) Open(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: only http and https are supported", rawURL)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := o.open(u.String()); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
