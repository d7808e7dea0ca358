// Package clip wraps system clipboard access for clipboard mode and
// for copying extracted code.
package clip

import (
	"strings"

	"github.com/atotto/clipboard"

	"coderead/internal/errors"
)

// Read returns the clipboard's text content. An unreadable or blank
// clipboard is a CLIPBOARD_EMPTY error.
func Read() (string, error) {
	content, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.New(errors.ClipboardEmpty, "cannot read clipboard", err)
	}
	if strings.TrimSpace(content) == "" {
		return "", errors.New(errors.ClipboardEmpty, "clipboard is empty", nil)
	}
	return content, nil
}

// Write places text on the clipboard. Failure is non-fatal for every
// caller, so it surfaces as a plain error to log and move on.
func Write(text string) error {
	return clipboard.WriteAll(text)
}
