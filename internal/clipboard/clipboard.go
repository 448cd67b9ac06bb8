package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// writeAll is swapped in tests so no system clipboard is touched.
var writeAll = clipboard.WriteAll

// System writes to the operating system clipboard.
type System struct{}

// WriteText copies text verbatim.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unsupported on this system")
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Func adapts a plain function to Writer.
type Func func(text string) error

// WriteText calls f.
func (f Func) WriteText(text string) error {
	return f(text)
}
