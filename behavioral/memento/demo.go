package memento

import (
	"fmt"
	"io"
)

// Demo runs the memento demonstration: typing with saves, a double undo, a
// redo, and a fresh edit that truncates the redo tail.
func Demo(w io.Writer) error {
	editor := NewEditor()
	history := NewHistory()

	for _, line := range []string{"Hello", ", world", "!"} {
		editor.Type(line)
		history.Push(editor.Save(fmt.Sprintf("typed %q", line)))
	}
	fmt.Fprintf(w, "buffer: %q\n", editor.Text())

	for i := 0; i < 2; i++ {
		if s, ok := history.Undo(); ok {
			editor.Restore(s)
			fmt.Fprintf(w, "undo  → %q\n", editor.Text())
		}
	}

	if s, ok := history.Redo(); ok {
		editor.Restore(s)
		fmt.Fprintf(w, "redo  → %q\n", editor.Text())
	}

	// A new edit after undo/redo discards the remaining redo tail.
	editor.Type("?")
	history.Push(editor.Save(`typed "?"`))
	if _, ok := history.Redo(); !ok {
		fmt.Fprintln(w, "redo  → nothing to redo")
	}

	fmt.Fprintf(w, "history: %d snapshots\n", history.Len())
	return nil
}
