package composite

import (
	"fmt"
	"io"
)

// Demo runs the composite demonstration: it builds a small project tree,
// prints it with sizes, and answers aggregate queries through the uniform
// Node interface.
func Demo(w io.Writer) error {
	root := NewDir("project")
	src := NewDir("src")
	docs := NewDir("docs")

	// Tree construction errors are programming mistakes in a fixed demo
	// tree, so any failure aborts the demo.
	for _, step := range []error{
		root.Add(src),
		root.Add(docs),
		src.Add(NewFile("main.go", 420)),
		src.Add(NewFile("util.go", 180)),
		docs.Add(NewFile("readme.md", 96)),
	} {
		if step != nil {
			return step
		}
	}

	Walk(root, func(n Node) {
		fmt.Fprintf(w, "%-24s %6d\n", n.Path(), n.Size())
	})

	fmt.Fprintf(w, "go files: %d\n", len(FindByExtension(root, ".go")))
	fmt.Fprintf(w, "dirs:     %d\n", Count(root, func(n Node) bool {
		_, ok := n.(*Dir)
		return ok
	}))
	return nil
}
