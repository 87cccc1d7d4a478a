// Package composite demonstrates the Composite pattern with a file-tree
// domain.
//
// Files (leaves) and directories (composites) share the Node interface, so
// client code can ask any node for its size or search beneath it without
// caring whether it is a single file or a whole subtree.
//
// Invariants maintained by this package:
//   - the tree is acyclic: adding a node under its own descendant fails;
//   - every node has at most one parent: adding an attached node fails;
//   - each node carries a denormalized path string recomputed whenever the
//     node (or an ancestor) is attached.
package composite

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAlreadyAttached is returned when adding a node that already has a
	// parent somewhere in a tree.
	ErrAlreadyAttached = errors.New("composite: node already has a parent")

	// ErrCycle is returned when an add would make a directory its own
	// descendant.
	ErrCycle = errors.New("composite: add would create a cycle")
)

// Node is the component interface shared by files and directories.
type Node interface {
	// Name returns the node's base name.
	Name() string

	// Path returns the denormalized path from the tree root, using "/" as
	// the separator. Recomputed on attach.
	Path() string

	// Size returns the node's size in bytes. For a directory this is the
	// recursive sum of its children's sizes.
	Size() int64

	// attach is called by Dir.Add to record the parent path and propagate
	// the new path prefix downward. Unexported: only this package mutates
	// tree structure.
	attach(parentPath string) error
}

// File is a leaf node with a fixed size.
type File struct {
	name string
	path string
	size int64

	attached bool
}

// NewFile creates a detached file leaf.
func NewFile(name string, size int64) *File {
	return &File{name: name, path: name, size: size}
}

func (f *File) Name() string { return f.name }
func (f *File) Path() string { return f.path }
func (f *File) Size() int64  { return f.size }

func (f *File) attach(parentPath string) error {
	if f.attached {
		return fmt.Errorf("%w: %s", ErrAlreadyAttached, f.name)
	}
	f.attached = true
	f.path = parentPath + "/" + f.name
	return nil
}

// Dir is a composite node holding an ordered list of children.
type Dir struct {
	name     string
	path     string
	children []Node

	attached bool
}

// NewDir creates a detached, empty directory.
func NewDir(name string) *Dir {
	return &Dir{name: name, path: name}
}

func (d *Dir) Name() string { return d.name }
func (d *Dir) Path() string { return d.path }

// Size returns the recursive sum of all children's sizes. An empty directory
// has size zero.
func (d *Dir) Size() int64 {
	var total int64
	for _, c := range d.children {
		total += c.Size()
	}
	return total
}

// Children returns the directory's immediate children in insertion order.
func (d *Dir) Children() []Node { return d.children }

// Add attaches child under d, enforcing the single-parent and acyclicity
// invariants and recomputing paths below the child.
func (d *Dir) Add(child Node) error {
	if child == Node(d) {
		return fmt.Errorf("%w: %s into itself", ErrCycle, d.name)
	}
	// A cycle can only form by adding one of our ancestors — but an ancestor
	// is necessarily attached already, so the single-parent check covers the
	// indirect case. The remaining direct case is adding a directory that
	// contains us.
	if sub, ok := child.(*Dir); ok && contains(sub, d) {
		return fmt.Errorf("%w: %s under %s", ErrCycle, sub.name, d.name)
	}
	if err := child.attach(d.path); err != nil {
		return err
	}
	d.children = append(d.children, child)
	return nil
}

func (d *Dir) attach(parentPath string) error {
	if d.attached {
		return fmt.Errorf("%w: %s", ErrAlreadyAttached, d.name)
	}
	d.attached = true
	d.repath(parentPath)
	return nil
}

// repath recomputes the denormalized paths of d and everything below it.
func (d *Dir) repath(parentPath string) {
	d.path = parentPath + "/" + d.name
	for _, c := range d.children {
		switch n := c.(type) {
		case *Dir:
			n.repath(d.path)
		case *File:
			n.path = d.path + "/" + n.name
		}
	}
}

// contains reports whether needle is root or any descendant of root.
func contains(root *Dir, needle Node) bool {
	if Node(root) == needle {
		return true
	}
	for _, c := range root.children {
		if c == needle {
			return true
		}
		if sub, ok := c.(*Dir); ok && contains(sub, needle) {
			return true
		}
	}
	return false
}

// Walk visits n and every node beneath it in depth-first, insertion order.
func Walk(n Node, visit func(Node)) {
	visit(n)
	if d, ok := n.(*Dir); ok {
		for _, c := range d.children {
			Walk(c, visit)
		}
	}
}

// Count returns the number of nodes under root (inclusive) matching pred.
func Count(root Node, pred func(Node) bool) int {
	total := 0
	Walk(root, func(n Node) {
		if pred(n) {
			total++
		}
	})
	return total
}

// FindByExtension returns every file at any depth under root whose name ends
// with ext (e.g. ".go"). Directories never match, whatever their name.
func FindByExtension(root Node, ext string) []*File {
	var out []*File
	Walk(root, func(n Node) {
		if f, ok := n.(*File); ok && strings.HasSuffix(f.name, ext) {
			out = append(out, f)
		}
	})
	return out
}
