package utils

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FileNode represents a node in the file tree.
type FileNode struct {
	Name     string
	Path     string // path as passed to BuildFileTree, only set on file nodes
	IsFile   bool
	Children map[string]*FileNode
}

// addChild adds (or retrieves) a child node.
func (n *FileNode) addChild(name string, isFile bool) *FileNode {
	if n.Children == nil {
		n.Children = make(map[string]*FileNode)
	}
	if child, ok := n.Children[name]; ok {
		return child
	}
	child := &FileNode{Name: name, IsFile: isFile}
	n.Children[name] = child
	return child
}

// BuildFileTree builds a tree structure from a slice of slash or OS
// separated file paths.
func BuildFileTree(paths []string) *FileNode {
	root := &FileNode{Children: make(map[string]*FileNode)}
	for _, fullPath := range paths {
		parts := strings.Split(strings.Trim(filepath.ToSlash(fullPath), "/"), "/")
		current := root
		for i, part := range parts {
			isFile := i == len(parts)-1
			child := current.addChild(part, isFile)
			if isFile {
				child.Path = fullPath
			}
			current = child
		}
	}
	return root
}

// MarkFunc returns a suffix appended to a file's line, e.g. " (exists)".
type MarkFunc func(path string) string

// RenderFileTree renders the tree with branch characters. The root node is
// not printed; mark may be nil.
func RenderFileTree(root *FileNode, mark MarkFunc) string {
	var b strings.Builder
	renderChildren(&b, root, "", mark)
	return b.String()
}

func renderChildren(b *strings.Builder, node *FileNode, prefix string, mark MarkFunc) {
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		child := node.Children[name]
		isLast := i == len(names)-1

		branch, nextPrefix := "┣", prefix+"┃  "
		if isLast {
			branch, nextPrefix = "┗", prefix+"   "
		}
		icon := "📜"
		if !child.IsFile {
			icon = "📂"
		}
		suffix := ""
		if child.IsFile && mark != nil {
			suffix = mark(child.Path)
		}
		fmt.Fprintf(b, "%s%s %s %s%s\n", prefix, branch, icon, child.Name, suffix)

		renderChildren(b, child, nextPrefix, mark)
	}
}
