// Package docs holds the user documentation, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Index is the topic listing every other one.
const Index = "readme"

// All is the pseudo topic expanding to every topic but the index.
const All = "*"

// Topic returns the markdown content of a topic.
func Topic(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates topics, expanding All.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == All {
			expanded = Names()
		}
		for _, n := range expanded {
			content, err := Topic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// Names returns the sorted names of the topics, the index excluded.
func Names() []string {
	matches, err := fs.Glob(files, "*.md")
	if err != nil {
		// the pattern is constant and valid.
		panic(err)
	}
	var names []string
	for _, m := range matches {
		name := strings.TrimSuffix(path.Base(m), ".md")
		if name != Index {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
