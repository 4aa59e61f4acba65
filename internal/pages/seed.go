package pages

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"incubator/internal/prefix"
)

// ReadPageList reads one page per line. A line is either a main namespace
// title or "<namespace>\t<title>". Blank lines and '#' comments are skipped.
func ReadPageList(r io.Reader) ([]prefix.Title, error) {
	var out []prefix.Title
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		title := prefix.Title{Text: line}
		if ns, text, ok := strings.Cut(line, "\t"); ok {
			id, err := strconv.Atoi(strings.TrimSpace(ns))
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid namespace %q", n, ns)
			}
			title = prefix.Title{Namespace: id, Text: strings.TrimSpace(text)}
		}
		if title.Text == "" {
			return nil, fmt.Errorf("line %d: empty title", n)
		}
		out = append(out, title)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read page list: %w", err)
	}
	return out, nil
}

// LoadInMemoryIndex builds an in-memory index from a page list file. An
// empty path yields an empty index.
func LoadInMemoryIndex(path string) (*InMemoryIndex, error) {
	if path == "" {
		return NewInMemoryIndex(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page list: %w", err)
	}
	defer f.Close()

	titles, err := ReadPageList(f)
	if err != nil {
		return nil, err
	}
	return NewInMemoryIndex(titles...), nil
}
