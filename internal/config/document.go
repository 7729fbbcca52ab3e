package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	includeDirective = "@include"
	maxIncludeDepth  = 16
)

// document is the parsed configuration tree, valid only for the duration of
// one load. Lookups copy scalar values out; nothing retains the tree.
type document struct {
	root map[string]any
}

// lineOrigin maps a line of the include-expanded text back to the file and
// line it came from, so syntax errors point at the right place.
type lineOrigin struct {
	path string
	line int
}

// parseDocument reads the stream into a document. Include directives of the
// form `@include "relative/path"` are resolved against the parent directory
// of path, regardless of the process working directory.
func parseDocument(r io.Reader, path string) (*document, error) {
	baseDir := filepath.Dir(path)

	var buf bytes.Buffer
	var origins []lineOrigin
	if err := expandIncludes(r, path, baseDir, 0, &buf, &origins); err != nil {
		return nil, err
	}

	var root map[string]any
	if err := toml.Unmarshal(buf.Bytes(), &root); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, _ := derr.Position()
			origin := originForLine(origins, row, path)
			return nil, &ParseError{Path: origin.path, Line: origin.line, Message: derr.Error()}
		}
		return nil, &ParseError{Path: path, Message: err.Error()}
	}
	return &document{root: root}, nil
}

func expandIncludes(r io.Reader, path, baseDir string, depth int, buf *bytes.Buffer, origins *[]lineOrigin) error {
	if depth > maxIncludeDepth {
		return &ParseError{Path: path, Message: "includes nested too deeply"}
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, includeDirective) {
			buf.WriteString(line)
			buf.WriteByte('\n')
			*origins = append(*origins, lineOrigin{path: path, line: lineNo})
			continue
		}
		target, err := parseIncludeTarget(strings.TrimPrefix(trimmed, includeDirective))
		if err != nil {
			return &ParseError{Path: path, Line: lineNo, Message: err.Error()}
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(baseDir, target)
		}
		included, err := os.Open(target)
		if err != nil {
			return &ParseError{Path: path, Line: lineNo, Message: fmt.Sprintf("cannot open include %q: %v", target, err)}
		}
		err = expandIncludes(included, target, baseDir, depth+1, buf, origins)
		included.Close()
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return &ParseError{Path: path, Message: err.Error()}
	}
	return nil
}

func parseIncludeTarget(rest string) (string, error) {
	rest = strings.TrimSpace(rest)
	target, err := strconv.Unquote(rest)
	if err != nil || target == "" {
		return "", fmt.Errorf("malformed include directive: expected %s \"path\"", includeDirective)
	}
	return target, nil
}

func originForLine(origins []lineOrigin, row int, fallback string) lineOrigin {
	if row >= 1 && row <= len(origins) {
		return origins[row-1]
	}
	return lineOrigin{path: fallback, line: row}
}

// lookup walks a dotted path through nested tables.
func (d *document) lookup(path string) (any, bool) {
	var current any = d.root
	for _, part := range strings.Split(path, ".") {
		table, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = table[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// lookupInt accepts integer literals and, by truncation, floating literals.
func (d *document) lookupInt(path string) (int, bool) {
	v, ok := d.lookup(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// lookupFloat accepts floating and integer literals.
func (d *document) lookupFloat(path string) (float64, bool) {
	v, ok := d.lookup(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func (d *document) lookupBool(path string) (bool, bool) {
	v, ok := d.lookup(path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func (d *document) lookupString(path string) (string, bool) {
	v, ok := d.lookup(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.Clone(s), true
}

// section returns the nested table at path as its own document.
func (d *document) section(path string) (*document, bool) {
	v, ok := d.lookup(path)
	if !ok {
		return nil, false
	}
	table, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return &document{root: table}, true
}

// stringList reads a key that may hold either a single string or an array of
// strings; the scalar form is a one-element list. Non-string array elements
// are skipped.
func (d *document) stringList(path string) ([]string, bool) {
	v, ok := d.lookup(path)
	if !ok {
		return nil, false
	}
	switch val := v.(type) {
	case string:
		return []string{strings.Clone(val)}, true
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, strings.Clone(s))
			}
		}
		return out, true
	}
	return nil, false
}
