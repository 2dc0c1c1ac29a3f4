// Package toml reads the TOML subset the splash config file uses:
// comments, bare and quoted keys, basic strings, integers, floats,
// booleans, arrays of scalars, and (dotted) [table] headers.
package toml

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Parse reads TOML data into nested map[string]any values.
func Parse(data []byte) (map[string]any, error) {
	root := map[string]any{}
	table := root

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(stripComment(sc.Text()))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") || strings.HasPrefix(line, "[[") {
				return nil, parseErr(lineNo, "malformed table header %q", line)
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, parseErr(lineNo, "empty table header")
			}
			sub, err := openTable(root, strings.Split(name, "."))
			if err != nil {
				return nil, parseErr(lineNo, "%s", err)
			}
			table = sub
			continue
		}

		key, rawVal, ok := strings.Cut(line, "=")
		if !ok {
			return nil, parseErr(lineNo, "expected key = value, got %q", line)
		}
		k, err := parseKey(strings.TrimSpace(key))
		if err != nil {
			return nil, parseErr(lineNo, "%s", err)
		}
		v, err := parseValue(strings.TrimSpace(rawVal))
		if err != nil {
			return nil, parseErr(lineNo, "%s", err)
		}
		if _, dup := table[k]; dup {
			return nil, parseErr(lineNo, "duplicate key %q", k)
		}
		table[k] = v
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}
	return root, nil
}

func parseErr(line int, format string, args ...any) error {
	return fmt.Errorf("toml: line %d: %s", line, fmt.Sprintf(format, args...))
}

// openTable walks (creating as needed) the nested maps for a dotted
// table path. Redefining a key that already holds a value is an error.
func openTable(root map[string]any, path []string) (map[string]any, error) {
	table := root
	for _, part := range path {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty table name component")
		}
		existing, ok := table[part]
		if !ok {
			sub := map[string]any{}
			table[part] = sub
			table = sub
			continue
		}
		sub, ok := existing.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q already holds a value", part)
		}
		table = sub
	}
	return table, nil
}

func parseKey(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty key")
	}
	if key[0] == '"' {
		return unquote(key)
	}
	for _, r := range key {
		if !isBareKeyRune(r) {
			return "", fmt.Errorf("invalid bare key %q", key)
		}
	}
	return key, nil
}

func isBareKeyRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func parseValue(raw string) (any, error) {
	if raw == "" {
		return nil, fmt.Errorf("missing value")
	}
	switch {
	case raw[0] == '"':
		return unquote(raw)
	case raw == "true":
		return true, nil
	case raw == "false":
		return false, nil
	case raw[0] == '[':
		return parseArray(raw)
	}
	if i, err := strconv.ParseInt(strings.ReplaceAll(raw, "_", ""), 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(raw, "_", ""), 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("unrecognized value %q", raw)
}

// parseArray handles single-line arrays of scalars.
func parseArray(raw string) ([]any, error) {
	if !strings.HasSuffix(raw, "]") {
		return nil, fmt.Errorf("unterminated array %q", raw)
	}
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return []any{}, nil
	}
	parts, err := splitArray(inner)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		v, err := parseValue(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// splitArray splits on commas that are not inside a quoted string.
func splitArray(inner string) ([]string, error) {
	var parts []string
	var cur strings.Builder
	inString := false
	escaped := false
	for _, r := range inner {
		switch {
		case escaped:
			escaped = false
			cur.WriteRune(r)
		case inString && r == '\\':
			escaped = true
			cur.WriteRune(r)
		case r == '"':
			inString = !inString
			cur.WriteRune(r)
		case r == ',' && !inString:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if inString {
		return nil, fmt.Errorf("unterminated string in array")
	}
	parts = append(parts, cur.String())
	return parts, nil
}

// stripComment removes a trailing # comment, respecting quoted strings.
func stripComment(line string) string {
	inString := false
	escaped := false
	for i, r := range line {
		switch {
		case escaped:
			escaped = false
		case inString && r == '\\':
			escaped = true
		case r == '"':
			inString = !inString
		case r == '#' && !inString:
			return line[:i]
		}
	}
	return line
}

// unquote reads a leading basic string and rejects trailing junk.
func unquote(raw string) (string, error) {
	end := -1
	escaped := false
	for i := 1; i < len(raw); i++ {
		switch {
		case escaped:
			escaped = false
		case raw[i] == '\\':
			escaped = true
		case raw[i] == '"':
			end = i
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return "", fmt.Errorf("unterminated string %q", raw)
	}
	if strings.TrimSpace(raw[end+1:]) != "" {
		return "", fmt.Errorf("trailing characters after string %q", raw)
	}
	s, err := strconv.Unquote(raw[:end+1])
	if err != nil {
		return "", fmt.Errorf("invalid string %q: %v", raw, err)
	}
	return s, nil
}
