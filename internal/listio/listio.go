// Package listio reads element lists from text and writes them out again.
package listio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var UnknownFormatError = fmt.Errorf("unknown output format")

type UnknownFormatErrorWithDetails struct {
	Details string
	Format  string
}

func (e *UnknownFormatErrorWithDetails) Error() string {
	return e.Details
}

func (e *UnknownFormatErrorWithDetails) Unwrap() error {
	return UnknownFormatError
}

// ReadLines returns one element per non-blank line, with surrounding whitespace trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading elements: %w", err)
	}
	return lines, nil
}

func ParseInts(lines []string) ([]int64, error) {
	numbers := make([]int64, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("element %d (%q) is not a number: %w", i+1, line, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// Write writes items to w in the given format (text, json or yaml).
func Write[E any](w io.Writer, format string, items []E) error {
	if items == nil {
		items = []E{}
	}
	switch strings.ToLower(format) {
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, item := range items {
			if _, err := fmt.Fprintln(bw, item); err != nil {
				return err
			}
		}
		return bw.Flush()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(items)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(items); err != nil {
			return err
		}
		return encoder.Close()
	}
	return &UnknownFormatErrorWithDetails{
		Details: fmt.Sprintf("unknown output format %q, expected one of: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML),
		Format:  format,
	}
}

// ContentType is the MIME type matching format, for storing the output as an object.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	}
	return "text/plain"
}

// Extension is the file extension matching format.
func Extension(format string) string {
	switch strings.ToLower(format) {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "txt"
}
