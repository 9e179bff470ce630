package dataset

import (
	"io"
	"strings"
)

// Parse reads a source body into a Dataset.
//
// Blank lines are skipped. Rows shorter than the header are padded with empty
// strings and longer rows are cut to the header length, so every row lines up
// with Headers.
func Parse(key string, r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, loadError(key, err)
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, loadError(key, ErrEmpty)
	}

	lines := strings.Split(text, "\n")
	headers := splitLine(lines[0])
	d := &Dataset{
		Key:     key,
		Headers: headers,
		Rows:    make([][]string, 0, len(lines)-1),
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		d.Rows = append(d.Rows, align(splitLine(line), len(headers)))
	}
	return d, nil
}

func splitLine(line string) []string {
	return strings.Split(strings.TrimRight(line, "\r"), ",")
}

func align(fields []string, width int) []string {
	if len(fields) == width {
		return fields
	}
	row := make([]string, width)
	copy(row, fields)
	return row
}
