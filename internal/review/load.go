package review

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingColumn is returned when the header row lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

const (
	authorColumn  = "author"
	contentColumn = "content"
)

// Load reads and parses the dataset at path.
func Load(ctx context.Context, path string) ([]Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = file.Close() }()

	reviews, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return reviews, nil
}

// Parse reads header-mapped CSV records. Rows missing a field or with short
// content are dropped without error.
func Parse(r io.Reader) ([]Review, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	authorIdx, contentIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case authorColumn:
			authorIdx = i
		case contentColumn:
			contentIdx = i
		}
	}
	if authorIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, authorColumn)
	}
	if contentIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, contentColumn)
	}

	var reviews []Review
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		author := field(record, authorIdx)
		content := field(record, contentIdx)
		if !Admit(author, content) {
			continue
		}
		reviews = append(reviews, Review{Author: author, Content: content})
	}
	return reviews, nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
