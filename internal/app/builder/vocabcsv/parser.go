// Package vocabcsv parses the bilingual vocabulary CSV into phrase links.
// Pure function: reader in, domain structs out. Any malformed row fails the
// whole parse so a partial phrase-book is never produced.
//
// Quotes are read leniently: a '"' inside an unquoted field is kept as
// literal text, so `1,say "hi",dheh,N` yields the English phrase `say "hi"`.
//
// Phrase cells are cleaned with domain.CleanPhrase before use: runs of
// whitespace collapse to one space, leading and trailing space is dropped
// and the text is NFC-normalized. Identity and output text follow the
// cleaned form, so a phrase in the phrase-book can differ from its CSV cell.
package vocabcsv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/somali-phrasebook/internal/domain"
)

// Column layout of a vocabulary row. The id column is ignored.
const (
	colID = iota
	colEnglish
	colSomali
	colItalic

	minColumns
)

// DefaultItalicMarker is the flag value that marks a Somali phrase as italic.
const DefaultItalicMarker = "Y"

// Options controls parsing.
type Options struct {
	// ItalicMarker is compared verbatim with the flag column; empty means DefaultItalicMarker.
	ItalicMarker string
	// KeepHeader treats the first row as data instead of skipping it.
	KeepHeader bool
}

// RowError reports a row that could not be turned into a link.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() []error { return []error{domain.ErrMalformedInput, e.Err} }

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, opts Options) ([]domain.PhraseLink, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()

	links, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return links, nil
}

// Parse reads rows of (id, english, somali, italic) and returns one link per
// row, in input order.
func Parse(r io.Reader, opts Options) ([]domain.PhraseLink, error) {
	marker := opts.ItalicMarker
	if marker == "" {
		marker = DefaultItalicMarker
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // column count is checked per row
	reader.LazyQuotes = true

	if !opts.KeepHeader {
		if _, err := reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, fmt.Errorf("read header: %w", err)
		}
	}

	var links []domain.PhraseLink
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &RowError{Line: pe.StartLine, Err: pe.Err}
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if len(record) < minColumns {
			return nil, &RowError{
				Line: line,
				Err:  fmt.Errorf("expected at least %d columns, got %d", minColumns, len(record)),
			}
		}

		l, err := domain.NewPhraseLink(
			domain.CleanPhrase(record[colEnglish]),
			domain.CleanPhrase(record[colSomali]),
			record[colItalic] == marker,
		)
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		links = append(links, l)
	}

	return links, nil
}

// Source reads links from a CSV stream on demand.
type Source struct {
	r    io.Reader
	opts Options
}

// NewSource wraps r as a link source.
func NewSource(r io.Reader, opts Options) *Source {
	return &Source{r: r, opts: opts}
}

// Links parses the whole stream. The context is checked before reading.
func (s *Source) Links(ctx context.Context) ([]domain.PhraseLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(s.r, s.opts)
}
