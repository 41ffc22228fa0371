// Package phrasejson encodes phrase-book records as the JSON array the
// viewer loads, and decodes that array back.
package phrasejson

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/heartmarshall/somali-phrasebook/internal/domain"
)

// phraseJSON is the wire form of a phrase. Italic is set only for Somali.
type phraseJSON struct {
	Lang   domain.Language `json:"lang"`
	Phrase string          `json:"phrase"`
	Italic *bool           `json:"italic,omitempty"`
}

type recordJSON struct {
	KeyPhrase     phraseJSON   `json:"keyPhrase"`
	AltKeyPhrases []phraseJSON `json:"altKeyPhrases"`
	ValuePhrases  []phraseJSON `json:"valuePhrases"`
}

// Encode writes records to w as a single JSON array followed by a newline.
func Encode(w io.Writer, records []domain.PhraseBookRecord, indent bool) error {
	out := make([]recordJSON, len(records))
	for i, r := range records {
		rec, err := toRecordJSON(r)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = rec
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode phrase-book: %w", err)
	}
	return nil
}

// Decode reads a phrase-book JSON array from r.
func Decode(r io.Reader) ([]domain.PhraseBookRecord, error) {
	var in []recordJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode phrase-book: %w", err)
	}

	records := make([]domain.PhraseBookRecord, len(in))
	for i, rj := range in {
		rec, err := fromRecordJSON(rj)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records[i] = rec
	}
	return records, nil
}

// DecodeFile opens path and decodes it with Decode.
func DecodeFile(path string) ([]domain.PhraseBookRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phrase-book: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Sink writes records to a stream.
type Sink struct {
	w      io.Writer
	indent bool
}

// NewSink wraps w as a record sink.
func NewSink(w io.Writer, indent bool) *Sink {
	return &Sink{w: w, indent: indent}
}

// WriteRecords encodes records. Nothing is written if ctx is already done.
func (s *Sink) WriteRecords(ctx context.Context, records []domain.PhraseBookRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return Encode(s.w, records, s.indent)
}

func toPhraseJSON(p domain.Phrase) (phraseJSON, error) {
	switch p := p.(type) {
	case domain.EnglishPhrase:
		return phraseJSON{Lang: domain.LanguageEnglish, Phrase: p.Phrase}, nil
	case domain.SomaliPhrase:
		italic := p.Italic
		return phraseJSON{Lang: domain.LanguageSomali, Phrase: p.Phrase, Italic: &italic}, nil
	}
	return phraseJSON{}, fmt.Errorf("%w: unsupported phrase %T", domain.ErrMalformedInput, p)
}

func fromPhraseJSON(pj phraseJSON) (domain.Phrase, error) {
	switch pj.Lang {
	case domain.LanguageEnglish:
		return domain.EnglishPhrase{Phrase: pj.Phrase}, nil
	case domain.LanguageSomali:
		return domain.SomaliPhrase{Phrase: pj.Phrase, Italic: pj.Italic != nil && *pj.Italic}, nil
	}
	return nil, fmt.Errorf("%w: unknown language %q", domain.ErrMalformedInput, pj.Lang)
}

func toRecordJSON(r domain.PhraseBookRecord) (recordJSON, error) {
	key, err := toPhraseJSON(r.KeyPhrase)
	if err != nil {
		return recordJSON{}, fmt.Errorf("keyPhrase: %w", err)
	}
	alt, err := toPhraseList(r.AltKeyPhrases)
	if err != nil {
		return recordJSON{}, fmt.Errorf("altKeyPhrases: %w", err)
	}
	val, err := toPhraseList(r.ValuePhrases)
	if err != nil {
		return recordJSON{}, fmt.Errorf("valuePhrases: %w", err)
	}
	return recordJSON{KeyPhrase: key, AltKeyPhrases: alt, ValuePhrases: val}, nil
}

func fromRecordJSON(rj recordJSON) (domain.PhraseBookRecord, error) {
	key, err := fromPhraseJSON(rj.KeyPhrase)
	if err != nil {
		return domain.PhraseBookRecord{}, fmt.Errorf("keyPhrase: %w", err)
	}
	alt, err := fromPhraseList(rj.AltKeyPhrases)
	if err != nil {
		return domain.PhraseBookRecord{}, fmt.Errorf("altKeyPhrases: %w", err)
	}
	val, err := fromPhraseList(rj.ValuePhrases)
	if err != nil {
		return domain.PhraseBookRecord{}, fmt.Errorf("valuePhrases: %w", err)
	}
	return domain.PhraseBookRecord{KeyPhrase: key, AltKeyPhrases: alt, ValuePhrases: val}, nil
}

// toPhraseList never returns nil so empty lists encode as [].
func toPhraseList(phrases []domain.Phrase) ([]phraseJSON, error) {
	out := make([]phraseJSON, len(phrases))
	for i, p := range phrases {
		pj, err := toPhraseJSON(p)
		if err != nil {
			return nil, err
		}
		out[i] = pj
	}
	return out, nil
}

func fromPhraseList(in []phraseJSON) ([]domain.Phrase, error) {
	out := make([]domain.Phrase, len(in))
	for i, pj := range in {
		p, err := fromPhraseJSON(pj)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
