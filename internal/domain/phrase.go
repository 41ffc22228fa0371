package domain

// PhraseKey is the identity of a phrase: language plus text.
// The italic flag of a Somali phrase is not part of it.
type PhraseKey struct {
	Lang Language
	Text string
}

// Phrase is either an EnglishPhrase or a SomaliPhrase. The set of variants
// is closed; code that needs variant data switches over both.
type Phrase interface {
	Lang() Language
	Text() string
	Key() PhraseKey
	isPhrase()
}

// EnglishPhrase is a phrase on the English side of the book.
type EnglishPhrase struct {
	Phrase string
}

func (p EnglishPhrase) Lang() Language { return LanguageEnglish }
func (p EnglishPhrase) Text() string   { return p.Phrase }
func (p EnglishPhrase) Key() PhraseKey { return PhraseKey{Lang: LanguageEnglish, Text: p.Phrase} }
func (EnglishPhrase) isPhrase()        {}

// SomaliPhrase is a phrase on the Somali side of the book. Italic marks
// terms the source dictionary typesets in italics.
type SomaliPhrase struct {
	Phrase string
	Italic bool
}

func (p SomaliPhrase) Lang() Language { return LanguageSomali }
func (p SomaliPhrase) Text() string   { return p.Phrase }
func (p SomaliPhrase) Key() PhraseKey { return PhraseKey{Lang: LanguageSomali, Text: p.Phrase} }
func (SomaliPhrase) isPhrase()        {}

// IsItalic reports whether the phrase should be rendered in italics.
// English phrases never are.
func IsItalic(p Phrase) bool {
	switch p := p.(type) {
	case SomaliPhrase:
		return p.Italic
	case EnglishPhrase:
		return false
	}
	return false
}

// PhraseLink states that an English and a Somali phrase are equivalent
// for one sense. It is the unit of input to clustering.
type PhraseLink struct {
	English EnglishPhrase
	Somali  SomaliPhrase
}

// NewPhraseLink builds a link from already-cleaned text.
// Both sides must be non-empty.
func NewPhraseLink(english, somali string, italic bool) (PhraseLink, error) {
	var errs []FieldError
	if english == "" {
		errs = append(errs, FieldError{Field: "english", Message: "required"})
	}
	if somali == "" {
		errs = append(errs, FieldError{Field: "somali", Message: "required"})
	}
	if len(errs) > 0 {
		return PhraseLink{}, NewValidationErrors(errs)
	}

	return PhraseLink{
		English: EnglishPhrase{Phrase: english},
		Somali:  SomaliPhrase{Phrase: somali, Italic: italic},
	}, nil
}

// PhraseBookRecord is one entry of the finished phrase-book: a key phrase,
// its same-language synonyms and its translations.
type PhraseBookRecord struct {
	KeyPhrase     Phrase
	AltKeyPhrases []Phrase
	ValuePhrases  []Phrase
}
