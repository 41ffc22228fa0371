package phrasejson

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/somali-phrasebook/internal/domain"
)

func sampleRecords() []domain.PhraseBookRecord {
	return []domain.PhraseBookRecord{
		{
			KeyPhrase:     domain.EnglishPhrase{Phrase: "cat"},
			AltKeyPhrases: []domain.Phrase{domain.EnglishPhrase{Phrase: "feline"}},
			ValuePhrases: []domain.Phrase{
				domain.SomaliPhrase{Phrase: "bisad", Italic: true},
				domain.SomaliPhrase{Phrase: "muraq"},
			},
		},
		{
			KeyPhrase:     domain.SomaliPhrase{Phrase: "goobo"},
			AltKeyPhrases: []domain.Phrase{},
			ValuePhrases:  []domain.Phrase{domain.EnglishPhrase{Phrase: "circle"}},
		},
	}
}

func TestEncode_WireFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecords(), false))

	want := `[` +
		`{"keyPhrase":{"lang":"english","phrase":"cat"},` +
		`"altKeyPhrases":[{"lang":"english","phrase":"feline"}],` +
		`"valuePhrases":[{"lang":"somali","phrase":"bisad","italic":true},{"lang":"somali","phrase":"muraq","italic":false}]},` +
		`{"keyPhrase":{"lang":"somali","phrase":"goobo","italic":false},` +
		`"altKeyPhrases":[],` +
		`"valuePhrases":[{"lang":"english","phrase":"circle"}]}` +
		`]` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestEncode_NilListsAsEmptyArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []domain.PhraseBookRecord{
		{KeyPhrase: domain.EnglishPhrase{Phrase: "zero"}},
	}, false))

	assert.Contains(t, buf.String(), `"altKeyPhrases":[]`)
	assert.Contains(t, buf.String(), `"valuePhrases":[]`)
}

func TestEncode_EmptyBook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, false))
	assert.Equal(t, "[]\n", buf.String())
}

func TestEncode_Indent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecords()[1:], true))
	assert.Contains(t, buf.String(), "\n  {\n")
}

func TestEncode_NoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []domain.PhraseBookRecord{
		{KeyPhrase: domain.EnglishPhrase{Phrase: "a < b & c"}},
	}, false))
	assert.Contains(t, buf.String(), `"a < b & c"`)
}

func TestEncode_NilKeyPhrase(t *testing.T) {
	err := Encode(&bytes.Buffer{}, []domain.PhraseBookRecord{{}}, false)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestDecode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecords(), true))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)
}

func TestDecode_MissingItalicIsFalse(t *testing.T) {
	in := `[{"keyPhrase":{"lang":"somali","phrase":"xagal"},"altKeyPhrases":[],"valuePhrases":[]}]`

	got, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.SomaliPhrase{Phrase: "xagal"}, got[0].KeyPhrase)
}

func TestDecode_UnknownLanguage(t *testing.T) {
	in := `[{"keyPhrase":{"lang":"french","phrase":"chat"},"altKeyPhrases":[],"valuePhrases":[]}]`

	_, err := Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrase-book.json")
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecords(), false))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSink_CanceledContextWritesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewSink(&buf, false).WriteRecords(ctx, sampleRecords())

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, buf.Len())
}
