package phrasebook

import (
	"slices"
	"strings"

	"github.com/heartmarshall/somali-phrasebook/internal/domain"
)

// Query selects phrase-book records by key language and key text.
type Query struct {
	KeyLanguage domain.Language
	Search      string
}

// DefaultQuery lists every English-keyed record.
var DefaultQuery = Query{KeyLanguage: domain.LanguageEnglish}

// Match is a record selected by Search. ID is the record's position in
// the phrase-book it was taken from.
type Match struct {
	ID     int
	Record domain.PhraseBookRecord
}

// Search returns the records whose key phrase is in q.KeyLanguage and
// contains q.Search, ignoring case. Matches are sorted by key text;
// records with equal keys keep their phrase-book order.
func Search(records []domain.PhraseBookRecord, q Query) []Match {
	needle := domain.FoldForSearch(q.Search)

	matches := make([]Match, 0)
	for i, r := range records {
		if r.KeyPhrase == nil || r.KeyPhrase.Lang() != q.KeyLanguage {
			continue
		}
		if !strings.Contains(domain.FoldForSearch(r.KeyPhrase.Text()), needle) {
			continue
		}
		matches = append(matches, Match{ID: i, Record: r})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return strings.Compare(a.Record.KeyPhrase.Text(), b.Record.KeyPhrase.Text())
	})
	return matches
}
