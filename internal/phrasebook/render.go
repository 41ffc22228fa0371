package phrasebook

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/somali-phrasebook/internal/domain"
)

// RenderPhrase returns p's text, wrapped in underscores when italic.
func RenderPhrase(p domain.Phrase) string {
	if domain.IsItalic(p) {
		return "_" + p.Text() + "_"
	}
	return p.Text()
}

// RenderMatch formats a match as one line:
//
//	#<id> <key> (<alt>) (<alt>) → <value>, <value>
func RenderMatch(m Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s", m.ID, RenderPhrase(m.Record.KeyPhrase))
	for _, p := range m.Record.AltKeyPhrases {
		b.WriteString(" (" + RenderPhrase(p) + ")")
	}

	values := make([]string, len(m.Record.ValuePhrases))
	for i, p := range m.Record.ValuePhrases {
		values[i] = RenderPhrase(p)
	}
	b.WriteString(" → " + strings.Join(values, ", "))
	return b.String()
}
