package phrasebook

import "github.com/heartmarshall/somali-phrasebook/internal/domain"

// Expand turns each bucket into one record per phrase. A record's alt keys
// are the other same-language phrases of its bucket; its values are all
// phrases of the other language. Records are grouped by bucket, in bucket
// order, and never carry nil slices.
func Expand(buckets []Bucket) []domain.PhraseBookRecord {
	total := 0
	for _, b := range buckets {
		total += b.Len()
	}

	records := make([]domain.PhraseBookRecord, 0, total)
	for _, b := range buckets {
		for _, key := range b.Phrases {
			records = append(records, expandKey(b, key))
		}
	}
	return records
}

func expandKey(b Bucket, key domain.Phrase) domain.PhraseBookRecord {
	rec := domain.PhraseBookRecord{
		KeyPhrase:     key,
		AltKeyPhrases: []domain.Phrase{},
		ValuePhrases:  []domain.Phrase{},
	}
	for _, p := range b.Phrases {
		switch {
		case p.Lang() != key.Lang():
			rec.ValuePhrases = append(rec.ValuePhrases, p)
		case p.Text() != key.Text():
			rec.AltKeyPhrases = append(rec.AltKeyPhrases, p)
		}
	}
	return rec
}
