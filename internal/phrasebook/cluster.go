// Package phrasebook groups linked English/Somali phrases into buckets and
// expands the buckets into phrase-book records.
// Pure functions: links in, records out. No I/O.
package phrasebook

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/somali-phrasebook/internal/domain"
)

// bucketNamespace seeds the name-based UUIDs used as bucket IDs.
var bucketNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("somali-phrasebook/bucket"))

// Bucket is a set of phrases connected to each other by a chain of links.
// Phrases are unique by key and ordered by first appearance in the input.
type Bucket struct {
	ID      uuid.UUID
	Phrases []domain.Phrase
}

// Len returns the number of phrases in the bucket.
func (b Bucket) Len() int { return len(b.Phrases) }

// Contains reports whether the bucket holds a phrase with p's key.
func (b Bucket) Contains(p domain.Phrase) bool {
	key := p.Key()
	for _, ph := range b.Phrases {
		if ph.Key() == key {
			return true
		}
	}
	return false
}

// ItalicConflict records a Somali phrase seen again with a different italic flag.
type ItalicConflict struct {
	Text string
	Was  bool
	Seen bool
	Kept bool
}

// Option configures a Clusterer.
type Option func(*Clusterer)

// WithItalicPolicy sets how conflicting italic flags are resolved.
// Invalid policies are ignored.
func WithItalicPolicy(p domain.ItalicPolicy) Option {
	return func(c *Clusterer) {
		if p.IsValid() {
			c.policy = p
		}
	}
}

// Clusterer is an incremental union-find over phrases. Each added link
// unions the sets of its two endpoints.
//
// A Clusterer is not safe for concurrent use.
type Clusterer struct {
	policy    domain.ItalicPolicy
	index     map[domain.PhraseKey]int
	phrases   []domain.Phrase
	parent    []int
	size      []int
	conflicts []ItalicConflict
}

// NewClusterer creates an empty Clusterer. The default italic policy is
// domain.ItalicPolicyLast.
func NewClusterer(opts ...Option) *Clusterer {
	c := &Clusterer{
		policy: domain.ItalicPolicyLast,
		index:  make(map[domain.PhraseKey]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cluster runs a fresh Clusterer over links and returns the buckets.
func Cluster(links []domain.PhraseLink, opts ...Option) []Bucket {
	c := NewClusterer(opts...)
	for _, l := range links {
		c.Add(l)
	}
	return c.Buckets()
}

// Add merges the link's English and Somali phrases into one bucket,
// joining any buckets that already hold either of them.
func (c *Clusterer) Add(link domain.PhraseLink) {
	eng := c.node(link.English)
	som := c.node(link.Somali)
	c.union(eng, som)
}

// Len returns the number of distinct phrases seen so far.
func (c *Clusterer) Len() int { return len(c.phrases) }

// Conflicts returns the italic conflicts seen so far, in input order.
func (c *Clusterer) Conflicts() []ItalicConflict {
	return slices.Clone(c.conflicts)
}

// Buckets returns the current partition. Buckets are ordered by their
// earliest-seen phrase; phrases within a bucket by first appearance.
func (c *Clusterer) Buckets() []Bucket {
	var buckets []Bucket
	slot := make(map[int]int)

	for i := range c.phrases {
		root := c.find(i)
		j, ok := slot[root]
		if !ok {
			j = len(buckets)
			slot[root] = j
			buckets = append(buckets, Bucket{Phrases: make([]domain.Phrase, 0, c.size[root])})
		}
		buckets[j].Phrases = append(buckets[j].Phrases, c.phrases[i])
	}

	for i := range buckets {
		buckets[i].ID = bucketID(buckets[i].Phrases)
	}
	return buckets
}

// node returns the index of p, registering it on first sight.
func (c *Clusterer) node(p domain.Phrase) int {
	key := p.Key()
	if i, ok := c.index[key]; ok {
		c.resolveItalic(i, p)
		return i
	}

	i := len(c.phrases)
	c.index[key] = i
	c.phrases = append(c.phrases, p)
	c.parent = append(c.parent, i)
	c.size = append(c.size, 1)
	return i
}

func (c *Clusterer) resolveItalic(i int, p domain.Phrase) {
	seen, ok := p.(domain.SomaliPhrase)
	if !ok {
		return
	}
	stored := c.phrases[i].(domain.SomaliPhrase)
	if stored.Italic == seen.Italic {
		return
	}

	kept := c.policy.Resolve(stored.Italic, seen.Italic)
	c.conflicts = append(c.conflicts, ItalicConflict{
		Text: stored.Phrase,
		Was:  stored.Italic,
		Seen: seen.Italic,
		Kept: kept,
	})
	stored.Italic = kept
	c.phrases[i] = stored
}

// find returns the root of i, halving the path on the way.
func (c *Clusterer) find(i int) int {
	for c.parent[i] != i {
		c.parent[i] = c.parent[c.parent[i]]
		i = c.parent[i]
	}
	return i
}

func (c *Clusterer) union(a, b int) {
	ra, rb := c.find(a), c.find(b)
	if ra == rb {
		return
	}
	if c.size[ra] < c.size[rb] {
		ra, rb = rb, ra
	}
	c.parent[rb] = ra
	c.size[ra] += c.size[rb]
}

// bucketID derives a stable ID from the bucket's member keys, independent
// of link order.
func bucketID(phrases []domain.Phrase) uuid.UUID {
	keys := make([]string, len(phrases))
	for i, p := range phrases {
		keys[i] = p.Lang().String() + ":" + p.Text()
	}
	slices.Sort(keys)
	return uuid.NewSHA1(bucketNamespace, []byte(strings.Join(keys, "\x00")))
}
