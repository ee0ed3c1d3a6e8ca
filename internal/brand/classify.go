// Package brand tags places as chain or independent from their names.
package brand

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"cafe/internal/models"
)

// Normalize decomposes s (NFKD), lowercases it and drops everything that is
// not a letter or a digit. Hangul syllables decompose into conjoining jamo,
// which are letters, so Korean text survives intact in decomposed form.
func Normalize(s string) string {
	s = strings.ToLower(norm.NFKD.String(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classifier matches normalized names against a fixed brand vocabulary.
type Classifier struct {
	tokens []string
}

// NewClassifier builds a classifier over vocab. Tokens that normalize to the
// empty string are ignored.
func NewClassifier(vocab []string) *Classifier {
	c := &Classifier{tokens: make([]string, 0, len(vocab))}
	for _, v := range vocab {
		if t := Normalize(v); t != "" {
			c.tokens = append(c.tokens, t)
		}
	}
	return c
}

// Default is the classifier over Vocabulary.
var Default = NewClassifier(Vocabulary)

// Classify reports chain when any vocabulary token occurs inside the
// normalized name.
func (c *Classifier) Classify(name string) models.Brand {
	n := Normalize(name)
	if n == "" {
		return models.BrandIndependent
	}
	for _, t := range c.tokens {
		if strings.Contains(n, t) {
			return models.BrandChain
		}
	}
	return models.BrandIndependent
}

// Classify uses the default vocabulary.
func Classify(name string) models.Brand {
	return Default.Classify(name)
}

// Step tags p in place; it is used as an enrichment step.
func (c *Classifier) Step(_ context.Context, p *models.Place) error {
	p.Brand = c.Classify(p.Name)
	return nil
}
