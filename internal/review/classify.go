package review

import (
	"strings"

	"golang.org/x/text/cases"
)

// flaggedKeywords is complaint and failure vocabulary. Matching is a
// case-folded substring search, so stems like "disappoint" cover their
// inflections.
var flaggedKeywords = []string{
	"bug",
	"crash",
	"broken",
	"error",
	"fail",
	"freez",
	"refund",
	"scam",
	"slow",
	"terrible",
	"worst",
	"awful",
	"useless",
	"disappoint",
	"not working",
	"doesn't work",
	"does not work",
	"waste of",
	"problem",
	"issue",
}

// Classifier assigns a Category to reviews by keyword matching.
type Classifier struct {
	fold     cases.Caser
	keywords []string
}

// NewClassifier returns a classifier using the built-in keyword list.
func NewClassifier() *Classifier {
	return NewClassifierWith(flaggedKeywords)
}

// NewClassifierWith returns a classifier matching the given keywords.
func NewClassifierWith(keywords []string) *Classifier {
	fold := cases.Fold()
	folded := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		folded = append(folded, fold.String(kw))
	}
	return &Classifier{fold: fold, keywords: folded}
}

// Classify returns Flagged when the review content mentions any keyword.
func (c *Classifier) Classify(r Review) Category {
	content := c.fold.String(r.Content)
	for _, kw := range c.keywords {
		if strings.Contains(content, kw) {
			return Flagged
		}
	}
	return Normal
}
