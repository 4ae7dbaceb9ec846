package review

import (
	"strings"
	"unicode/utf8"
)

// minContentLength is the shortest content a review may carry and still be
// admitted (exclusive).
const minContentLength = 10

// Category is the heuristic classification of a review.
type Category int

const (
	Normal Category = iota
	Flagged
)

func (c Category) String() string {
	switch c {
	case Flagged:
		return "flagged"
	default:
		return "normal"
	}
}

// Review is a single admitted row of the dataset.
type Review struct {
	Author   string
	Content  string
	Category Category
}

// Admit reports whether a raw row carries enough data to be displayed.
func Admit(author, content string) bool {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)
	if author == "" || content == "" {
		return false
	}
	return utf8.RuneCountInString(content) > minContentLength
}

// Dataset is the immutable pool of reviews split by category.
type Dataset struct {
	All     []Review
	Normal  []Review
	Flagged []Review
}

// NewDataset classifies reviews and splits them into pools. When classify is
// false every review is Normal and the Flagged pool stays empty.
func NewDataset(reviews []Review, classify bool) Dataset {
	var (
		c  = NewClassifier()
		ds = Dataset{All: make([]Review, 0, len(reviews))}
	)
	for _, r := range reviews {
		r.Category = Normal
		if classify {
			r.Category = c.Classify(r)
		}
		ds.All = append(ds.All, r)
		if r.Category == Flagged {
			ds.Flagged = append(ds.Flagged, r)
			continue
		}
		ds.Normal = append(ds.Normal, r)
	}
	return ds
}

// Counts returns the total and flagged review counts.
func (d Dataset) Counts() (total, flagged int) {
	return len(d.All), len(d.Flagged)
}

// Empty reports whether the dataset holds no reviews.
func (d Dataset) Empty() bool {
	return len(d.All) == 0
}
