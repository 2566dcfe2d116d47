package caption

import (
	"fmt"
	"strings"
)

// Category names one disjoint fragment table.
type Category string

const (
	CategoryOpener   Category = "opener"
	CategoryScene    Category = "scene"
	CategoryAdverb   Category = "adverb"
	CategoryVerb     Category = "verb"
	CategoryOneLiner Category = "one_liner"
	CategoryQA       Category = "qa"
	CategoryCloser   Category = "closer"
	CategoryHashtags Category = "hashtags"
)

// Categories lists every category in sampling order.
var Categories = []Category{
	CategoryOpener,
	CategoryScene,
	CategoryAdverb,
	CategoryVerb,
	CategoryOneLiner,
	CategoryQA,
	CategoryCloser,
	CategoryHashtags,
}

// Picker returns a uniform integer in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

// Vocabulary holds the fragment tables of one profile. Tables are never mutated after construction.
type Vocabulary struct {
	Openers     []string
	Scenes      []string
	Adverbs     []string
	Verbs       []string
	OneLiners   []string
	QAs         []string
	Closers     []string
	HashtagSets [][]string
}

// Fragments returns the ordered table of a text category. Hashtag sets are exposed by HashtagSets.
func (v *Vocabulary) Fragments(c Category) []string {
	switch c {
	case CategoryOpener:
		return v.Openers
	case CategoryScene:
		return v.Scenes
	case CategoryAdverb:
		return v.Adverbs
	case CategoryVerb:
		return v.Verbs
	case CategoryOneLiner:
		return v.OneLiners
	case CategoryQA:
		return v.QAs
	case CategoryCloser:
		return v.Closers
	case CategoryHashtags:
		out := make([]string, len(v.HashtagSets))
		for i, set := range v.HashtagSets {
			out[i] = strings.Join(set, " ")
		}
		return out
	default:
		return nil
	}
}

// Pick draws one fragment of category c uniformly. A hashtag set is drawn as a unit and joined by spaces.
func (v *Vocabulary) Pick(p Picker, c Category) string {
	if c == CategoryHashtags {
		return strings.Join(v.HashtagSets[p.IntN(len(v.HashtagSets))], " ")
	}
	items := v.Fragments(c)
	return items[p.IntN(len(items))]
}

// Validate reports the first empty table. Generators refuse to start on an invalid vocabulary.
func (v *Vocabulary) Validate() error {
	for _, c := range Categories {
		if c == CategoryHashtags {
			if len(v.HashtagSets) == 0 {
				return fmt.Errorf("vocabulary: category %s is empty", c)
			}
			for i, set := range v.HashtagSets {
				if len(set) == 0 {
					return fmt.Errorf("vocabulary: hashtag set %d is empty", i)
				}
			}
			continue
		}
		items := v.Fragments(c)
		if len(items) == 0 {
			return fmt.Errorf("vocabulary: category %s is empty", c)
		}
		for i, s := range items {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("vocabulary: category %s fragment %d is blank", c, i)
			}
		}
	}
	return nil
}
