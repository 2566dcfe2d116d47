package caption

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	ProfileLong    = "long"
	ProfileShort   = "short"
	ProfileClassic = "classic"

	// DefaultProfile is used when no profile is configured.
	DefaultProfile = ProfileLong
)

// Profile selects the vocabulary, templates and length bound of one caption style.
type Profile struct {
	Name       string
	Vocabulary *Vocabulary
	Templates  []Template
	MaxLength  int
	// Token, when set, stamps every candidate with a token derived from the clock.
	Token      func(time.Time) string
}

// Validate fails fast on an unusable profile.
func (p Profile) Validate() error {
	if p.Vocabulary == nil {
		return fmt.Errorf("profile %q: no vocabulary", p.Name)
	}
	if err := p.Vocabulary.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	if len(p.Templates) == 0 {
		return fmt.Errorf("profile %q: no templates", p.Name)
	}
	for i, t := range p.Templates {
		if t == nil {
			return fmt.Errorf("profile %q: template %d is nil", p.Name, i)
		}
	}
	if p.MaxLength <= 0 {
		return fmt.Errorf("profile %q: max length must be positive, got %d", p.Name, p.MaxLength)
	}
	return nil
}

// PickTemplate draws one template uniformly.
func (p Profile) PickTemplate(r Picker) Template {
	return p.Templates[r.IntN(len(p.Templates))]
}

var profiles = map[string]Profile{
	ProfileLong: {
		Name:       ProfileLong,
		Vocabulary: catVocabulary,
		Templates:  longTemplates,
		MaxLength:  260,
	},
	ProfileShort: {
		Name:       ProfileShort,
		Vocabulary: catVocabulary,
		Templates:  shortTemplates,
		MaxLength:  60,
	},
	ProfileClassic: {
		Name:       ProfileClassic,
		Vocabulary: classicVocabulary,
		Templates:  classicTemplates,
		MaxLength:  260,
		Token:      TimeToken,
	},
}

// LookupProfile returns a built-in profile by name. An empty name selects DefaultProfile.
func LookupProfile(name string) (Profile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultProfile
	}
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown caption profile %q (available: %s)", name, strings.Join(ProfileNames(), ", "))
	}
	return p, nil
}

// ProfileNames lists the built-in profiles in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
