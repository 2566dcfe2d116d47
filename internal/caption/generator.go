package caption

import (
	"math/rand/v2"
	"time"
	"unicode/utf8"

	"cat-poster/internal/logger"
)

const (
	// DefaultMaxAttempts bounds ordinary generation before the fallback is used.
	DefaultMaxAttempts = 40
)

// History is the set of captions that must not be emitted again.
type History interface {
	Contains(caption string) bool
	Add(caption string)
}

// Generator produces captions that are not present in a History.
// It holds no history itself; callers own loading and saving it.
type Generator struct {
	profile          Profile
	maxLength        int
	maxAttempts      int
	fallbackAttempts int
	hashtags         *string
	rng              Picker
	now              func() time.Time
	log              *logger.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxLength overrides the profile length bound. Zero or negative keeps the profile value.
func WithMaxLength(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxLength = n
		}
	}
}

// WithMaxAttempts sets the ordinary attempt budget. Zero sends every call straight to the fallback.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.maxAttempts = n
		}
	}
}

// WithFallbackAttempts makes the fallback consult history up to n times before accepting a candidate.
// The default of zero accepts the first fallback unchecked.
func WithFallbackAttempts(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.fallbackAttempts = n
		}
	}
}

// WithHashtags replaces the sampled hashtag sets with a fixed suffix. An empty suffix disables hashtags.
func WithHashtags(suffix string) Option {
	return func(g *Generator) {
		g.hashtags = &suffix
	}
}

// WithRand sets the random source.
func WithRand(r Picker) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithClock sets the time source used by time tokens.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGenerator validates the profile and returns a generator for it.
func NewGenerator(p Profile, opts ...Option) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		profile:     p,
		maxLength:   p.MaxLength,
		maxAttempts: DefaultMaxAttempts,
		rng:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
		now:         time.Now,
		log:         logger.GetDefault(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Profile returns the profile the generator was built with.
func (g *Generator) Profile() Profile { return g.profile }

// MaxLength returns the effective length bound in runes.
func (g *Generator) MaxLength() int { return g.maxLength }

// Generate returns a caption not present in h and records it there.
// When the attempt budget runs out it returns a timestamped fallback, which is
// recorded without a membership check unless fallback attempts are configured.
func (g *Generator) Generate(h History) string {
	for i := 0; i < g.maxAttempts; i++ {
		c := g.candidate()
		if utf8.RuneCountInString(c) > g.maxLength {
			continue
		}
		if h.Contains(c) {
			continue
		}
		h.Add(c)
		return c
	}

	c := g.fallback()
	for i := 0; i < g.fallbackAttempts && h.Contains(c); i++ {
		c = g.fallback()
	}
	g.log.WithFields(logger.Fields{
		logger.FieldProfile: g.profile.Name,
		logger.FieldAttempt: g.maxAttempts,
	}).Warnf("caption attempts exhausted, using fallback %q", c)
	h.Add(c)
	return c
}

// candidate samples one template and one fragment per category and normalizes the result.
func (g *Generator) candidate() string {
	tmpl := g.profile.PickTemplate(g.rng)
	return Normalize(tmpl(g.assign()))
}

func (g *Generator) assign() Assignment {
	v := g.profile.Vocabulary
	a := Assignment{
		Opener:   v.Pick(g.rng, CategoryOpener),
		Scene:    v.Pick(g.rng, CategoryScene),
		Adverb:   v.Pick(g.rng, CategoryAdverb),
		Verb:     v.Pick(g.rng, CategoryVerb),
		OneLiner: v.Pick(g.rng, CategoryOneLiner),
		QA:       v.Pick(g.rng, CategoryQA),
		Closer:   v.Pick(g.rng, CategoryCloser),
		Hashtags: v.Pick(g.rng, CategoryHashtags),
	}
	if g.hashtags != nil {
		a.Hashtags = *g.hashtags
	}
	if g.profile.Token != nil {
		a.Token = g.profile.Token(g.now())
	}
	return a
}

// fallback builds "opener。one-liner (timestamp) tags", shedding tags and then
// body text until it fits the length bound. The timestamp is always kept.
func (g *Generator) fallback() string {
	v := g.profile.Vocabulary
	body := v.Pick(g.rng, CategoryOpener) + "。" + v.Pick(g.rng, CategoryOneLiner)
	tags := v.Pick(g.rng, CategoryHashtags)
	if g.hashtags != nil {
		tags = *g.hashtags
	}
	stamp := TimeToken(g.now())

	if c := Normalize(body + " " + stamp + " " + tags); utf8.RuneCountInString(c) <= g.maxLength {
		return c
	}
	if c := Normalize(body + " " + stamp); utf8.RuneCountInString(c) <= g.maxLength {
		return c
	}

	room := g.maxLength - utf8.RuneCountInString(stamp) - 1
	if room <= 0 {
		return truncateRunes(stamp, g.maxLength)
	}
	return Normalize(truncateRunes(Normalize(body), room) + " " + stamp)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
