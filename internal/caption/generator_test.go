package caption

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cat-poster/internal/history"
)

// seqPicker replays a fixed index sequence, wrapping around.
type seqPicker struct {
	vals []int
	i    int
}

func (p *seqPicker) IntN(n int) int {
	if len(p.vals) == 0 {
		return 0
	}
	v := p.vals[p.i%len(p.vals)] % n
	p.i++
	return v
}

func seeded(seed uint64) Picker {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func fixedClock(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[i%len(ts)]
		i++
		return t
	}
}

// tinyProfile has exactly one possible ordinary caption.
func tinyProfile() Profile {
	return Profile{
		Name: "tiny",
		Vocabulary: &Vocabulary{
			Openers:     []string{"本日の看板猫をお届け"},
			Scenes:      []string{"窓辺"},
			Adverbs:     []string{"静かに"},
			Verbs:       []string{"丸まる"},
			OneLiners:   []string{"今日は勝ち。"},
			QAs:         []string{"問：猫は正義？ 答：つよい。"},
			Closers:     []string{"どうぞ受け取って。"},
			HashtagSets: [][]string{{"#TheCatAPI"}},
		},
		Templates: []Template{
			func(a Assignment) string { return a.Scene + "で" + a.Verb + "。" + a.Hashtags },
		},
		MaxLength: 260,
	}
}

func TestGenerate_ExampleScenario(t *testing.T) {
	p, err := LookupProfile(ProfileLong)
	require.NoError(t, err)
	g, err := NewGenerator(p, WithRand(&seqPicker{vals: []int{0}}))
	require.NoError(t, err)

	store := history.NewStore()
	got := g.Generate(store)

	assert.Equal(t, "休憩のお供に、猫を一匙 — 窓辺でしれっと見守る。可愛いの暴力。 #TheCatAPI #猫", got)
	assert.True(t, store.Contains(got))
	assert.Equal(t, 1, store.Len())
}

func TestGenerate_SkipsUsedCaptions(t *testing.T) {
	p, err := LookupProfile(ProfileLong)
	require.NoError(t, err)
	used := "休憩のお供に、猫を一匙 — 窓辺でしれっと見守る。可愛いの暴力。 #TheCatAPI #猫"
	store := history.NewStore(used)

	// one template pick plus eight fragment picks per attempt: the first attempt
	// reproduces the used caption, the second switches to template 4.
	picks := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0}
	g, err := NewGenerator(p, WithRand(&seqPicker{vals: picks}))
	require.NoError(t, err)

	got := g.Generate(store)
	assert.Equal(t, "休憩のお供に、猫を一匙。可愛いの暴力。 #TheCatAPI #猫", got)
	assert.Equal(t, 2, store.Len())
}

func TestGenerate_UniqueUnderLoad(t *testing.T) {
	for _, name := range ProfileNames() {
		t.Run(name, func(t *testing.T) {
			p, err := LookupProfile(name)
			require.NoError(t, err)
			g, err := NewGenerator(p, WithRand(seeded(42)))
			require.NoError(t, err)

			store := history.NewStore()
			seen := make(map[string]struct{})
			for i := 0; i < 150; i++ {
				c := g.Generate(store)
				_, dup := seen[c]
				require.False(t, dup, "duplicate caption at call %d: %q", i, c)
				seen[c] = struct{}{}
				assert.LessOrEqual(t, utf8.RuneCountInString(c), p.MaxLength)
			}
			assert.Equal(t, 150, store.Len())
		})
	}
}

func TestGenerate_ClassicCarriesTimeToken(t *testing.T) {
	p, err := LookupProfile(ProfileClassic)
	require.NoError(t, err)
	ts := time.Date(2025, 8, 1, 9, 30, 0, 123e6, time.UTC)
	g, err := NewGenerator(p, WithRand(seeded(5)), WithClock(fixedClock(ts)))
	require.NoError(t, err)

	store := history.NewStore()
	for i := 0; i < 50; i++ {
		c := g.Generate(store)
		assert.Contains(t, c, "(2025-08-01T09:30:00.123)", "call %d", i)
	}
}

func TestGenerate_OtherProfilesHaveNoTimeToken(t *testing.T) {
	for _, name := range []string{ProfileLong, ProfileShort} {
		p, err := LookupProfile(name)
		require.NoError(t, err)
		g, err := NewGenerator(p, WithRand(seeded(5)), WithClock(fixedClock(time.Date(2025, 8, 1, 9, 30, 0, 123e6, time.UTC))))
		require.NoError(t, err)
		assert.NotContains(t, g.Generate(history.NewStore()), "2025-08-01", name)
	}
}

func TestGenerate_BoundedLength(t *testing.T) {
	p, err := LookupProfile(ProfileLong)
	require.NoError(t, err)
	g, err := NewGenerator(p, WithRand(seeded(7)), WithMaxLength(40), WithClock(fixedClock(time.Date(2025, 8, 1, 9, 30, 0, 123e6, time.UTC))))
	require.NoError(t, err)

	store := history.NewStore()
	for i := 0; i < 100; i++ {
		c := g.Generate(store)
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 40, "caption too long: %q", c)
	}
}

func TestGenerate_FallbackWhenExhausted(t *testing.T) {
	p := tinyProfile()
	only := "窓辺で丸まる。#TheCatAPI"
	t1 := time.Date(2025, 8, 1, 9, 30, 0, 123e6, time.UTC)
	t2 := t1.Add(time.Millisecond)

	store := history.NewStore(only)
	g, err := NewGenerator(p, WithMaxAttempts(5), WithClock(fixedClock(t1, t2)))
	require.NoError(t, err)

	first := g.Generate(store)
	second := g.Generate(store)

	assert.NotEqual(t, only, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, "本日の看板猫をお届け。今日は勝ち。 (2025-08-01T09:30:00.123) #TheCatAPI", first)
	assert.Contains(t, second, "(2025-08-01T09:30:00.124)")
	assert.True(t, store.Contains(first))
	assert.True(t, store.Contains(second))
	assert.Equal(t, 3, store.Len())
}

func TestGenerate_FallbackIsNotRechecked(t *testing.T) {
	p := tinyProfile()
	ts := time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)
	g, err := NewGenerator(p, WithMaxAttempts(0), WithClock(fixedClock(ts)))
	require.NoError(t, err)

	store := history.NewStore()
	first := g.Generate(store)
	second := g.Generate(store)

	// same millisecond, same fragments: the known residual collision.
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.Len())
}

func TestGenerate_FallbackAttemptsConsultHistory(t *testing.T) {
	p := tinyProfile()
	t1 := time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)
	t2 := t1.Add(time.Second)

	seedGen, err := NewGenerator(p, WithMaxAttempts(0), WithClock(fixedClock(t1)))
	require.NoError(t, err)
	store := history.NewStore()
	taken := seedGen.Generate(store)

	g, err := NewGenerator(p, WithMaxAttempts(0), WithFallbackAttempts(2), WithClock(fixedClock(t1, t2)))
	require.NoError(t, err)
	got := g.Generate(store)

	assert.NotEqual(t, taken, got)
	assert.Contains(t, got, "(2025-08-01T09:30:01.000)")
}

func TestGenerate_FallbackFitsShortBound(t *testing.T) {
	p := tinyProfile()
	ts := time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)
	stamp := "(2025-08-01T09:30:00.000)"

	for _, max := range []int{60, 30, 26, 10} {
		g, err := NewGenerator(p, WithMaxAttempts(0), WithMaxLength(max), WithClock(fixedClock(ts)))
		require.NoError(t, err)
		c := g.Generate(history.NewStore())
		assert.LessOrEqual(t, utf8.RuneCountInString(c), max, "max=%d caption=%q", max, c)
		if max > utf8.RuneCountInString(stamp) {
			assert.True(t, strings.HasSuffix(c, stamp) || strings.Contains(c, stamp+" "), "stamp kept for max=%d: %q", max, c)
		}
	}
}

func TestGenerate_TooLongCandidatesAreNotRecorded(t *testing.T) {
	p := tinyProfile()
	ts := time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)
	g, err := NewGenerator(p, WithMaxAttempts(3), WithMaxLength(5), WithClock(fixedClock(ts)))
	require.NoError(t, err)

	store := history.NewStore()
	c := g.Generate(store)
	assert.Equal(t, "(2025", c)
	assert.False(t, store.Contains("窓辺で丸まる。#TheCatAPI"))
	assert.Equal(t, 1, store.Len())
}

func TestGenerate_HashtagOverride(t *testing.T) {
	p, err := LookupProfile(ProfileLong)
	require.NoError(t, err)

	g, err := NewGenerator(p, WithRand(&seqPicker{vals: []int{0}}), WithHashtags(""))
	require.NoError(t, err)
	assert.Equal(t, "休憩のお供に、猫を一匙 — 窓辺でしれっと見守る。可愛いの暴力。", g.Generate(history.NewStore()))

	g, err = NewGenerator(p, WithRand(&seqPicker{vals: []int{0}}), WithHashtags("#catsofx"))
	require.NoError(t, err)
	assert.Equal(t, "休憩のお供に、猫を一匙 — 窓辺でしれっと見守る。可愛いの暴力。 #catsofx", g.Generate(history.NewStore()))
}

func TestNewGenerator_RejectsInvalidProfile(t *testing.T) {
	p := tinyProfile()
	p.Vocabulary.Closers = nil
	_, err := NewGenerator(p)
	assert.ErrorContains(t, err, "closer")

	p = tinyProfile()
	p.Templates = nil
	_, err = NewGenerator(p)
	assert.ErrorContains(t, err, "no templates")

	p = tinyProfile()
	p.MaxLength = 0
	_, err = NewGenerator(p)
	assert.Error(t, err)
}
