package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iron-24/ripper-report/internal/app"
	"github.com/iron-24/ripper-report/internal/domain"
)

type fakePostSource struct {
	posts []map[string]any
	err   error
	query string
}

func (f *fakePostSource) Search(_ context.Context, query string, _ int) ([]map[string]any, error) {
	f.query = query
	return f.posts, f.err
}

func post(title, body string) map[string]any {
	return map[string]any{"title": title, "selftext": body}
}

func TestLexiconScorer_NeutralOnEmpty(t *testing.T) {
	s := app.NewLexiconScorer(&fakePostSource{}, 40)

	got, err := s.Score(context.Background(), domain.Resort{Name: "Kirkwood"})
	require.NoError(t, err)
	assert.Equal(t, domain.NeutralSentiment(), got)
}

func TestLexiconScorer_NeutralOnFetchError(t *testing.T) {
	s := app.NewLexiconScorer(&fakePostSource{err: errors.New("boom")}, 40)

	got, err := s.Score(context.Background(), domain.Resort{Name: "Kirkwood"})
	assert.Error(t, err)
	assert.Equal(t, domain.NeutralSentiment(), got)
}

func TestLexiconScorer_PositivePosts(t *testing.T) {
	src := &fakePostSource{posts: []map[string]any{
		post("Heavenly was amazing", "best powder day of my life, absolutely loved every run"),
		post("Great trip to Heavenly", "awesome conditions and wonderful views, would go again"),
	}}
	s := app.NewLexiconScorer(src, 40)

	got, err := s.Score(context.Background(), domain.Resort{Name: "Heavenly"})
	require.NoError(t, err)
	assert.Greater(t, got.Score, 0.05)
	assert.Equal(t, 100, got.PositivePct)
	assert.Equal(t, 2, got.SampleCount)
}

func TestLexiconScorer_FiltersShortAndLinkPosts(t *testing.T) {
	src := &fakePostSource{posts: []map[string]any{
		post("short", ""), // under the length floor
		post("Conditions thread", "see https://example.com for the full report today"),
		post("Solid day on the mountain", "soft snow all morning and no lines anywhere, really enjoyed it"),
	}}
	s := app.NewLexiconScorer(src, 40)

	got, err := s.Score(context.Background(), domain.Resort{Name: "Kirkwood"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.SampleCount)
}

func TestLexiconScorer_UsesCuratedQuery(t *testing.T) {
	src := &fakePostSource{}
	s := app.NewLexiconScorer(src, 40)

	r := domain.Resort{Name: "Heavenly", Query: `heavenly OR "heavenly tahoe"`}
	_, err := s.Score(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, `heavenly OR "heavenly tahoe"`, src.query)

	// without a curated query the name is used as-is
	_, err = s.Score(context.Background(), domain.Resort{Name: "Sugar Bowl"})
	require.NoError(t, err)
	assert.Equal(t, "Sugar Bowl", src.query)
}

func TestStaticScorer_TableAndFallbacks(t *testing.T) {
	s := app.NewStaticScorer()
	ctx := context.Background()

	// curated entry, substring match on the lowercased name
	got, err := s.Score(ctx, domain.Resort{Name: "Kirkwood Mountain"})
	require.NoError(t, err)
	assert.InDelta(t, 0.40, got.Score, 1e-9)

	// generic resort-like token
	got, err = s.Score(ctx, domain.Resort{Name: "Windy Peak Resort"})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, got.Score, 1e-9)

	// nothing recognizable
	got, err = s.Score(ctx, domain.Resort{Name: "Windy Peak"})
	require.NoError(t, err)
	assert.Equal(t, domain.NeutralSentiment(), got)
}

func TestMoodLabels(t *testing.T) {
	cases := map[float64]string{
		0.5:   "stoked",
		0.2:   "happy",
		0.0:   "neutral",
		-0.2:  "meh",
		-0.75: "bummed",
	}
	for score, want := range cases {
		if got := domain.MoodLabel(score); got != want {
			t.Fatalf("MoodLabel(%v) = %q, want %q", score, got, want)
		}
	}
	// labels surface in results
	n := domain.NeutralSentiment()
	assert.True(t, strings.EqualFold(n.Label, "neutral"))
}
