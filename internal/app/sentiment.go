package app

import (
	"context"
	"math"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/iron-24/ripper-report/internal/domain"
	"github.com/iron-24/ripper-report/internal/shared"
)

// positiveThreshold is the compound score at and above which a post
// counts as positive.
const positiveThreshold = 0.05

// LexiconScorer is the authoritative sentiment strategy: recent
// community posts scored with the VADER valence lexicon.
type LexiconScorer struct {
	posts domain.PostSource
	sia   *govader.SentimentIntensityAnalyzer
	limit int
}

func NewLexiconScorer(ps domain.PostSource, postLimit int) *LexiconScorer {
	if postLimit <= 0 {
		postLimit = 40
	}
	return &LexiconScorer{
		posts: ps,
		sia:   govader.NewSentimentIntensityAnalyzer(),
		limit: postLimit,
	}
}

// Score fetches posts for the resort and reduces them to a mean compound
// score plus the positive fraction. A failed fetch yields the neutral
// default together with the error so callers can log and move on.
func (s *LexiconScorer) Score(ctx context.Context, r domain.Resort) (domain.SentimentResult, error) {
	posts, err := s.posts.Search(ctx, r.SearchQuery(), s.limit)
	if err != nil {
		return domain.NeutralSentiment(), err
	}
	texts := mapPostTexts(posts)
	if len(texts) == 0 {
		return domain.NeutralSentiment(), nil
	}
	compounds := make([]float64, len(texts))
	for i, t := range texts {
		compounds[i] = s.sia.PolarityScores(t).Compound
	}
	return summarizeCompounds(compounds), nil
}

func summarizeCompounds(compounds []float64) domain.SentimentResult {
	var sum float64
	positive := 0
	for _, c := range compounds {
		sum += c
		if c >= positiveThreshold {
			positive++
		}
	}
	n := len(compounds)
	avg := math.Round(sum/float64(n)*1000) / 1000
	pct := int(math.Round(float64(positive) / float64(n) * 100))
	return domain.SentimentResult{
		Score:       avg,
		PositivePct: pct,
		SampleCount: n,
		Label:       domain.MoodLabel(avg),
	}
}

// StaticScorer is the degraded strategy: an ordered substring-match
// reputation table over the resort name, first match wins, with a small
// positive default for generic resort-like names.
type StaticScorer struct{}

func NewStaticScorer() *StaticScorer { return &StaticScorer{} }

var genericResortTokens = []string{"resort", "mountain", "ski"}

func (s *StaticScorer) Score(_ context.Context, r domain.Resort) (domain.SentimentResult, error) {
	low := strings.ToLower(r.Name)
	for _, e := range shared.ReputationTable {
		if strings.Contains(low, e.Pattern) {
			return domain.SentimentResult{
				Score:       e.Score,
				PositivePct: 50,
				SampleCount: 0,
				Label:       domain.MoodLabel(e.Score),
			}, nil
		}
	}
	for _, tok := range genericResortTokens {
		if strings.Contains(low, tok) {
			return domain.SentimentResult{
				Score:       0.2,
				PositivePct: 50,
				SampleCount: 0,
				Label:       domain.MoodLabel(0.2),
			}, nil
		}
	}
	return domain.NeutralSentiment(), nil
}
