// Package classifier guesses the statement type of a document from its text.
package classifier

import (
	"math"
	"slices"
	"strings"

	"github.com/dtroode/statementbox/internal/model"
)

// Keywords is the marker phrase set of one statement type.
type Keywords struct {
	Type    model.StatementType
	Phrases []string
}

// Classifier scores text against keyword sets. It holds no mutable state.
type Classifier struct {
	sets []Keywords
}

// New creates a Classifier. The order of sets is the tie-break priority.
func New(sets []Keywords) *Classifier {
	return &Classifier{sets: sets}
}

// Default returns a Classifier with the built-in credit, checking and savings markers.
func Default() *Classifier {
	return New(defaultKeywords)
}

type candidate struct {
	statementType model.StatementType
	uniqueMatches int
	mentionScore  int
	totalKeywords int
	priority      int
}

func (c candidate) coverage() float64 {
	if c.totalKeywords == 0 {
		return 0
	}
	return float64(c.uniqueMatches) / float64(c.totalKeywords)
}

// Classify returns the most likely statement type for text.
func (c *Classifier) Classify(text string) model.Detection {
	unknown := model.Detection{Type: model.StatementTypeUnknown}

	text = strings.ToLower(text)
	if strings.TrimSpace(text) == "" {
		return unknown
	}

	candidates := make([]candidate, 0, len(c.sets))
	for i, set := range c.sets {
		cand := candidate{
			statementType: set.Type,
			totalKeywords: len(set.Phrases),
			priority:      i,
		}
		for _, phrase := range set.Phrases {
			if phrase == "" {
				continue
			}
			n := strings.Count(text, phrase)
			if n > 0 {
				cand.uniqueMatches++
				cand.mentionScore += n
			}
		}
		if cand.uniqueMatches == 0 && cand.mentionScore == 0 {
			continue
		}
		candidates = append(candidates, cand)
	}

	if len(candidates) == 0 {
		return unknown
	}

	slices.SortStableFunc(candidates, compareCandidates)
	winner := candidates[0]

	return model.Detection{
		Type:              winner.statementType,
		Confidence:        roundTo2(winner.coverage()),
		IsLikelyStatement: true,
	}
}

// compareCandidates orders by unique matches, mention score, coverage and priority.
func compareCandidates(a, b candidate) int {
	if a.uniqueMatches != b.uniqueMatches {
		return b.uniqueMatches - a.uniqueMatches
	}
	if a.mentionScore != b.mentionScore {
		return b.mentionScore - a.mentionScore
	}
	if ca, cb := a.coverage(), b.coverage(); ca != cb {
		if ca > cb {
			return -1
		}
		return 1
	}
	return a.priority - b.priority
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
