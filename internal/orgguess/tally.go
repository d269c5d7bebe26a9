package orgguess

import (
	"fmt"
	"slices"
	"strings"
)

// TiePolicy decides between organizations mentioned equally often.
type TiePolicy string

const (
	// TieFirst picks the tied organization mentioned first across the texts.
	TieFirst TiePolicy = "first"
	// TieLexical picks the lexicographically smallest tied organization.
	TieLexical TiePolicy = "lexical"
	// TieError refuses to pick and returns an *AmbiguousError.
	TieError TiePolicy = "error"
)

// ParseTiePolicy parses a policy name; empty means TieFirst.
func ParseTiePolicy(value string) (TiePolicy, error) {
	switch TiePolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", TieFirst:
		return TieFirst, nil
	case TieLexical:
		return TieLexical, nil
	case TieError:
		return TieError, nil
	default:
		return "", fmt.Errorf("unknown tie policy %q (want first, lexical or error)", value)
	}
}

// Candidate is one distinct organization mention.
type Candidate struct {
	Text string `json:"text" yaml:"text"`
	// Count is the number of mentions across all texts.
	Count int `json:"count" yaml:"count"`
	// FirstSeen is the 0-based position of the first mention in the
	// flattened mention sequence.
	FirstSeen int `json:"first_seen" yaml:"first_seen"`
}

// Ranking lists candidates by descending count, then by first mention.
type Ranking []Candidate

// Tally counts exact values and ranks them.
func Tally(values []string) Ranking {
	index := make(map[string]int, len(values))
	var ranking Ranking
	for pos, value := range values {
		if i, ok := index[value]; ok {
			ranking[i].Count++
			continue
		}
		index[value] = len(ranking)
		ranking = append(ranking, Candidate{Text: value, Count: 1, FirstSeen: pos})
	}
	slices.SortStableFunc(ranking, func(a, b Candidate) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return a.FirstSeen - b.FirstSeen
	})
	return ranking
}

// Leaders returns the candidates sharing the highest count.
func (r Ranking) Leaders() []Candidate {
	if len(r) == 0 {
		return nil
	}
	n := 1
	for n < len(r) && r[n].Count == r[0].Count {
		n++
	}
	return slices.Clone(r[:n])
}

// Mode returns the most mentioned candidate. equivalent reports whether two
// candidate texts denote the same organization; tied candidates that are all
// equivalent are not treated as ambiguous. A nil equivalent means exact
// equality.
func (r Ranking) Mode(policy TiePolicy, equivalent func(a, b string) bool) (Candidate, error) {
	leaders := r.Leaders()
	if len(leaders) == 0 {
		return Candidate{}, ErrNoOrganization
	}
	if len(leaders) == 1 {
		return leaders[0], nil
	}
	switch policy {
	case TieLexical:
		return slices.MinFunc(leaders, func(a, b Candidate) int {
			return strings.Compare(a.Text, b.Text)
		}), nil
	case TieError:
		if equivalent != nil && allEquivalent(leaders, equivalent) {
			return leaders[0], nil
		}
		return Candidate{}, &AmbiguousError{Candidates: leaders}
	default:
		return leaders[0], nil
	}
}

func allEquivalent(candidates []Candidate, equivalent func(a, b string) bool) bool {
	for _, c := range candidates[1:] {
		if !equivalent(candidates[0].Text, c.Text) {
			return false
		}
	}
	return true
}
