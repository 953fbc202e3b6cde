// Package stats computes dashboard statistics from a user's attempt log.
// Everything here is a pure reduction over already-validated records; it is
// recomputed on every query rather than maintained incrementally.
package stats

import (
	"math"
	"sort"

	"github.com/medprep/backend/internal/domain/attempt"
)

// minTopicAttempts is the sample-size floor for the strong/weak rankings.
// Topics with fewer attempts are still reported in TopicStats but excluded
// from the rankings so a single lucky guess doesn't read as mastery.
const minTopicAttempts = 3

// topicLimit caps the strong/weak lists.
const topicLimit = 8

// SubjectStat counts attempts for one subject.
type SubjectStat struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

// TopicStat counts attempts for one (subject, topic) pair.
type TopicStat struct {
	Subject  string  `json:"subject"`
	Topic    string  `json:"topic"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// Aggregate is the full dashboard payload. It is derived, never persisted.
type Aggregate struct {
	TotalAttempts     int                    `json:"totalAttempts"`
	CorrectAttempts   int                    `json:"correctAttempts"`
	IncorrectAttempts int                    `json:"incorrectAttempts"`
	Accuracy          float64                `json:"accuracy"`
	SubjectStats      map[string]SubjectStat `json:"subjectStats"`
	TopicStats        []TopicStat            `json:"topicStats"`
	StrongTopics      []TopicStat            `json:"strongTopics"`
	WeakTopics        []TopicStat            `json:"weakTopics"`
}

// Compute reduces a user's full attempt log into an Aggregate.
// TopicStats preserves first-appearance order of each (subject, topic) pair.
// Ranking ties are broken by subject then topic, ascending, so the output is
// deterministic regardless of input order.
func Compute(records []attempt.Record) Aggregate {
	agg := Aggregate{
		SubjectStats: make(map[string]SubjectStat),
		TopicStats:   []TopicStat{},
		StrongTopics: []TopicStat{},
		WeakTopics:   []TopicStat{},
	}

	type topicKey struct {
		subject string
		topic   string
	}
	topicIndex := make(map[topicKey]int)

	for _, rec := range records {
		agg.TotalAttempts++
		if rec.IsCorrect {
			agg.CorrectAttempts++
		}

		subj := string(rec.Subject)
		ss := agg.SubjectStats[subj]
		ss.Total++
		if rec.IsCorrect {
			ss.Correct++
		}
		agg.SubjectStats[subj] = ss

		key := topicKey{subject: subj, topic: rec.Topic}
		i, ok := topicIndex[key]
		if !ok {
			i = len(agg.TopicStats)
			topicIndex[key] = i
			agg.TopicStats = append(agg.TopicStats, TopicStat{Subject: subj, Topic: rec.Topic})
		}
		agg.TopicStats[i].Total++
		if rec.IsCorrect {
			agg.TopicStats[i].Correct++
		}
	}

	agg.IncorrectAttempts = agg.TotalAttempts - agg.CorrectAttempts
	if agg.TotalAttempts > 0 {
		agg.Accuracy = round2(float64(agg.CorrectAttempts) / float64(agg.TotalAttempts) * 100)
	}

	for i := range agg.TopicStats {
		t := &agg.TopicStats[i]
		t.Accuracy = round2(float64(t.Correct) / float64(t.Total) * 100)
	}

	var eligible []TopicStat
	for _, t := range agg.TopicStats {
		if t.Total >= minTopicAttempts {
			eligible = append(eligible, t)
		}
	}

	agg.StrongTopics = rankTopics(eligible, func(a, b TopicStat) bool { return a.Accuracy > b.Accuracy })
	agg.WeakTopics = rankTopics(eligible, func(a, b TopicStat) bool { return a.Accuracy < b.Accuracy })

	return agg
}

// rankTopics sorts a copy of eligible by the given accuracy order and caps it
// at topicLimit. Equal accuracies fall back to subject, then topic.
func rankTopics(eligible []TopicStat, byAccuracy func(a, b TopicStat) bool) []TopicStat {
	ranked := make([]TopicStat, len(eligible))
	copy(ranked, eligible)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Accuracy != b.Accuracy {
			return byAccuracy(a, b)
		}
		if a.Subject != b.Subject {
			return a.Subject < b.Subject
		}
		return a.Topic < b.Topic
	})

	if len(ranked) > topicLimit {
		ranked = ranked[:topicLimit]
	}
	return ranked
}

// round2 rounds to 2 decimal places, half up. Inputs are percentages in
// [0, 100] so half-away-from-zero and half-up coincide.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
