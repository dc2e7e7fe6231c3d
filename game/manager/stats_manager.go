package manager

import (
	"sort"
)

// RoundRecord is what one finished round leaves behind
type RoundRecord struct {
	Score  int
	Steps  int
	Length int
}

// SessionStats summarises every round finished since the program started.
// Nothing here is persisted; only the record outlives the process.
type SessionStats struct {
	Rounds       int
	AverageScore float64
	MedianScore  float64
	MaxScore     int
	MinScore     int
	AverageSteps float64
	MaxLength    int
}

type StatsManager struct {
	rounds []RoundRecord
}

func NewStatsManager() *StatsManager {
	return &StatsManager{}
}

func (s *StatsManager) AddRound(r RoundRecord) {
	s.rounds = append(s.rounds, r)
}

func (s *StatsManager) Rounds() int {
	return len(s.rounds)
}

// Summary computes the aggregate over all rounds. It is zero when no round
// has finished yet.
func (s *StatsManager) Summary() SessionStats {
	if len(s.rounds) == 0 {
		return SessionStats{}
	}

	scores := make([]int, len(s.rounds))
	stats := SessionStats{
		Rounds:   len(s.rounds),
		MinScore: s.rounds[0].Score,
	}
	totalScore, totalSteps := 0, 0
	for i, r := range s.rounds {
		scores[i] = r.Score
		totalScore += r.Score
		totalSteps += r.Steps
		stats.MaxScore = max(stats.MaxScore, r.Score)
		stats.MinScore = min(stats.MinScore, r.Score)
		stats.MaxLength = max(stats.MaxLength, r.Length)
	}
	stats.AverageScore = float64(totalScore) / float64(len(s.rounds))
	stats.AverageSteps = float64(totalSteps) / float64(len(s.rounds))

	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		stats.MedianScore = float64(scores[mid-1]+scores[mid]) / 2
	} else {
		stats.MedianScore = float64(scores[mid])
	}
	return stats
}
