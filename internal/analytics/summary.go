package analytics

import (
	"sort"

	"fittrack/internal/models"
)

// topExerciseLimit caps the most-frequent-exercises ranking.
const topExerciseLimit = 5

// ExerciseCount is one entry of the most-frequent-exercises ranking.
type ExerciseCount struct {
	Name  string
	Count int
}

// Summary aggregates a user's full exercise history. MaxWeights only holds
// exercises with at least one weighted log; exercises never logged with a
// weight are absent from the map, not present with a zero.
type Summary struct {
	TotalWorkouts int
	TotalCalories int
	AvgSets       float64
	AvgReps       float64
	TopExercises  []ExerciseCount
	MaxWeights    map[string]float64
}

// Summarize derives the workout summary from a log history. An empty history
// yields zeroed aggregates, an empty ranking and an empty max-weight map.
func Summarize(logs []models.ExerciseLog) Summary {
	summary := Summary{
		MaxWeights: make(map[string]float64),
	}
	if len(logs) == 0 {
		return summary
	}

	summary.TotalWorkouts = len(logs)

	var totalSets, totalReps int
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, log := range logs {
		summary.TotalCalories += log.Calories
		totalSets += log.Sets
		totalReps += log.Reps

		if _, ok := counts[log.ExerciseName]; !ok {
			firstSeen[log.ExerciseName] = i
		}
		counts[log.ExerciseName]++

		if log.WeightKg != nil && *log.WeightKg > summary.MaxWeights[log.ExerciseName] {
			summary.MaxWeights[log.ExerciseName] = *log.WeightKg
		}
	}

	summary.AvgSets = float64(totalSets) / float64(summary.TotalWorkouts)
	summary.AvgReps = float64(totalReps) / float64(summary.TotalWorkouts)

	ranking := make([]ExerciseCount, 0, len(counts))
	for name, count := range counts {
		ranking = append(ranking, ExerciseCount{Name: name, Count: count})
	}
	// Descending by count; ties keep first-encountered order.
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return firstSeen[ranking[i].Name] < firstSeen[ranking[j].Name]
	})
	if len(ranking) > topExerciseLimit {
		ranking = ranking[:topExerciseLimit]
	}
	summary.TopExercises = ranking

	return summary
}
