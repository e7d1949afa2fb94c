package analytics

import (
	"sort"
	"time"

	"fittrack/internal/models"
)

// Metric selects which logged value a chart series tracks.
type Metric int

const (
	MetricCalories Metric = iota
	MetricSets
	MetricReps
	MetricWeight
)

func (m Metric) String() string {
	switch m {
	case MetricCalories:
		return "Calories Burned"
	case MetricSets:
		return "Sets Completed"
	case MetricReps:
		return "Reps Completed"
	case MetricWeight:
		return "Weight Lifted"
	default:
		return "Unknown"
	}
}

// Point is one chart point. Value is nil when the metric has no value at
// that timestamp; such points are rendered absent, not as zero.
type Point struct {
	At    time.Time
	Value *float64
}

// Series builds the chronologically ascending chart series for a metric.
// Logs with unparsable timestamps are skipped. For the weight metric, logs
// without a recorded weight are excluded entirely; for the other metrics the
// series covers every valid timestamp, aligning values by exact timestamp
// match.
func Series(logs []models.ExerciseLog, metric Metric) []Point {
	if metric == MetricWeight {
		return weightSeries(logs)
	}

	var stamps []time.Time
	values := make(map[time.Time]float64)
	for _, log := range logs {
		at, err := log.LoggedAt()
		if err != nil {
			continue
		}
		stamps = append(stamps, at)
		values[at] = metricValue(log, metric)
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })

	points := make([]Point, 0, len(stamps))
	for _, at := range stamps {
		point := Point{At: at}
		if v, ok := values[at]; ok {
			value := v
			point.Value = &value
		}
		points = append(points, point)
	}
	return points
}

func weightSeries(logs []models.ExerciseLog) []Point {
	var points []Point
	for _, log := range logs {
		if log.WeightKg == nil {
			continue
		}
		at, err := log.LoggedAt()
		if err != nil {
			continue
		}
		weight := *log.WeightKg
		points = append(points, Point{At: at, Value: &weight})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].At.Before(points[j].At) })
	return points
}

func metricValue(log models.ExerciseLog, metric Metric) float64 {
	switch metric {
	case MetricSets:
		return float64(log.Sets)
	case MetricReps:
		return float64(log.Reps)
	default:
		return float64(log.Calories)
	}
}
