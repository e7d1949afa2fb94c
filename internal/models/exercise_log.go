package models

import "time"

// Date layouts used by the installed schema. Timestamps and dates are stored
// as text; both layouts sort lexicographically in chronological order.
const (
	LogDateLayout = "2006-01-02 15:04:05"
	DateLayout    = "2006-01-02"
)

// ExerciseLog is one immutable record of a completed exercise session.
// WeightKg is nil when no weight was recorded for the session.
type ExerciseLog struct {
	ID           uint     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID       uint     `json:"user_id" gorm:"column:user_id;not null;index"`
	ExerciseName string   `json:"exercise_name" gorm:"column:exercise_name;not null"`
	Sets         int      `json:"sets" gorm:"column:sets;not null"`
	Reps         int      `json:"reps" gorm:"column:reps;not null"`
	WeightKg     *float64 `json:"weight_kg,omitempty" gorm:"column:weight_kg"`
	Calories     int      `json:"calories" gorm:"column:calories;not null"`
	LogDate      string   `json:"log_date" gorm:"column:log_date;not null"`
}

func (ExerciseLog) TableName() string { return "exercise_logs" }

// LoggedAt parses the stored timestamp.
func (l ExerciseLog) LoggedAt() (time.Time, error) {
	return time.Parse(LogDateLayout, l.LogDate)
}
