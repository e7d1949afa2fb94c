package models

// Goal is a user-defined target metric with tracked current progress.
// EndDate is nil for open-ended goals. CurrentValue and IsCompleted are the
// only fields that change after creation, via progress updates.
type Goal struct {
	ID           uint    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID       uint    `json:"user_id" gorm:"column:user_id;not null;index"`
	GoalType     string  `json:"goal_type" gorm:"column:goal_type;not null"`
	Description  string  `json:"description" gorm:"column:description;not null"`
	TargetValue  float64 `json:"target_value" gorm:"column:target_value"`
	CurrentValue float64 `json:"current_value" gorm:"column:current_value"`
	Unit         string  `json:"unit" gorm:"column:unit"`
	StartDate    string  `json:"start_date" gorm:"column:start_date;not null"`
	EndDate      *string `json:"end_date,omitempty" gorm:"column:end_date"`
	IsCompleted  bool    `json:"is_completed" gorm:"column:is_completed;default:0"`
}

func (Goal) TableName() string { return "goals" }
