package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator for all input forms. Validation happens
// here, at the UI boundary; the services and repositories assume well-formed
// input.
var validate = validator.New()

// SignupForm carries the signup inputs.
type SignupForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Confirm  string `validate:"required,eqfield=Password"`
}

func (f SignupForm) Validate() error {
	return validate.Struct(f)
}

// LoginForm carries the login inputs.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func (f LoginForm) Validate() error {
	return validate.Struct(f)
}

// ExerciseForm carries the exercise-logging inputs. WeightKg is nil when the
// weight field was left empty.
type ExerciseForm struct {
	ExerciseName string   `validate:"required"`
	Sets         int      `validate:"gt=0"`
	Reps         int      `validate:"gt=0"`
	WeightKg     *float64 `validate:"omitempty,gt=0"`
	Calories     int      `validate:"gt=0"`
}

func (f ExerciseForm) Validate() error {
	return validate.Struct(f)
}

// ParseExerciseForm builds an ExerciseForm from raw field values.
func ParseExerciseForm(name, sets, reps, weight, calories string) (ExerciseForm, error) {
	form := ExerciseForm{ExerciseName: strings.TrimSpace(name)}

	var err error
	if form.Sets, err = strconv.Atoi(strings.TrimSpace(sets)); err != nil {
		return form, fmt.Errorf("sets must be a whole number")
	}
	if form.Reps, err = strconv.Atoi(strings.TrimSpace(reps)); err != nil {
		return form, fmt.Errorf("reps must be a whole number")
	}
	if form.Calories, err = strconv.Atoi(strings.TrimSpace(calories)); err != nil {
		return form, fmt.Errorf("calories must be a whole number")
	}
	if w := strings.TrimSpace(weight); w != "" {
		value, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return form, fmt.Errorf("weight must be a number or left empty")
		}
		form.WeightKg = &value
	}
	return form, form.Validate()
}

// GoalForm carries the goal-setting inputs. EndDate is nil for open-ended
// goals.
type GoalForm struct {
	GoalType     string  `validate:"required"`
	Description  string  `validate:"required"`
	TargetValue  float64 `validate:"gt=0"`
	CurrentValue float64 `validate:"gte=0"`
	Unit         string  `validate:"required"`
	EndDate      *string `validate:"omitempty,datetime=2006-01-02"`
}

func (f GoalForm) Validate() error {
	return validate.Struct(f)
}

// ParseGoalForm builds a GoalForm from raw field values.
func ParseGoalForm(goalType, description, target, current, unit, endDate string) (GoalForm, error) {
	form := GoalForm{
		GoalType:    strings.TrimSpace(goalType),
		Description: strings.TrimSpace(description),
		Unit:        strings.TrimSpace(unit),
	}

	var err error
	if form.TargetValue, err = strconv.ParseFloat(strings.TrimSpace(target), 64); err != nil {
		return form, fmt.Errorf("target value must be a number")
	}
	if form.CurrentValue, err = strconv.ParseFloat(strings.TrimSpace(current), 64); err != nil {
		return form, fmt.Errorf("current value must be a number")
	}
	if d := strings.TrimSpace(endDate); d != "" {
		form.EndDate = &d
	}
	return form, form.Validate()
}

// BMIForm carries the BMI calculator inputs.
type BMIForm struct {
	WeightKg float64 `validate:"gt=0"`
	HeightCm float64 `validate:"gt=0"`
}

func (f BMIForm) Validate() error {
	return validate.Struct(f)
}

// ParseBMIForm builds a BMIForm from raw field values.
func ParseBMIForm(weight, height string) (BMIForm, error) {
	var form BMIForm

	var err error
	if form.WeightKg, err = strconv.ParseFloat(strings.TrimSpace(weight), 64); err != nil {
		return form, fmt.Errorf("weight must be a number")
	}
	if form.HeightCm, err = strconv.ParseFloat(strings.TrimSpace(height), 64); err != nil {
		return form, fmt.Errorf("height must be a number")
	}
	return form, form.Validate()
}
