package ui

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"fittrack/internal/analytics"
	"fittrack/internal/services"
)

// Shell is the line-based stand-in for the GUI: it renders one screen at a
// time and dispatches user actions into the services. Widget rendering and
// imagery belong to the windowing layer and are not reproduced here.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer

	session *Session
	router  *Router

	auth     *services.AuthService
	workouts *services.WorkoutService
	goals    *services.GoalService

	now  func() time.Time
	quit bool
}

// NewShell creates a shell reading actions from in and rendering to out.
func NewShell(in io.Reader, out io.Writer, auth *services.AuthService, workouts *services.WorkoutService, goals *services.GoalService) *Shell {
	session := &Session{}
	return &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		session:  session,
		router:   NewRouter(session),
		auth:     auth,
		workouts: workouts,
		goals:    goals,
		now:      time.Now,
	}
}

// Run drives the screen loop until the user quits or input ends.
func (s *Shell) Run() {
	for !s.quit {
		switch s.router.Current() {
		case ScreenLogin:
			s.loginScreen()
		case ScreenSignup:
			s.signupScreen()
		case ScreenDashboard:
			s.dashboardScreen()
		case ScreenBMI:
			s.bmiScreen()
		case ScreenTracker:
			s.trackerScreen()
		case ScreenExercises:
			s.exercisesScreen()
		case ScreenGoals:
			s.goalsScreen()
		case ScreenProgress:
			s.progressScreen()
		case ScreenAnalysis:
			s.analysisScreen()
		default:
			s.router.Navigate(ScreenLogin)
		}
	}
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine prompts and reads one input line. Returns false once input is
// exhausted, which ends the shell.
func (s *Shell) readLine(prompt string) (string, bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		s.quit = true
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) loginScreen() {
	s.printf("\n== %s ==\n1) Log in\n2) Sign up\nq) Quit\n", ScreenLogin)
	choice, ok := s.readLine("> ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		username, ok := s.readLine("Username: ")
		if !ok {
			return
		}
		password, ok := s.readLine("Password: ")
		if !ok {
			return
		}
		form := LoginForm{Username: username, Password: password}
		if err := form.Validate(); err != nil {
			s.printf("Please enter both username and password.\n")
			return
		}
		user, ok := s.auth.Login(form.Username, form.Password)
		if !ok {
			s.printf("Invalid username or password.\n")
			return
		}
		s.session.Start(user.ID, user.Username)
		s.printf("Welcome, %s!\n", user.Username)
		s.router.Navigate(ScreenDashboard)
	case "2":
		s.router.Navigate(ScreenSignup)
	case "q":
		s.quit = true
	}
}

func (s *Shell) signupScreen() {
	s.printf("\n== %s ==\n", ScreenSignup)
	username, ok := s.readLine("Username: ")
	if !ok {
		return
	}
	password, ok := s.readLine("Password: ")
	if !ok {
		return
	}
	confirm, ok := s.readLine("Confirm password: ")
	if !ok {
		return
	}
	form := SignupForm{Username: username, Password: password, Confirm: confirm}
	if err := form.Validate(); err != nil {
		s.printf("All fields are required and passwords must match.\n")
		s.router.Navigate(ScreenLogin)
		return
	}
	if s.auth.Register(form.Username, form.Password) {
		s.printf("Account created. Please log in.\n")
	} else {
		s.printf("Username already exists or signup failed.\n")
	}
	s.router.Navigate(ScreenLogin)
}

func (s *Shell) dashboardScreen() {
	s.printf("\n== %s ==\n%s | logged in as %s\n", ScreenDashboard, s.now().Format("Mon 02 Jan 2006 15:04:05"), s.session.Username)
	s.printf("1) BMI calculator\n2) Calorie tracker\n3) Exercises\n4) Goals\n5) Progress charts\n6) Data analysis\n7) Log out\nq) Quit\n")
	choice, ok := s.readLine("> ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		s.router.Navigate(ScreenBMI)
	case "2":
		s.router.Navigate(ScreenTracker)
	case "3":
		s.router.Navigate(ScreenExercises)
	case "4":
		s.router.Navigate(ScreenGoals)
	case "5":
		s.router.Navigate(ScreenProgress)
	case "6":
		s.router.Navigate(ScreenAnalysis)
	case "7":
		s.session.Clear()
		s.router.Navigate(ScreenLogin)
	case "q":
		s.quit = true
	}
}

func (s *Shell) bmiScreen() {
	s.printf("\n== %s ==\n", ScreenBMI)
	weight, ok := s.readLine("Weight (kg): ")
	if !ok {
		return
	}
	height, ok := s.readLine("Height (cm): ")
	if !ok {
		return
	}
	form, err := ParseBMIForm(weight, height)
	if err != nil {
		s.printf("Weight and Height must be positive numbers.\n")
		s.router.Navigate(ScreenDashboard)
		return
	}
	bmi, err := analytics.BMI(form.WeightKg, form.HeightCm)
	if err != nil {
		s.printf("Weight and Height must be positive numbers.\n")
		s.router.Navigate(ScreenDashboard)
		return
	}
	category := analytics.Categorize(bmi)
	s.printf("Your BMI: %.2f\nCategory: %s (%s)\n", bmi, category, category.Color())
	s.router.Navigate(ScreenDashboard)
}

func (s *Shell) trackerScreen() {
	s.printf("\n== %s ==\n", ScreenTracker)
	logs := s.workouts.Logs(s.session.UserID)
	if len(logs) == 0 {
		s.printf("No exercises logged yet.\n")
	}
	for _, log := range logs {
		weight := "-"
		if log.WeightKg != nil {
			weight = fmt.Sprintf("%.1f kg", *log.WeightKg)
		}
		s.printf("%s  %-15s sets=%d reps=%d weight=%s calories=%d\n",
			log.LogDate, log.ExerciseName, log.Sets, log.Reps, weight, log.Calories)
	}

	choice, ok := s.readLine("a) Add entry, anything else to go back: ")
	if !ok || choice != "a" {
		s.router.Navigate(ScreenDashboard)
		return
	}
	name, ok := s.readLine("Exercise name: ")
	if !ok {
		return
	}
	sets, ok := s.readLine("Sets: ")
	if !ok {
		return
	}
	reps, ok := s.readLine("Reps: ")
	if !ok {
		return
	}
	weight, ok := s.readLine("Weight kg (optional): ")
	if !ok {
		return
	}
	calories, ok := s.readLine("Calories burned: ")
	if !ok {
		return
	}
	form, err := ParseExerciseForm(name, sets, reps, weight, calories)
	if err != nil {
		s.printf("Invalid input: %v\n", err)
		s.router.Navigate(ScreenDashboard)
		return
	}
	if s.workouts.LogExercise(s.session.UserID, form.ExerciseName, form.Sets, form.Reps, form.WeightKg, form.Calories, s.now()) {
		s.printf("Exercise logged.\n")
	} else {
		s.printf("Failed to log exercise. Please try again.\n")
	}
	s.router.Navigate(ScreenDashboard)
}

func (s *Shell) exercisesScreen() {
	s.printf("\n== %s ==\n", ScreenExercises)
	for _, exercise := range Catalog() {
		s.printf("%-10s %s\n", exercise.Name, exercise.Description)
	}
	if _, ok := s.readLine("Press enter to go back: "); !ok {
		return
	}
	s.router.Navigate(ScreenDashboard)
}

func (s *Shell) goalsScreen() {
	s.printf("\n== %s ==\n", ScreenGoals)
	goals := s.goals.Goals(s.session.UserID, true)
	if len(goals) == 0 {
		s.printf("No fitness goals set yet.\n")
	}
	for _, goal := range goals {
		endDate := "N/A"
		if goal.EndDate != nil {
			endDate = *goal.EndDate
		}
		s.printf("#%d %-12s %-20s %.1f/%.1f %-5s %-10s %s\n",
			goal.ID, goal.GoalType, goal.Description, goal.CurrentValue, goal.TargetValue,
			goal.Unit, analytics.GoalStatus(goal), endDate)
	}

	choice, ok := s.readLine("a) Add goal, u) Update progress, d) Delete, anything else to go back: ")
	if !ok {
		return
	}
	switch choice {
	case "a":
		s.addGoal()
	case "u":
		s.updateGoal()
	case "d":
		s.deleteGoal()
	}
	s.router.Navigate(ScreenDashboard)
}

func (s *Shell) addGoal() {
	goalType, ok := s.readLine("Goal type (e.g. Weight Loss, Strength): ")
	if !ok {
		return
	}
	description, ok := s.readLine("Description: ")
	if !ok {
		return
	}
	target, ok := s.readLine("Target value: ")
	if !ok {
		return
	}
	current, ok := s.readLine("Current value: ")
	if !ok {
		return
	}
	unit, ok := s.readLine("Unit (e.g. kg, km, reps): ")
	if !ok {
		return
	}
	endDate, ok := s.readLine("End date (YYYY-MM-DD, optional): ")
	if !ok {
		return
	}
	form, err := ParseGoalForm(goalType, description, target, current, unit, endDate)
	if err != nil {
		s.printf("Invalid input: %v\n", err)
		return
	}
	startDate := s.now().Format("2006-01-02")
	if s.goals.AddGoal(s.session.UserID, form.GoalType, form.Description, form.TargetValue, form.CurrentValue, form.Unit, startDate, form.EndDate) {
		s.printf("Goal added successfully!\n")
	} else {
		s.printf("Failed to add goal. Please try again.\n")
	}
}

func (s *Shell) updateGoal() {
	idText, ok := s.readLine("Goal id: ")
	if !ok {
		return
	}
	currentText, ok := s.readLine("New current value: ")
	if !ok {
		return
	}
	completedText, ok := s.readLine("Completed? (y/n, empty to leave unchanged): ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(idText, 10, 32)
	if err != nil {
		s.printf("Goal id must be a whole number.\n")
		return
	}
	current, err := strconv.ParseFloat(currentText, 64)
	if err != nil || current < 0 {
		s.printf("Current value must be a non-negative number.\n")
		return
	}
	var completed *bool
	switch strings.ToLower(completedText) {
	case "y":
		value := true
		completed = &value
	case "n":
		value := false
		completed = &value
	}
	if s.goals.UpdateProgress(uint(id), current, completed) {
		s.printf("Progress updated.\n")
	} else {
		s.printf("Failed to update progress.\n")
	}
}

func (s *Shell) deleteGoal() {
	idText, ok := s.readLine("Goal id: ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(idText, 10, 32)
	if err != nil {
		s.printf("Goal id must be a whole number.\n")
		return
	}
	if s.goals.DeleteGoal(uint(id)) {
		s.printf("Goal deleted.\n")
	} else {
		s.printf("Failed to delete goal.\n")
	}
}

func (s *Shell) progressScreen() {
	s.printf("\n== %s ==\n1) %s\n2) %s\n3) %s\n4) %s\n",
		ScreenProgress, analytics.MetricCalories, analytics.MetricSets, analytics.MetricReps, analytics.MetricWeight)
	choice, ok := s.readLine("> ")
	if !ok {
		return
	}
	metric := analytics.MetricCalories
	switch choice {
	case "2":
		metric = analytics.MetricSets
	case "3":
		metric = analytics.MetricReps
	case "4":
		metric = analytics.MetricWeight
	}

	points := s.workouts.Series(s.session.UserID, metric)
	if len(points) == 0 {
		s.printf("No exercise data available.\n")
	}
	for _, point := range points {
		if point.Value == nil {
			s.printf("%s  -\n", point.At.Format("2006-01-02 15:04:05"))
			continue
		}
		s.printf("%s  %.1f\n", point.At.Format("2006-01-02 15:04:05"), *point.Value)
	}
	s.router.Navigate(ScreenDashboard)
}

func (s *Shell) analysisScreen() {
	s.printf("\n== %s ==\n", ScreenAnalysis)
	summary := s.workouts.Summary(s.session.UserID)
	if summary.TotalWorkouts == 0 {
		s.printf("No workout data to analyze yet.\n")
		s.router.Navigate(ScreenDashboard)
		return
	}

	s.printf("Total Workouts Logged: %d\n", summary.TotalWorkouts)
	s.printf("Total Estimated Calories Burned: %d kcal\n", summary.TotalCalories)
	s.printf("Average Sets per Workout: %.1f\n", summary.AvgSets)
	s.printf("Average Reps per Workout: %.1f\n\n", summary.AvgReps)

	s.printf("Most Frequent Exercises:\n")
	for _, entry := range summary.TopExercises {
		s.printf("- %s: %d workouts\n", entry.Name, entry.Count)
	}

	s.printf("\nMax Weight Lifted (per exercise):\n")
	if len(summary.MaxWeights) == 0 {
		s.printf("No weight data logged yet.\n")
	}
	names := make([]string, 0, len(summary.MaxWeights))
	for name := range summary.MaxWeights {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.printf("- %s: %.1f kg\n", name, summary.MaxWeights[name])
	}
	s.router.Navigate(ScreenDashboard)
}
