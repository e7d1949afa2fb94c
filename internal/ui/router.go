package ui

// Screen identifies one of the application's screens. Navigation dispatches
// on this enum rather than on screen names.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenDashboard
	ScreenBMI
	ScreenTracker
	ScreenExercises
	ScreenGoals
	ScreenProgress
	ScreenAnalysis
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "Login"
	case ScreenSignup:
		return "Sign Up"
	case ScreenDashboard:
		return "Dashboard"
	case ScreenBMI:
		return "BMI Calculator"
	case ScreenTracker:
		return "Calorie Tracker"
	case ScreenExercises:
		return "Exercises"
	case ScreenGoals:
		return "Goals"
	case ScreenProgress:
		return "Progress Tracking"
	case ScreenAnalysis:
		return "Data Analysis"
	default:
		return "Unknown"
	}
}

// requiresAuth reports whether the screen needs an authenticated session.
func (s Screen) requiresAuth() bool {
	return s != ScreenLogin && s != ScreenSignup
}

// Router is the navigation state machine. It tracks the current screen and
// redirects unauthenticated navigation to the login screen.
type Router struct {
	session *Session
	current Screen
}

// NewRouter creates a router starting at the login screen.
func NewRouter(session *Session) *Router {
	return &Router{
		session: session,
		current: ScreenLogin,
	}
}

// Current returns the active screen.
func (r *Router) Current() Screen {
	return r.current
}

// Navigate moves to the requested screen, bouncing to login when the screen
// requires an authenticated session and there is none. Returns the screen
// actually landed on.
func (r *Router) Navigate(screen Screen) Screen {
	if screen.requiresAuth() && !r.session.LoggedIn() {
		r.current = ScreenLogin
		return r.current
	}
	r.current = screen
	return r.current
}
