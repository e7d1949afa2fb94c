package ui

// Exercise is one entry of the built-in demo catalog shown on the exercises
// screen. Demo imagery rendering belongs to the windowing layer, not here.
type Exercise struct {
	Name        string
	Description string
}

// Catalog returns the built-in exercise catalog.
func Catalog() []Exercise {
	return []Exercise{
		{Name: "Push-up", Description: "Keep your body straight, lower your chest to the floor and push back up."},
		{Name: "Squat", Description: "Feet shoulder-width apart, sit back and down, then drive through the heels."},
		{Name: "Plank", Description: "Hold a straight line from head to heels on your forearms."},
		{Name: "Lunges", Description: "Step forward and lower until both knees are at right angles, alternating legs."},
		{Name: "Burpees", Description: "Squat, kick back to a plank, return and jump up in one motion."},
	}
}
