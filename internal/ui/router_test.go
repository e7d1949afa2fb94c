package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	var session Session
	assert.False(t, session.LoggedIn())

	session.Start(7, "alice")
	assert.True(t, session.LoggedIn())
	assert.Equal(t, uint(7), session.UserID)
	assert.Equal(t, "alice", session.Username)
	firstID := session.ID

	session.Clear()
	assert.False(t, session.LoggedIn())
	assert.Empty(t, session.Username)

	// A new login gets a fresh session identifier.
	session.Start(7, "alice")
	assert.NotEqual(t, firstID, session.ID)
}

func TestRouter_StartsAtLogin(t *testing.T) {
	router := NewRouter(&Session{})
	assert.Equal(t, ScreenLogin, router.Current())
}

func TestRouter_GuardsAuthenticatedScreens(t *testing.T) {
	session := &Session{}
	router := NewRouter(session)

	// Unauthenticated navigation to protected screens bounces to login.
	for _, screen := range []Screen{ScreenDashboard, ScreenBMI, ScreenTracker, ScreenExercises, ScreenGoals, ScreenProgress, ScreenAnalysis} {
		assert.Equal(t, ScreenLogin, router.Navigate(screen), "screen %s", screen)
	}

	// Signup is reachable without a session.
	assert.Equal(t, ScreenSignup, router.Navigate(ScreenSignup))

	session.Start(1, "alice")
	assert.Equal(t, ScreenDashboard, router.Navigate(ScreenDashboard))
	assert.Equal(t, ScreenGoals, router.Navigate(ScreenGoals))

	// Logging out locks the protected screens again.
	session.Clear()
	assert.Equal(t, ScreenLogin, router.Navigate(ScreenDashboard))
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "Dashboard", ScreenDashboard.String())
	assert.Equal(t, "BMI Calculator", ScreenBMI.String())
	assert.Equal(t, "Unknown", Screen(99).String())
}
