package cli

import (
	"errors"

	"github.com/felixgeelhaar/luna/internal/app"
)

var errNoApp = errors.New("application not initialized")

// App is the dependency container the commands run against.
type App = app.Container

var currentApp *App

// SetApp sets the CLI app instance.
func SetApp(a *App) {
	currentApp = a
}

// GetApp returns the CLI app instance.
func GetApp() *App {
	return currentApp
}
