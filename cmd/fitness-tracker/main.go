// Fitness Tracker: calorie estimation and plan suggestions.
//
// A cross-platform desktop application that estimates daily caloric needs,
// checks today's intake against a weight goal and looks up food nutrition.
//
// Build:
//   go build -o fitness-tracker ./cmd/fitness-tracker
//
// Nutrition lookups need NUTRITIONIX_APP_ID and NUTRITIONIX_APP_KEY, read
// from the environment or a .env file in the working or config directory.

package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/fitness-tracker/internal/project"
	"github.com/piwi3910/fitness-tracker/internal/ui"
)

func main() {
	log.SetPrefix("fitness-tracker ")

	configPath := project.DefaultConfigPath()
	config, err := project.LoadRuntimeConfig(configPath)
	if err != nil {
		log.Printf("[config] %v", err)
	}

	application := app.NewWithID("com.piwi3910.fitness-tracker")
	window := application.NewWindow("Fitness Tracker")

	appUI := ui.NewApp(application, window, config, configPath)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(640, 760))
	window.CenterOnScreen()
	window.ShowAndRun()
}
