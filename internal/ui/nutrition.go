package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/fitness-tracker/internal/nutrition"
)

// showNutritionWindow opens the food lookup window. Each press issues one
// request; the result replaces the previous one.
func (a *App) showNutritionWindow() {
	w := a.app.NewWindow("Check Food Nutrition")

	foodEntry := widget.NewEntry()
	foodEntry.SetPlaceHolder("e.g. 1 cup rice")
	result := widget.NewLabel("")
	result.Wrapping = fyne.TextWrapWord

	var lookupBtn *widget.Button
	lookupBtn = widget.NewButton("Get Nutrition Info", func() {
		query := foodEntry.Text
		client := a.lookup
		timeout := a.config.LookupTimeout()

		lookupBtn.Disable()
		result.SetText("Looking up...")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			facts, err := client.Lookup(ctx, query)

			fyne.Do(func() {
				lookupBtn.Enable()
				if err != nil {
					result.SetText(lookupErrorText(err))
					return
				}
				result.SetText(facts.Text())
			})
		}()
	})
	foodEntry.OnSubmitted = func(string) { tapIfEnabled(lookupBtn) }

	w.SetContent(container.NewPadded(container.NewVBox(
		widget.NewLabel("Food Name"),
		foodEntry,
		lookupBtn,
		widget.NewSeparator(),
		result,
	)))
	w.Resize(fyne.NewSize(380, 300))
	w.Show()
}

// tapIfEnabled runs the button action unless a lookup is already in flight.
func tapIfEnabled(btn *widget.Button) {
	if btn.Disabled() || btn.OnTapped == nil {
		return
	}
	btn.OnTapped()
}

// lookupErrorText renders a lookup failure for the result label.
func lookupErrorText(err error) string {
	switch {
	case nutrition.IsTimeout(err):
		return "Error: the nutrition service did not respond in time."
	case nutrition.IsAuthError(err):
		return "Error: the nutrition service rejected the API credentials."
	case errors.Is(err, nutrition.ErrMissingCredentials):
		return "Error: nutrition API credentials are not configured.\nSet NUTRITIONIX_APP_ID and NUTRITIONIX_APP_KEY or use File > Preferences."
	default:
		return "Error: " + err.Error()
	}
}
