package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/fitness-tracker/internal/model"
	"github.com/piwi3910/fitness-tracker/internal/nutrition"
)

// showSettingsDialog displays the application preferences editor.
// The app key entered here stays in memory for this session only.
func (a *App) showSettingsDialog() {
	cfg := a.config

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	endpointEntry := widget.NewEntry()
	endpointEntry.SetText(cfg.NutritionEndpoint)

	timeoutEntry := widget.NewEntry()
	timeoutEntry.SetText(strconv.Itoa(cfg.NutritionTimeout))

	appIDEntry := widget.NewEntry()
	appIDEntry.SetText(cfg.NutritionAppID)

	appKeyEntry := widget.NewPasswordEntry()
	appKeyEntry.SetText(cfg.NutritionAppKey)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Nutrition Endpoint", endpointEntry),
		widget.NewFormItem("Lookup Timeout (s)", timeoutEntry),
		widget.NewFormItem("App ID", appIDEntry),
		widget.NewFormItem("App Key (not saved)", appKeyEntry),
	}

	d := dialog.NewForm("Preferences", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			timeout, err := strconv.Atoi(strings.TrimSpace(timeoutEntry.Text))
			if err != nil || timeout <= 0 {
				dialog.ShowError(&model.ParseError{Field: "Lookup Timeout (s)", Value: timeoutEntry.Text, Reason: "must be a whole number greater than zero"}, a.window)
				return
			}
			cfg.NutritionTimeout = timeout
			cfg.NutritionEndpoint = strings.TrimSpace(endpointEntry.Text)
			if cfg.NutritionEndpoint == "" {
				cfg.NutritionEndpoint = model.DefaultNutritionEndpoint
			}
			cfg.NutritionAppID = strings.TrimSpace(appIDEntry.Text)
			cfg.NutritionAppKey = strings.TrimSpace(appKeyEntry.Text)

			a.applyConfig(cfg)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save preferences: %w", err), a.window)
			} else {
				dialog.ShowInformation("Preferences Saved", "Application preferences have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(520, 380))
	d.Show()
}

// applyConfig swaps in cfg, rebuilding the lookup client and refreshing the theme.
func (a *App) applyConfig(cfg model.AppConfig) {
	a.config = cfg
	a.lookup = nutrition.New(cfg)
	a.theme.SetThemeName(cfg.Theme)
	a.app.Settings().SetTheme(a.theme)
}
