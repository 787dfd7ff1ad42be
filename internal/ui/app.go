package ui

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/fitness-tracker/internal/engine"
	"github.com/piwi3910/fitness-tracker/internal/export"
	"github.com/piwi3910/fitness-tracker/internal/model"
	"github.com/piwi3910/fitness-tracker/internal/nutrition"
	"github.com/piwi3910/fitness-tracker/internal/project"
)

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string
	theme      *FitnessTheme
	lookup     *nutrition.Client
	history    *History

	weight, target, height, age, consumed *widget.Entry
	gender, activity, diet, goal, plan    *widget.SelectEntry

	resultLabel *widget.Label
	lastSummary *engine.Summary

	mainMenu *fyne.MainMenu
	undoItem *fyne.MenuItem
	redoItem *fyne.MenuItem
}

// NewApp creates the UI state for window. config is the runtime config
// already overlaid with the environment.
func NewApp(application fyne.App, window fyne.Window, config model.AppConfig, configPath string) *App {
	a := &App{
		app:        application,
		window:     window,
		config:     config,
		configPath: configPath,
		theme:      NewFitnessTheme(config.Theme),
		lookup:     nutrition.New(config),
		history:    NewHistory(),
	}
	application.Settings().SetTheme(a.theme)
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Summary to PDF...", func() {
			a.exportSummary("pdf")
		}),
		fyne.NewMenuItem("Export Summary to Excel...", func() {
			a.exportSummary("xlsx")
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset Form", func() {
			a.resetForm()
		}),
		fyne.NewMenuItem("Preferences...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	a.undoItem = fyne.NewMenuItem("Undo Reset", func() {
		a.undoReset()
	})
	a.redoItem = fyne.NewMenuItem("Redo Reset", func() {
		a.redoReset()
	})
	editMenu := fyne.NewMenu("Edit", a.undoItem, a.redoItem)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Check Food Nutrition...", func() {
			a.showNutritionWindow()
		}),
		fyne.NewMenuItem("Compare Activity Levels", func() {
			a.showActivityComparison()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.mainMenu = fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu)
	a.refreshHistoryMenu()
	a.window.SetMainMenu(a.mainMenu)
}

// refreshHistoryMenu enables Undo/Redo Reset only when there is something to restore.
func (a *App) refreshHistoryMenu() {
	if a.undoItem == nil || a.redoItem == nil {
		return
	}
	a.undoItem.Disabled = !a.history.CanUndo()
	a.redoItem.Disabled = !a.history.CanRedo()
	if a.mainMenu != nil {
		a.mainMenu.Refresh()
	}
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Fitness Tracker",
		"Fitness Tracker\n\n"+
			"Estimates your daily caloric needs, checks today's intake\n"+
			"against your goal and suggests diet and workout plans.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.weight = widget.NewEntry()
	a.target = widget.NewEntry()
	a.height = widget.NewEntry()
	a.age = widget.NewEntry()
	a.consumed = widget.NewEntry()

	a.gender = widget.NewSelectEntry([]string{string(model.GenderMale), string(model.GenderFemale)})
	a.activity = widget.NewSelectEntry(toStrings(model.ActivityLevels()))
	a.diet = widget.NewSelectEntry([]string{string(model.DietVegetarian), string(model.DietNonVegetarian)})
	a.goal = widget.NewSelectEntry([]string{string(model.GoalLoseWeight), string(model.GoalGainWeight)})
	a.plan = widget.NewSelectEntry(toStrings(model.PlanKinds()))

	a.activity.SetPlaceHolder("sedentary, light, moderate, active, very active")
	a.diet.SetPlaceHolder("veg or nonveg")
	a.plan.SetPlaceHolder("cardio, strength or balanced")

	form := widget.NewForm(
		widget.NewFormItem(model.FieldCurrentWeight, a.weight),
		widget.NewFormItem(model.FieldTargetWeight, a.target),
		widget.NewFormItem(model.FieldHeight, a.height),
		widget.NewFormItem(model.FieldAge, a.age),
		widget.NewFormItem(model.FieldGender, a.gender),
		widget.NewFormItem(model.FieldActivityLevel, a.activity),
		widget.NewFormItem(model.FieldDietPreference, a.diet),
		widget.NewFormItem(model.FieldGoal, a.goal),
		widget.NewFormItem(model.FieldCaloriesConsumed, a.consumed),
		widget.NewFormItem(model.FieldFitnessPlan, a.plan),
	)

	submitBtn := newButtonWithTooltip("Submit", "Calculate calories and suggest plans", a.submit)
	submitBtn.Importance = widget.HighImportance
	resetBtn := newButtonWithTooltip("Reset", "Clear all fields (Edit > Undo Reset restores them)", a.resetForm)
	nutritionBtn := newButtonWithTooltip("Check Food Nutrition", "Look up the nutrition facts of a food", a.showNutritionWindow)

	a.resultLabel = widget.NewLabel("Fill in the form and press Submit.")
	a.resultLabel.Wrapping = fyne.TextWrapWord

	buttons := container.NewHBox(submitBtn, resetBtn, nutritionBtn)
	content := container.NewBorder(
		container.NewVBox(widget.NewLabelWithStyle("Fitness Tracker", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}), form, buttons),
		nil, nil, nil,
		container.NewVScroll(a.resultLabel),
	)
	return withToolTipLayer(content, a.window)
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// ─── Form ───────────────────────────────────────────

func (a *App) formInput() model.FormInput {
	return model.FormInput{
		CurrentWeight:    a.weight.Text,
		TargetWeight:     a.target.Text,
		Height:           a.height.Text,
		Age:              a.age.Text,
		Gender:           a.gender.Text,
		ActivityLevel:    a.activity.Text,
		DietPreference:   a.diet.Text,
		Goal:             a.goal.Text,
		CaloriesConsumed: a.consumed.Text,
		FitnessPlan:      a.plan.Text,
	}
}

func (a *App) setFormInput(in model.FormInput) {
	a.weight.SetText(in.CurrentWeight)
	a.target.SetText(in.TargetWeight)
	a.height.SetText(in.Height)
	a.age.SetText(in.Age)
	a.gender.SetText(in.Gender)
	a.activity.SetText(in.ActivityLevel)
	a.diet.SetText(in.DietPreference)
	a.goal.SetText(in.Goal)
	a.consumed.SetText(in.CaloriesConsumed)
	a.plan.SetText(in.FitnessPlan)
}

func (a *App) submit() {
	summary, err := engine.EvaluateForm(a.formInput())
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.lastSummary = &summary
	text := summary.Text()
	a.resultLabel.SetText(text)
	dialog.ShowInformation("Fitness Summary", text, a.window)
}

func (a *App) resetForm() {
	a.history.Push(Snapshot{Form: a.formInput(), Label: "Reset"})
	a.setFormInput(model.FormInput{})
	a.lastSummary = nil
	a.resultLabel.SetText("Fill in the form and press Submit.")
	a.refreshHistoryMenu()
}

func (a *App) undoReset() {
	restored, ok := a.history.Undo(Snapshot{Form: a.formInput(), Label: "Undo"})
	if !ok {
		dialog.ShowInformation("Nothing to Undo", "There is no reset to undo.", a.window)
		return
	}
	a.setFormInput(restored.Form)
	a.refreshHistoryMenu()
}

func (a *App) redoReset() {
	restored, ok := a.history.Redo(Snapshot{Form: a.formInput(), Label: "Redo"})
	if !ok {
		return
	}
	a.setFormInput(restored.Form)
	a.refreshHistoryMenu()
}

func (a *App) showActivityComparison() {
	req, err := a.formInput().Parse()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	rows := engine.CompareActivityLevels(req.Profile)

	table := widget.NewTable(
		func() (int, int) { return len(rows) + 1, 4 },
		func() fyne.CanvasObject { return widget.NewLabel("very active (current)") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText([]string{"Activity", "Daily kcal", "Lose", "Gain"}[id.Col])
				return
			}
			r := rows[id.Row-1]
			label.TextStyle = fyne.TextStyle{Bold: r.Current}
			switch id.Col {
			case 0:
				name := string(r.Level)
				if r.Current {
					name += " (current)"
				}
				label.SetText(name)
			case 1:
				label.SetText(fmt.Sprintf("%.2f", r.DailyCalories))
			case 2:
				label.SetText(fmt.Sprintf("%.2f", r.LossIntake))
			case 3:
				label.SetText(fmt.Sprintf("%.2f", r.GainIntake))
			}
		},
	)
	d := dialog.NewCustom("Activity Level Comparison", "Close", table, a.window)
	d.Resize(fyne.NewSize(560, 280))
	d.Show()
}

// ─── Export ───────────────────────────────────────────

func (a *App) exportSummary(format string) {
	if a.lastSummary == nil {
		dialog.ShowInformation("No summary", "Submit the form before exporting a summary.", a.window)
		return
	}
	summary := *a.lastSummary

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		// The exporters write by path; release the handle fyne opened.
		writer.Close()

		switch format {
		case "pdf":
			err = export.ExportPDF(path, summary)
		default:
			err = export.ExportExcel(path, summary)
		}
		if err != nil {
			log.Printf("[export] %s export failed: %v", format, err)
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberExportDir(filepath.Dir(path))
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Summary saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(fmt.Sprintf("fitness-summary-%s.%s", summary.ID, format))
	if a.config.LastExportDir != "" {
		if dir, err := storage.ListerForURI(storage.NewFileURI(a.config.LastExportDir)); err == nil {
			d.SetLocation(dir)
		}
	}
	d.Show()
}

func (a *App) rememberExportDir(dir string) {
	if a.config.LastExportDir == dir {
		return
	}
	a.config.LastExportDir = dir
	if err := a.saveConfig(); err != nil {
		log.Printf("[config] failed to save export directory: %v", err)
	}
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(a.configPath, a.config)
}
