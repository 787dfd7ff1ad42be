package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/fitness-tracker/internal/engine"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in the exported workbook.
const (
	SheetSummary  = "Summary"
	SheetPlans    = "Plans"
	SheetActivity = "Activity Levels"
)

// ExportExcel writes the summary to a workbook with a figures sheet, a plans
// sheet and an activity level comparison sheet.
func ExportExcel(path string, s engine.Summary) error {
	if s.ID == "" {
		return fmt.Errorf("no summary to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	p := s.Request.Profile
	c := s.Calories
	summaryRows := [][]interface{}{
		{"Report", s.ID},
		{"Created", s.CreatedAt},
		{"Current Weight (kg)", p.CurrentWeightKg},
		{"Target Weight (kg)", p.TargetWeightKg},
		{"Height (cm)", p.HeightCm},
		{"Age", p.Age},
		{"Gender", string(p.Gender)},
		{"Activity Level", string(p.ActivityLevel)},
		{"Diet Preference", string(p.DietPreference)},
		{"Goal", string(s.Request.Goal)},
		{"Calories Consumed", s.Request.CaloriesConsumed},
		{"BMR (kcal/day)", round2(c.BMR)},
		{"Maintenance (kcal/day)", round2(c.DailyCalories)},
		{"Target Intake (kcal/day)", round2(c.TargetIntake)},
		{"To Lose Weight (kcal/day)", round2(c.LossIntake)},
		{"To Gain Weight (kcal/day)", round2(c.GainIntake)},
		{"Progress", s.Progress},
	}
	if err := writeRows(f, SheetSummary, summaryRows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(summaryRows)), bold); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSummary, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSummary, "B", "B", 60); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetPlans); err != nil {
		return fmt.Errorf("failed to create plans sheet: %w", err)
	}
	var planRows [][]interface{}
	for _, section := range []struct {
		title string
		body  string
	}{
		{"Diet Plan", s.DietText()},
		{"Workout Plan", s.WorkoutText()},
		{"Fitness Plan", s.FitnessPlan},
	} {
		for i, line := range strings.Split(section.body, "\n") {
			title := ""
			if i == 0 {
				title = section.title
			}
			planRows = append(planRows, []interface{}{title, line})
		}
	}
	if err := writeRows(f, SheetPlans, planRows); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetPlans, "A", "A", 16); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetPlans, "B", "B", 90); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetActivity); err != nil {
		return fmt.Errorf("failed to create activity sheet: %w", err)
	}
	activityRows := [][]interface{}{
		{"Activity Level", "Factor", "Maintenance", "Lose Weight", "Gain Weight", "Current"},
	}
	for _, row := range engine.CompareActivityLevels(p) {
		current := ""
		if row.Current {
			current = "yes"
		}
		activityRows = append(activityRows, []interface{}{
			string(row.Level), row.Multiplier,
			round2(row.DailyCalories), round2(row.LossIntake), round2(row.GainIntake),
			current,
		})
	}
	if err := writeRows(f, SheetActivity, activityRows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetActivity, "A1", "F1", bold); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// writeRows fills sheet from A1 downwards.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cellRef, err)
			}
		}
	}
	return nil
}
