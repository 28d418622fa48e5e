// ABOUTME: Export and import functionality for scorecard data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats on any Repository.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/scorecard/internal/models"
)

// ExportVersion is the version of the export document format.
const ExportVersion = "1.0"

// ExportData represents the full export format for scorecard data.
type ExportData struct {
	Version    string                 `json:"version" yaml:"version"`
	ExportID   uuid.UUID              `json:"export_id" yaml:"export_id"`
	ExportedAt time.Time              `json:"exported_at" yaml:"exported_at"`
	Tool       string                 `json:"tool" yaml:"tool"`
	Weeks      []*models.WeeklyRecord `json:"weeks" yaml:"weeks"`
}

// GetAllData retrieves all weeks for export.
func GetAllData(repo Repository) (*ExportData, error) {
	weeks, err := repo.ListWeeks()
	if err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}

	return &ExportData{
		Version:    ExportVersion,
		ExportID:   uuid.New(),
		ExportedAt: time.Now().UTC(),
		Tool:       "scorecard",
		Weeks:      weeks,
	}, nil
}

// ImportData upserts every week of an export. Importing the same file twice
// leaves the store unchanged. Every record is checked before the first write,
// so a malformed file imports nothing.
func ImportData(repo Repository, data *ExportData) (int, error) {
	for i, w := range data.Weeks {
		if w == nil {
			return 0, fmt.Errorf("import week at index %d: empty record", i)
		}
		if w.WeekNumber < 1 {
			return 0, fmt.Errorf("import week at index %d: %w", i, models.ErrInvalidWeek)
		}
	}

	for i, w := range data.Weeks {
		if err := repo.UpsertWeek(w); err != nil {
			return i, fmt.Errorf("import week %d: %w", w.WeekNumber, err)
		}
	}
	return len(data.Weeks), nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML with dates as plain calendar days.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := GetAllData(repo)
	if err != nil {
		return nil, err
	}

	doc := yamlExport{
		Version:    data.Version,
		ExportID:   data.ExportID.String(),
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Weeks:      make([]yamlWeek, 0, len(data.Weeks)),
	}
	for _, w := range data.Weeks {
		doc.Weeks = append(doc.Weeks, toYAMLWeek(w))
	}

	return yaml.Marshal(doc)
}

type yamlExport struct {
	Version    string     `yaml:"version"`
	ExportID   string     `yaml:"export_id"`
	ExportedAt string     `yaml:"exported_at"`
	Tool       string     `yaml:"tool"`
	Weeks      []yamlWeek `yaml:"weeks"`
}

type yamlWeek struct {
	WeekNumber                int     `yaml:"week_number"`
	SubmissionDate            string  `yaml:"submission_date"`
	TotalHours                float64 `yaml:"total_hours"`
	AutomatedHours            float64 `yaml:"automated_hours"`
	ManualHours               float64 `yaml:"manual_hours"`
	ActiveClients             int     `yaml:"active_clients"`
	RevenueRatio              float64 `yaml:"revenue_ratio"`
	RecurringRevenuePct       float64 `yaml:"recurring_revenue_pct"`
	AutomatedThisWeek         string  `yaml:"automated_this_week,omitempty"`
	BiggestBottleneck         string  `yaml:"biggest_bottleneck,omitempty"`
	AutomationIndex           float64 `yaml:"automation_index"`
	TimeSavedVsBaseline       float64 `yaml:"time_saved_vs_baseline"`
	RevenueEfficiencyMultiple float64 `yaml:"revenue_efficiency_multiple"`
	ClientCapacityScore       float64 `yaml:"client_capacity_score"`
}

func toYAMLWeek(w *models.WeeklyRecord) yamlWeek {
	return yamlWeek{
		WeekNumber:                w.WeekNumber,
		SubmissionDate:            w.SubmissionDate.Format(models.DateLayout),
		TotalHours:                w.TotalHours,
		AutomatedHours:            w.AutomatedHours,
		ManualHours:               w.ManualHours,
		ActiveClients:             w.ActiveClients,
		RevenueRatio:              w.RevenueRatio,
		RecurringRevenuePct:       w.RecurringRevenuePct,
		AutomatedThisWeek:         w.AutomatedThisWeek,
		BiggestBottleneck:         w.BiggestBottleneck,
		AutomationIndex:           w.AutomationIndex,
		TimeSavedVsBaseline:       w.TimeSavedVsBaseline,
		RevenueEfficiencyMultiple: w.RevenueEfficiencyMultiple,
		ClientCapacityScore:       w.ClientCapacityScore,
	}
}

func (y yamlWeek) record() (*models.WeeklyRecord, error) {
	var date time.Time
	if y.SubmissionDate != "" {
		var err error
		date, err = parseDate(y.SubmissionDate)
		if err != nil {
			return nil, fmt.Errorf("parse submission date for week %d: %w", y.WeekNumber, err)
		}
	}
	return &models.WeeklyRecord{
		WeekNumber:                y.WeekNumber,
		SubmissionDate:            date,
		TotalHours:                y.TotalHours,
		AutomatedHours:            y.AutomatedHours,
		ManualHours:               y.ManualHours,
		ActiveClients:             y.ActiveClients,
		RevenueRatio:              y.RevenueRatio,
		RecurringRevenuePct:       y.RecurringRevenuePct,
		AutomatedThisWeek:         y.AutomatedThisWeek,
		BiggestBottleneck:         y.BiggestBottleneck,
		AutomationIndex:           y.AutomationIndex,
		TimeSavedVsBaseline:       y.TimeSavedVsBaseline,
		RevenueEfficiencyMultiple: y.RevenueEfficiencyMultiple,
		ClientCapacityScore:       y.ClientCapacityScore,
	}, nil
}

// ExportMarkdown exports all weeks as a Markdown table followed by the
// weekly notes.
func ExportMarkdown(repo Repository) (string, error) {
	weeks, err := repo.ListWeeks()
	if err != nil {
		return "", fmt.Errorf("list weeks: %w", err)
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Scorecard Export - %s\n\n", now.Format(models.DateLayout)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(weeks) == 0 {
		sb.WriteString("No weeks recorded.\n")
		return sb.String(), nil
	}

	sb.WriteString("## Weeks\n\n")
	sb.WriteString("| Week | Date | Total h | Automated h | Clients | Revenue ratio | Recurring % | Automation % | Saved h | Efficiency | Capacity |\n")
	sb.WriteString("|------|------|---------|-------------|---------|---------------|-------------|--------------|---------|------------|----------|\n")
	for _, w := range weeks {
		sb.WriteString(fmt.Sprintf("| %d | %s | %.1f | %.1f | %d | %.2f | %.1f | %.1f | %.1f | %.2f | %.2f |\n",
			w.WeekNumber, w.SubmissionDate.Format(models.DateLayout),
			w.TotalHours, w.AutomatedHours, w.ActiveClients,
			w.RevenueRatio, w.RecurringRevenuePct,
			w.AutomationIndex, w.TimeSavedVsBaseline,
			w.RevenueEfficiencyMultiple, w.ClientCapacityScore))
	}

	sb.WriteString("\n## Notes\n\n")
	for _, w := range weeks {
		if w.AutomatedThisWeek == "" && w.BiggestBottleneck == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("### Week %d\n\n", w.WeekNumber))
		if w.AutomatedThisWeek != "" {
			sb.WriteString(fmt.Sprintf("- Automated: %s\n", w.AutomatedThisWeek))
		}
		if w.BiggestBottleneck != "" {
			sb.WriteString(fmt.Sprintf("- Bottleneck: %s\n", w.BiggestBottleneck))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(repo Repository, data []byte) (int, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return 0, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return ImportData(repo, &exportData)
}

// ImportYAML imports data produced by ExportYAML.
func ImportYAML(repo Repository, data []byte) (int, error) {
	var doc yamlExport
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("unmarshal YAML: %w", err)
	}

	exportData := &ExportData{Version: doc.Version, Tool: doc.Tool}
	for _, yw := range doc.Weeks {
		w, err := yw.record()
		if err != nil {
			return 0, err
		}
		exportData.Weeks = append(exportData.Weeks, w)
	}
	return ImportData(repo, exportData)
}
