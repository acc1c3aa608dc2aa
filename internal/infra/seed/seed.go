// Package seed reads and writes board contents and replay scripts as YAML.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bstc-oman/dispatch/internal/domain"
	"gopkg.in/yaml.v3"
)

// fileData is the YAML structure of a seed file.
type fileData struct {
	Jobs []domain.Job `yaml:"jobs"`
}

// LoadFile reads jobs from a seed file. Unknown keys are rejected.
func LoadFile(path string) ([]domain.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	jobs, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return jobs, nil
}

// Decode reads jobs from YAML.
func Decode(r io.Reader) ([]domain.Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fileData
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return f.Jobs, nil
}

// Encode writes jobs as a seed document that Decode reads back.
func Encode(w io.Writer, jobs []domain.Job) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fileData{Jobs: jobs}); err != nil {
		return fmt.Errorf("encode jobs: %w", err)
	}
	return enc.Close()
}

// SampleJobs returns the built-in sample jobs shown on a fresh dashboard.
func SampleJobs() []domain.Job {
	job := func(id string, stage domain.Stage, client, callTime, team, desc string) domain.Job {
		return domain.Job{
			ID:       id,
			ColumnID: stage,
			Fields: map[string]string{
				domain.FieldClient:      client,
				domain.FieldCallTime:    callTime,
				domain.FieldTeam:        team,
				domain.FieldDescription: desc,
			},
		}
	}
	return []domain.Job{
		job("1", domain.StageDispatched, "Al Manar Transport", "2025-08-12 09:30 AM", "Team Alpha", "AC compressor issue in truck #MT-001"),
		job("2", domain.StageInspection, "Oman Logistics Co.", "2025-08-12 08:15 AM", "Team Beta", "Refrigeration unit temperature control"),
		job("3", domain.StageRepairing, "Fresh Food Delivery", "2025-08-11 02:45 PM", "Team Gamma", "Condenser fan replacement"),
		job("4", domain.StageCompleted, "Gulf Transport Services", "2025-08-11 11:20 AM", "Team Alpha", "Regular maintenance check"),
		job("5", domain.StageDispatched, "Muscat Cold Chain", "2025-08-12 10:00 AM", "Team Beta", "Emergency AC repair"),
		job("6", domain.StageCompleted, "Desert Rose Logistics", "2025-08-11 04:30 PM", "Team Gamma", "Thermostat calibration"),
	}
}

// SampleKanban returns the columns and items of the plain task board.
func SampleKanban() ([]domain.Column[string], []domain.Item[string]) {
	cols := make([]domain.Column[string], 0, len(domain.AllStages()))
	for _, s := range domain.AllStages() {
		cols = append(cols, domain.Column[string]{ID: string(s), Label: s.Display()})
	}
	item := func(id string, col domain.Stage, content string) domain.Item[string] {
		return domain.Item[string]{
			ID:       id,
			ColumnID: string(col),
			Fields:   map[string]string{domain.FieldContent: content},
		}
	}
	return cols, []domain.Item[string]{
		item("1", domain.StageDispatched, "Market Research"),
		item("2", domain.StageDispatched, "Another Item"),
		item("3", domain.StageInspection, "Inspection Research"),
		item("4", domain.StageInspection, "Another Item"),
		item("5", domain.StageRepairing, "Repairing Research"),
		item("6", domain.StageRepairing, "Another Item"),
		item("7", domain.StageCompleted, "Completed Research"),
	}
}
