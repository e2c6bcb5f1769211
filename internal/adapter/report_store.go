package adapter

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "elmdecode.dev/pkg/elmdecode/internal/model"
)

// ReportStore persists try-all reports.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.TryAllReport) error
	LoadReport(ctx context.Context, path m.Path) (m.TryAllReport, error)
}

type reportDocument struct {
	Input     string           `yaml:"input"`
	Succeeded int              `yaml:"succeeded"`
	Failed    int              `yaml:"failed"`
	Results   []reportEntryDoc `yaml:"results"`
}

type reportEntryDoc struct {
	Decoder string `yaml:"decoder"`
	Status  string `yaml:"status"`
	Failure string `yaml:"failure,omitempty"`
	Value   string `yaml:"value"`
}

// YAMLReportStore writes reports as YAML documents through a SourceFSAdapter.
type YAMLReportStore struct {
	fs SourceFSAdapter
}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore(fs SourceFSAdapter) *YAMLReportStore {
	return &YAMLReportStore{fs: fs}
}

// SaveReport writes report to path, replacing any previous file.
func (s *YAMLReportStore) SaveReport(ctx context.Context, path m.Path, report m.TryAllReport) error {
	succeeded, failed := report.Partition()

	doc := reportDocument{
		Input:     report.Input,
		Succeeded: len(succeeded),
		Failed:    len(failed),
		Results:   make([]reportEntryDoc, 0, len(report.Outcomes)),
	}

	for _, outcome := range report.Outcomes {
		entry := reportEntryDoc{
			Decoder: string(outcome.Candidate),
			Status:  string(outcome.Result.Tag),
			Value:   outcome.Result.Value,
		}

		if outcome.Result.Failure != m.FailureNone {
			entry.Failure = outcome.Result.Failure.String()
		}

		doc.Results = append(doc.Results, entry)
	}

	content, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := s.fs.WriteFile(ctx, path, content, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (s *YAMLReportStore) LoadReport(ctx context.Context, path m.Path) (m.TryAllReport, error) {
	content, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		if os.IsNotExist(err) {
			return m.TryAllReport{}, fmt.Errorf("report %s not found: %w", path, err)
		}

		return m.TryAllReport{}, err
	}

	var doc reportDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return m.TryAllReport{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	report := m.TryAllReport{Input: doc.Input, Outcomes: make([]m.Outcome, 0, len(doc.Results))}

	for _, entry := range doc.Results {
		result := m.SuccessResult(entry.Value)
		if entry.Status != string(m.TagSuccess) {
			result = m.ErrorResult(parseFailureKind(entry.Failure), entry.Value)
		}

		report.Outcomes = append(report.Outcomes, m.Outcome{Candidate: m.Candidate(entry.Decoder), Result: result})
	}

	return report, nil
}

func parseFailureKind(name string) m.FailureKind {
	for kind := m.FailureDecode; kind <= m.FailurePatch; kind++ {
		if kind.String() == name {
			return kind
		}
	}

	return m.FailureRuntime
}
