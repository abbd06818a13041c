package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"smart-task-scheduler/internal/task"
)

// Batch file formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Record is one task submission in a batch file.
type Record struct {
	Title    string `yaml:"title"    json:"title"    toml:"title"`
	Priority string `yaml:"priority" json:"priority" toml:"priority"`
	Deadline string `yaml:"deadline" json:"deadline" toml:"deadline"`
}

func (r Record) toInput() task.CreateInput {
	return task.CreateInput{
		Title:    r.Title,
		Priority: r.Priority,
		Deadline: r.Deadline,
	}
}

// batchDocument is the top-level shape of a batch file. TOML has no top-level
// arrays, so it always uses [[tasks]] tables.
type batchDocument struct {
	Tasks []Record `yaml:"tasks" json:"tasks" toml:"tasks"`
}

// FormatFromPath guesses the batch format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// DecodeRecords reads a batch of records. YAML and JSON accept either a bare
// list or a document with a "tasks" list.
func DecodeRecords(r io.Reader, format string) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	var doc batchDocument
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		var list []Record
		if err := yaml.Unmarshal(data, &list); err == nil {
			return list, nil
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
			var list []Record
			if err := json.Unmarshal(trimmed, &list); err != nil {
				return nil, fmt.Errorf("decode json: %w", err)
			}
			return list, nil
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return doc.Tasks, nil
}

// Order inserts records in file order. Rejected records are reported by
// their 1-based index and skipped.
func (h *handler) Order(ctx context.Context, records []Record, out io.Writer) (int, error) {
	rejected := 0
	for i, rec := range records {
		if _, err := h.uc.Create(ctx, rec.toInput()); err != nil {
			rejected++
			h.l.Warnf(ctx, "cli.Order record %d: %v", i+1, err)
			fmt.Fprintf(out, "Skipped record %d: %v\n", i+1, err)
		}
	}

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "cli.Order List: %v", err)
		return rejected, err
	}
	printLines(out, output)
	return rejected, nil
}
