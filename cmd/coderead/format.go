package main

import (
	"encoding/json"
	"fmt"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// formatJSON marshals a response with stable indentation.
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// entityJSON is the CLI projection of an extracted entity.
type entityJSON struct {
	QualifiedName string `json:"qualifiedName"`
	Kind          string `json:"kind"`
	StartLine     int    `json:"startLine"`
	EndLine       int    `json:"endLine"`
	ClassName     string `json:"className,omitempty"`
	Depth         int    `json:"depth"`
}

// changesJSON summarizes the change map counters.
type changesJSON struct {
	Added    int `json:"added"`
	Deleted  int `json:"deleted"`
	Modified int `json:"modified"`
}

func entitiesToJSON(a *analysis) []entityJSON {
	out := make([]entityJSON, 0, len(a.Entities))
	for _, e := range a.Entities {
		out = append(out, entityJSON{
			QualifiedName: e.QualifiedName(),
			Kind:          string(e.Kind),
			StartLine:     e.StartLine,
			EndLine:       e.EndLine,
			ClassName:     e.ClassName,
			Depth:         e.Depth,
		})
	}
	return out
}

func changesToJSON(a *analysis) changesJSON {
	return changesJSON{
		Added:    a.Changes.Added,
		Deleted:  a.Changes.Deleted,
		Modified: a.Changes.Modified,
	}
}
