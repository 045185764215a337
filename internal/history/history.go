// Package history reads draw histories from JSON files for the CLI.
package history

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lox/drawstats/internal/lottery"
)

// History is a validated, windowed draw list.
type History struct {
	Draws   []lottery.Draw // newest first
	Total   int            // records read
	Dropped int            // records rejected by validation
}

// record is the exported draw format. Zones stay raw so a malformed zone
// drops its record instead of failing the file.
type record struct {
	ID    string          `json:"drawNumber"`
	Date  string          `json:"drawDate"`
	Front json.RawMessage `json:"frontNumbers"`
	Back  json.RawMessage `json:"backNumbers"`
	Prize string          `json:"prize,omitempty"`
	Sales string          `json:"sales,omitempty"`
}

// Decode reads a JSON array of raw draw records. Only a document that is not
// an array is an error; records that do not decode come back with nil zones
// and are rejected later by lottery.Validate.
func Decode(r io.Reader) ([]lottery.RawDraw, error) {
	var items []json.RawMessage
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode draws: %w", err)
	}

	raw := make([]lottery.RawDraw, len(items))
	for i, item := range items {
		var rec record
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		raw[i] = lottery.RawDraw{
			ID:    rec.ID,
			Date:  rec.Date,
			Front: numbers(rec.Front),
			Back:  numbers(rec.Back),
			Prize: rec.Prize,
			Sales: rec.Sales,
		}
	}
	return raw, nil
}

// numbers returns nil unless msg is a JSON array of numbers.
func numbers(msg json.RawMessage) []float64 {
	if len(msg) == 0 {
		return nil
	}
	var values []float64
	if err := json.Unmarshal(msg, &values); err != nil {
		return nil
	}
	return values
}

// Read decodes, validates and windows a history. window <= 0 keeps every draw.
func Read(r io.Reader, window int) (*History, error) {
	raw, err := Decode(r)
	if err != nil {
		return nil, err
	}
	valid := lottery.Validate(raw)
	return &History{
		Draws:   lottery.Window(valid, window),
		Total:   len(raw),
		Dropped: len(raw) - len(valid),
	}, nil
}

// Load reads a history file.
func Load(path string, window int) (*History, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open draws: %w", err)
	}
	defer f.Close()
	return Read(f, window)
}
