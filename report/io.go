package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteJSON writes the envelope to a JSON file.
func WriteJSON(env *Envelope, filename string) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// ReadJSON reads an envelope from a JSON file.
func ReadJSON(filename string) (*Envelope, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}

	return &env, nil
}

// ToJSON converts the envelope to a JSON string.
func ToJSON(env *Envelope) (string, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON parses an envelope from a JSON string.
func FromJSON(jsonStr string) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(jsonStr), &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// WriteCSV writes the ranking table to a CSV file.
func WriteCSV(env *Envelope, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := WriteCSVTo(f, env); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSVTo writes the ranking table to w: one row per alternative in rank
// order. Envelopes without a result cannot be tabulated.
func WriteCSVTo(w io.Writer, env *Envelope) error {
	if env.Result == nil {
		return fmt.Errorf("report %s has no result to export", env.Metadata.ID)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "alternative_id", "name", "score"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range env.Result.Rankings {
		record := []string{
			strconv.Itoa(r.Rank),
			r.AlternativeID,
			r.Name,
			strconv.FormatFloat(r.Score, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", r.Rank, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
