package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"treehouse-guestlist/internal/models"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type visitorRecord struct {
	Name   string            `json:"name"`
	Action models.ActionKind `json:"action"`
	Note   string            `json:"note,omitempty"`
	Age    int8              `json:"age"`
}

// CheckFormat reports whether format is a known dump format
func CheckFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, "":
		return nil
	}
	return fmt.Errorf("unknown dump format %q", format)
}

// Dump writes the final list of visitors in the given format
func Dump(w io.Writer, visitors []models.Visitor, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "The final list of visitors:"); err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		return dumpJSON(w, visitors)
	default:
		return dumpText(w, visitors)
	}
}

func dumpText(w io.Writer, visitors []models.Visitor) error {
	sep := strings.Repeat("-", 60)
	var b strings.Builder

	b.WriteString(sep + "\n")
	for _, v := range visitors {
		fmt.Fprintf(&b, "Name: %s\n", v.Name)
		fmt.Fprintf(&b, "Action: %s\n", v.Action.Kind())
		if note := models.NoteOf(v.Action); note != "" {
			fmt.Fprintf(&b, "Note: %s\n", note)
		}
		fmt.Fprintf(&b, "Age: %d\n", v.Age)
		b.WriteString(sep + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func dumpJSON(w io.Writer, visitors []models.Visitor) error {
	records := make([]visitorRecord, 0, len(visitors))
	for _, v := range visitors {
		records = append(records, visitorRecord{
			Name:   v.Name,
			Action: v.Action.Kind(),
			Note:   models.NoteOf(v.Action),
			Age:    v.Age,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal visitors: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
