package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/ytget/lotto-picker/internal/model"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how records are written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ballForeground is the digit colour on every ball
const ballForeground = "#1E1E1E"

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Renderer writes draw records in one format
type Renderer struct {
	format Format
	color  bool
}

// NewRenderer creates a renderer; color only affects FormatText
func NewRenderer(format Format, color bool) *Renderer {
	return &Renderer{format: format, color: color}
}

// Write renders records to w
func (r *Renderer) Write(w io.Writer, records []*model.DrawRecord) error {
	switch r.format {
	case FormatText:
		return r.writeText(w, records)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
}

func (r *Renderer) writeText(w io.Writer, records []*model.DrawRecord) error {
	lr := lipgloss.NewRenderer(w)
	for _, record := range records {
		line := record.Result.String()
		if r.color {
			line = Balls(lr, record)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Balls renders a record as coloured balls; hand-picked numbers are underlined
func Balls(lr *lipgloss.Renderer, record *model.DrawRecord) string {
	balls := make([]string, 0, len(record.Result))
	for _, n := range record.Result {
		style := lr.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color(ballForeground)).
			Background(lipgloss.Color(model.CategoryOf(n).Hex())).
			Underline(record.IsPicked(n))
		balls = append(balls, style.Render(fmt.Sprintf("%2s", strconv.Itoa(n))))
	}
	return strings.Join(balls, " ")
}
