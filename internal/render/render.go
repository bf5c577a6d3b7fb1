// Package render formats search results and replay boards for the terminal:
// plain or colored text, JSON, and markdown rendered through glamour.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/katalvlaran/mapcolor/coloring"
	"github.com/katalvlaran/mapcolor/replay"
)

// Format selects the output representation.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat indicates an unsupported --format value.
var ErrUnknownFormat = errors.New("render: unknown format")

// ParseFormat maps a flag value to a Format; "" means text, "md" markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Report is everything needed to present one search.
type Report struct {
	Order     []string
	NumColors int
	Result    *coloring.Result
	ShowTrace bool
	Palette   replay.Palette
}

func (r Report) palette() replay.Palette {
	if len(r.Palette) == 0 {
		return replay.DefaultPalette
	}

	return r.Palette
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// ProfileFor returns the color profile for w: Ascii unless w is a terminal.
func ProfileFor(w io.Writer) termenv.Profile {
	if !IsTerminal(w) {
		return termenv.Ascii
	}

	return termenv.ColorProfile()
}

// Swatch renders a palette color as a colored block followed by its name.
// Under the Ascii profile only the name is written.
func Swatch(s replay.Swatch, p termenv.Profile) string {
	if p == termenv.Ascii {
		return s.Name
	}
	block := p.String("  ").Background(p.Color(s.Hex))

	return block.String() + " " + s.Name
}

// Write renders r in the given format. Any profile other than Ascii turns on
// colored swatches for text and glamour rendering for markdown.
func Write(w io.Writer, f Format, r Report, p termenv.Profile) error {
	switch f {
	case FormatText:
		return Text(w, r, p)
	case FormatJSON:
		return JSON(w, r)
	case FormatMarkdown:
		md := Markdown(r)
		if p == termenv.Ascii {
			_, err := io.WriteString(w, md)
			return err
		}
		out, err := Glamour(md)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Glamour renders markdown for the terminal, picking a light or dark style
// from the background.
func Glamour(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("render: glamour: %w", err)
	}

	return r.Render(md)
}

func summary(r Report) string {
	res := r.Result
	if res.Solved {
		return fmt.Sprintf("solved with %d colors, %d regions, %d steps (%d trials, %d undos)",
			r.NumColors, len(r.Order), len(res.Trace), res.Stats.Trials, res.Stats.Undos)
	}

	return fmt.Sprintf("no solution with %d colors, %d regions, %d steps (%d trials, %d undos)",
		r.NumColors, len(r.Order), len(res.Trace), res.Stats.Trials, res.Stats.Undos)
}

// Text writes an aligned plain-text report.
func Text(w io.Writer, r Report, p termenv.Profile) error {
	pal := r.palette()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Result: %s\n", summary(r))
	if r.Result.Solved {
		fmt.Fprintln(tw)
		for _, id := range r.Order {
			c := r.Result.Assignment[id]
			fmt.Fprintf(tw, "%s\t%d\t%s\n", id, int(c), Swatch(pal.Swatch(c), p))
		}
	}
	if r.ShowTrace {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "#\tRegion\tAction\tOutcome\tExplanation")
		for i, s := range r.Result.Trace {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
				i+1, s.Region, replay.Action(s, pal), replay.Outcome(s), replay.Explain(s, pal))
		}
	}

	return tw.Flush()
}

// Markdown builds a markdown report.
func Markdown(r Report) string {
	pal := r.palette()
	var b strings.Builder
	b.WriteString("# Map coloring\n\n")
	fmt.Fprintf(&b, "**Result:** %s\n\n", summary(r))
	if r.Result.Solved && len(r.Order) > 0 {
		b.WriteString("| Region | Color | Name | Hex |\n|---|---|---|---|\n")
		for _, id := range r.Order {
			c := r.Result.Assignment[id]
			sw := pal.Swatch(c)
			fmt.Fprintf(&b, "| %s | %d | %s | `%s` |\n", id, int(c), sw.Name, sw.Hex)
		}
		b.WriteString("\n")
	}
	if r.ShowTrace && len(r.Result.Trace) > 0 {
		b.WriteString("## Search trace\n\n| # | Region | Action | Outcome | Explanation |\n|---|---|---|---|---|\n")
		for i, s := range r.Result.Trace {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
				i+1, s.Region, replay.Action(s, pal), replay.Outcome(s), replay.Explain(s, pal))
		}
	}

	return b.String()
}

type jsonColor struct {
	Region string `json:"region"`
	Color  int    `json:"color"`
	Name   string `json:"name"`
	Hex    string `json:"hex"`
}

type jsonStep struct {
	Region   string `json:"region"`
	Color    *int   `json:"color"`
	Accepted bool   `json:"accepted"`
	Undo     bool   `json:"undo"`
}

type jsonReport struct {
	Solved     bool        `json:"solved"`
	NumColors  int         `json:"num_colors"`
	Order      []string    `json:"order"`
	Assignment []jsonColor `json:"assignment"`
	Trials     int         `json:"trials"`
	Accepted   int         `json:"accepted"`
	Undos      int         `json:"undos"`
	MaxDepth   int         `json:"max_depth"`
	Trace      []jsonStep  `json:"trace,omitempty"`
}

// JSON writes an indented JSON report. The assignment is a list in region
// order so that the order survives decoding in any language.
func JSON(w io.Writer, r Report) error {
	pal := r.palette()
	res := r.Result
	out := jsonReport{
		Solved:    res.Solved,
		NumColors: r.NumColors,
		Order:     r.Order,
		Trials:    res.Stats.Trials,
		Accepted:  res.Stats.Accepted,
		Undos:     res.Stats.Undos,
		MaxDepth:  res.Stats.MaxDepth,
	}
	if res.Solved {
		out.Assignment = make([]jsonColor, 0, len(r.Order))
		for _, id := range r.Order {
			c := res.Assignment[id]
			sw := pal.Swatch(c)
			out.Assignment = append(out.Assignment, jsonColor{Region: id, Color: int(c), Name: sw.Name, Hex: sw.Hex})
		}
	}
	if r.ShowTrace {
		out.Trace = make([]jsonStep, len(res.Trace))
		for i, s := range res.Trace {
			out.Trace[i] = jsonStep{Region: s.Region, Accepted: s.Accepted, Undo: s.Undo}
			if !s.Undo {
				c := int(s.Color)
				out.Trace[i].Color = &c
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
