package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/pstuifzand/tui-codesurfer/internal/dimensions"
	"github.com/pstuifzand/tui-codesurfer/internal/lines"
	"github.com/pstuifzand/tui-codesurfer/internal/surfer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	frameFormat     string
	frameLineHeight float64
)

// frameCmd prints the computed styles of a single frame
var frameCmd = &cobra.Command{
	Use:   "frame DECK PROGRESS",
	Short: "Print the styles of one animation frame",
	Long: `Evaluates the deck at a global progress value and prints the opacity,
height and visibility of every line. Progress 0 is the first step, 1 the
second, and 0.5 halfway between them.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid progress %q: %w", args[1], err)
		}
		deck, err := loadDeck(args[0])
		if err != nil {
			return err
		}
		s := surfer.New(deck, surfer.Options{
			Lines:      &lines.Options{UnfocusedOpacity: cfg.Opacity()},
			Dimensions: dimensions.Static{LineHeight: frameLineHeight},
			Logger:     logger,
		})
		return writeFrame(cmd.OutOrStdout(), s.Frame(progress), frameFormat)
	},
}

func init() {
	frameCmd.Flags().StringVarP(&frameFormat, "format", "f", "table", "Output format: table or yaml")
	frameCmd.Flags().Float64Var(&frameLineHeight, "line-height", 1, "Line height used for animated heights")
}

type frameDoc struct {
	Progress float64   `yaml:"progress"`
	Pair     int       `yaml:"pair"`
	T        float64   `yaml:"t"`
	Step     int       `yaml:"step"`
	Title    string    `yaml:"title,omitempty"`
	Subtitle string    `yaml:"subtitle,omitempty"`
	Lines    []lineDoc `yaml:"lines"`
}

type lineDoc struct {
	ID       int       `yaml:"id"`
	Number   int       `yaml:"number"`
	Category string    `yaml:"category"`
	Opacity  float64   `yaml:"opacity"`
	Height   *float64  `yaml:"height,omitempty"`
	Hidden   bool      `yaml:"hidden,omitempty"`
	Marker   bool      `yaml:"marker,omitempty"`
	Text     string    `yaml:"text"`
	Tokens   []float64 `yaml:"tokens,flow,omitempty"`
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func newFrameDoc(f surfer.Frame) frameDoc {
	doc := frameDoc{
		Progress: round(f.Progress),
		Pair:     f.Pair + 1,
		T:        round(f.T),
		Step:     f.Step + 1,
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Lines:    make([]lineDoc, 0, len(f.Lines)),
	}
	for _, l := range f.Lines {
		ld := lineDoc{
			ID:       int(l.ID),
			Number:   l.LineNumber,
			Category: l.Category.String(),
			Opacity:  round(l.Opacity),
			Hidden:   l.Hidden(),
			Marker:   l.IsMarker,
		}
		if l.HasHeight {
			h := round(l.Height)
			ld.Height = &h
		}
		animated := false
		for _, tok := range l.Tokens {
			ld.Text += tok.Text
			if tok.Opacity != 1 {
				animated = true
			}
		}
		if animated {
			ld.Tokens = make([]float64, len(l.Tokens))
			for i, tok := range l.Tokens {
				ld.Tokens[i] = round(tok.Opacity)
			}
		}
		doc.Lines = append(doc.Lines, ld)
	}
	return doc
}

func writeFrame(w io.Writer, f surfer.Frame, format string) error {
	doc := newFrameDoc(f)
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode frame: %w", err)
		}
		return enc.Close()
	case "table":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	fmt.Fprintf(w, "progress %g: pair %d, t=%g, step %d", doc.Progress, doc.Pair, doc.T, doc.Step)
	if doc.Title != "" {
		fmt.Fprintf(w, " (%s)", doc.Title)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLINE\tCATEGORY\tOPACITY\tHEIGHT\tSTATE\tTEXT")
	for _, l := range doc.Lines {
		height := "-"
		if l.Height != nil {
			height = strconv.FormatFloat(*l.Height, 'g', -1, 64)
		}
		state := "shown"
		if l.Hidden {
			state = "hidden"
		}
		if l.Marker {
			state += ",gap"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%g\t%s\t%s\t%s\n",
			l.ID, l.Number, l.Category, l.Opacity, height, state, l.Text)
	}
	return tw.Flush()
}
