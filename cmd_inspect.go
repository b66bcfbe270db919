package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/pstuifzand/tui-codesurfer/internal/lines"
	"github.com/pstuifzand/tui-codesurfer/internal/model"
	"github.com/pstuifzand/tui-codesurfer/internal/surfer"
	"github.com/spf13/cobra"
)

var (
	inspectPair int
	inspectDump bool
)

// inspectCmd prints how each step pair is classified
var inspectCmd = &cobra.Command{
	Use:   "inspect DECK",
	Short: "Show how lines are classified between steps",
	Long: `Prints, for every pair of consecutive steps, the category of each line,
its fade-in and fade-out ranks and its focus on both sides.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := loadDeck(args[0])
		if err != nil {
			return err
		}
		s := surfer.New(deck, surfer.Options{
			Lines:  &lines.Options{UnfocusedOpacity: cfg.Opacity()},
			Logger: logger,
		})
		return writeInspect(cmd.OutOrStdout(), s, inspectPair, inspectDump)
	},
}

func init() {
	inspectCmd.Flags().IntVarP(&inspectPair, "pair", "p", 0, "Only show pair N (1-based, 0 for all)")
	inspectCmd.Flags().BoolVar(&inspectDump, "dump", false, "Dump the raw transition structures")
}

// pairCount is the number of transitions a surfer can evaluate
func pairCount(s *surfer.Surfer) int {
	return max(1, s.StepCount()-1)
}

func writeInspect(w io.Writer, s *surfer.Surfer, pair int, dump bool) error {
	if s.StepCount() == 0 {
		return fmt.Errorf("deck has no steps")
	}
	n := pairCount(s)
	first, last := 0, n-1
	if pair != 0 {
		if pair < 1 || pair > n {
			return fmt.Errorf("pair %d out of range (1-%d)", pair, n)
		}
		first, last = pair-1, pair-1
	}

	steps := s.Deck().Steps
	for i := first; i <= last; i++ {
		tr := s.Transition(i)
		next := min(i+1, len(steps)-1)
		fmt.Fprintf(w, "pair %d: %s -> %s\n", i+1, stepLabel(steps, i), stepLabel(steps, next))

		if dump {
			cs := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
			cs.Fdump(w, tr.Lines)
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCATEGORY\tIN\tOUT\tPREV\tNEXT\tTEXT")
		for _, lt := range tr.Lines {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				lt.Pair.ID,
				lt.Category,
				rank(lt.FadeInRank),
				rank(lt.FadeOutRank),
				recordLabel(lt.Pair.Prev),
				recordLabel(lt.Pair.Next),
				strings.TrimSpace(s.Deck().Line(lt.Pair.ID).Text()))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func stepLabel(steps []model.Step, i int) string {
	if title := steps[i].Title; title != "" {
		return fmt.Sprintf("%d (%s)", i+1, title)
	}
	return strconv.Itoa(i + 1)
}

func rank(r int) string {
	if r < 0 {
		return "-"
	}
	return strconv.Itoa(r)
}

// recordLabel summarizes one side of a line pair
func recordLabel(r *model.LineRecord) string {
	if r == nil {
		return "absent"
	}
	label := focusLabel(r.Focus)
	if r.InsideSkip {
		label += ",skip"
	}
	if r.IsTransition {
		label += ",gap"
	}
	return label
}

func focusLabel(f model.Focus) string {
	switch {
	case f.IsTokens():
		parts := make([]string, 0, f.Tokens.Len())
		for _, i := range f.Tokens.Indices() {
			parts = append(parts, strconv.Itoa(i))
		}
		return "tokens[" + strings.Join(parts, " ") + "]"
	case f.IsLine():
		return "line"
	default:
		return "none"
	}
}
