// Command scrape parses an HTML document or fragment and prints the parts
// of it matching a CSS selector.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/scrape"
	"github.com/heathj/scrape/dom"
	"github.com/heathj/scrape/selector"
)

var (
	flagSelector string
	flagWithin   string
	flagFragment bool
	flagFirst    bool
	flagInner    bool
	flagText     bool
	flagAttr     string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "scrape [file]",
	Short: "Query HTML with CSS selectors",
	Long: `scrape parses an HTML document (or fragment, with --fragment) from a file
or stdin and prints every element matching --selector. Use --within to run
the query anchored at the first element matching another selector; the
anchored query resolves :scope against that element.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagSelector, "selector", "s", "", "CSS selector to match (required)")
	rootCmd.Flags().StringVar(&flagWithin, "within", "", "anchor the query at the first element matching this selector")
	rootCmd.Flags().BoolVar(&flagFragment, "fragment", false, "parse the input as a fragment instead of a full document")
	rootCmd.Flags().BoolVar(&flagFirst, "first", false, "require at least one match and print only it")
	rootCmd.Flags().BoolVar(&flagInner, "inner", false, "print inner HTML instead of outer HTML")
	rootCmd.Flags().BoolVar(&flagText, "text", false, "print concatenated text instead of HTML")
	rootCmd.Flags().StringVar(&flagAttr, "attr", "", "print this attribute of each match")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("selector")
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	sel, err := selector.Parse(flagSelector)
	if err != nil {
		return err
	}

	start := time.Now()
	doc, err := parseInput(args)
	if err != nil {
		return err
	}
	logrus.WithField("took", time.Since(start)).Debug("parsed input")

	matches, err := startQuery(doc, sel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	count := 0
	if flagFirst {
		el, err := matches.TryNext()
		if err != nil {
			return err
		}
		if err := emit(out, el); err != nil {
			return err
		}
		count = 1
	} else {
		for {
			el, ok := matches.Next()
			if !ok {
				break
			}
			if err := emit(out, el); err != nil {
				return err
			}
			count++
		}
	}
	logrus.WithField("matches", count).Debug("query done")
	return nil
}

func parseInput(args []string) (*scrape.Document, error) {
	var (
		in   io.Reader = os.Stdin
		name           = "stdin"
	)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		in, name = f, args[0]
	}
	logrus.WithField("input", name).Debug("parsing")
	if flagFragment {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}
		return scrape.ParseFragment(string(b))
	}
	return scrape.Parse(in)
}

func startQuery(doc *scrape.Document, sel *selector.Selector) (*dom.Select, error) {
	if flagWithin == "" {
		return doc.Select(sel), nil
	}
	within, err := selector.Parse(flagWithin)
	if err != nil {
		return nil, err
	}
	anchor, err := doc.Select(within).TryNext()
	if err != nil {
		return nil, err
	}
	logrus.WithField("anchor", anchor.Name()).Debug("anchored query")
	return anchor.Select(sel), nil
}

func emit(w io.Writer, el dom.ElementRef) error {
	switch {
	case flagText:
		var b strings.Builder
		text := el.Text()
		for {
			frag, ok := text.Next()
			if !ok {
				break
			}
			b.WriteString(frag)
		}
		_, err := fmt.Fprintln(w, strings.TrimSpace(b.String()))
		return err
	case flagAttr != "":
		v, err := el.RequireAttr(flagAttr)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, v)
		return err
	case flagInner:
		_, err := fmt.Fprintln(w, el.InnerHTML())
		return err
	default:
		_, err := fmt.Fprintln(w, el.HTML())
		return err
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
