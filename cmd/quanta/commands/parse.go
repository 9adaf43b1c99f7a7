package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/quanta"
	"github.com/teranos/quanta/config"
	"github.com/teranos/quanta/dims"
	"github.com/teranos/quanta/errors"
	"github.com/teranos/quanta/logger"
)

var (
	parseLocale  string
	parseDims    string
	parseRef     string
	parseTz      string
	parseLatent  bool
	parseTimeout time.Duration
)

// ParseCmd represents the parse command
var ParseCmd = &cobra.Command{
	Use:   "parse [TEXT]",
	Short: "Parse text and print resolved spans",
	Long: `Parse text and print every resolved span as a table or JSON.

Examples:
  quanta parse "meet me tomorrow at 6pm"
  quanta parse --dims numeral "twenty-three point five"
  quanta parse --ref 2013-02-12T04:30:00Z "in thirty minutes"
  quanta parse --tz America/New_York --json "friday at noon"`,
	Args: cobra.ExactArgs(1),
	RunE: runParseCommand,
}

func init() {
	ParseCmd.Flags().StringVarP(&parseLocale, "locale", "l", "", "BCP-47 locale (default from config)")
	ParseCmd.Flags().StringVarP(&parseDims, "dims", "d", "", "Comma-separated dimensions to extract (default all)")
	ParseCmd.Flags().StringVar(&parseRef, "ref", "", "Reference instant, RFC 3339 (default now)")
	ParseCmd.Flags().StringVar(&parseTz, "tz", "", "IANA timezone (default from config)")
	ParseCmd.Flags().BoolVar(&parseLatent, "latent", false, "Include low-confidence (latent) matches")
	ParseCmd.Flags().DurationVar(&parseTimeout, "timeout", 10*time.Second, "Parse timeout")
}

func runParseCommand(cmd *cobra.Command, args []string) error {
	useJSON, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	req := quanta.Request{Text: args[0], Locale: parseLocale}

	if parseDims != "" {
		for _, name := range strings.Split(parseDims, ",") {
			dim, err := dims.FromString(strings.TrimSpace(name))
			if err != nil {
				return err
			}
			req.Dimensions = append(req.Dimensions, dim)
		}
	}
	if parseRef != "" {
		ref, err := time.Parse(time.RFC3339, parseRef)
		if err != nil {
			return errors.Wrapf(err, "invalid --ref %q", parseRef)
		}
		req.ReferenceTime = ref
	}
	if parseTz != "" {
		loc, err := time.LoadLocation(parseTz)
		if err != nil {
			return errors.Wrapf(err, "invalid --tz %q", parseTz)
		}
		req.Timezone = loc
	}
	if cmd.Flags().Changed("latent") {
		req.IncludeLatent = &parseLatent
	}

	parser, err := quanta.New(quanta.Options{Config: cfg, Logger: logger.Logger})
	if err != nil {
		return errors.Wrap(err, "failed to build parser")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), parseTimeout)
	defer cancel()

	spans, err := parser.Parse(ctx, req)
	if err != nil {
		return err
	}

	if useJSON {
		return displaySpansJSON(spans)
	}
	return displaySpansTable(args[0], spans)
}

func displaySpansJSON(spans []quanta.ResolvedSpan) error {
	out, err := json.MarshalIndent(spans, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode result")
	}
	fmt.Println(string(out))
	return nil
}

func displaySpansTable(text string, spans []quanta.ResolvedSpan) error {
	if len(spans) == 0 {
		pterm.Info.Println("No matches")
		return nil
	}

	rows := pterm.TableData{{"Span", "Dimension", "Text", "Value"}}
	for _, s := range spans {
		rows = append(rows, []string{
			s.Span.String(),
			dimLabel(s),
			s.Text,
			renderValue(s.Value),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func dimLabel(s quanta.ResolvedSpan) string {
	if s.Latent {
		return string(s.Dim) + " (latent)"
	}
	return string(s.Dim)
}

func renderValue(v any) string {
	if tv, ok := v.(dims.TimeValue); ok {
		return tv.Instant.Format(time.RFC3339)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}
