package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"interest-projector/domain"
	"interest-projector/report"
	"interest-projector/service"
)

// stageList collects repeated -stage flags of the form years:contribution.
type stageList []domain.Stage

func (s *stageList) String() string {
	parts := make([]string, len(*s))
	for i, st := range *s {
		parts[i] = fmt.Sprintf("%d:%s", st.DurationYears, strconv.FormatFloat(st.ContributionAmount, 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (s *stageList) Set(value string) error {
	years, amount, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("etapa %q: formato esperado años:aportación", value)
	}
	d, err := strconv.Atoi(strings.TrimSpace(years))
	if err != nil {
		return fmt.Errorf("etapa %q: años inválidos: %w", value, err)
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return fmt.Errorf("etapa %q: aportación inválida: %w", value, err)
	}
	*s = append(*s, domain.Stage{DurationYears: d, ContributionAmount: c})
	return nil
}

type projectCmd struct {
	app *App

	rate         float64
	initial      float64
	years        int
	frequency    string
	contribution float64
	stages       stageList
	format       string
	currency     string
	width        int
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the growth of periodic contributions" }
func (*projectCmd) Usage() string {
	return `project [-rate <percent>] [-initial <amount>] [-years <n>] [-frequency <name>]
        [-contribution <amount> | -stage <years:amount> ...] [-format markdown|json|raw]

  Projects a balance compounded daily with periodic contributions and prints
  the year-by-year ledger. Repeat -stage to change the contribution over
  time; stage years must add up to -years.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "rate", 5, "annual interest rate in percent (0-100)")
	f.Float64Var(&c.initial, "initial", 0, "initial balance")
	f.IntVar(&c.years, "years", 40, "investment horizon in years")
	f.StringVar(&c.frequency, "frequency", domain.Biweekly.String(), "contribution frequency: daily, weekly, biweekly, monthly or yearly")
	f.Float64Var(&c.contribution, "contribution", 5000, "amount of each contribution when no -stage is given")
	f.Var(&c.stages, "stage", "stage as years:contribution (repeatable)")
	f.StringVar(&c.format, "format", "markdown", "output format: markdown, json or raw")
	f.StringVar(&c.currency, "currency", "", "ISO 4217 currency used to display amounts (defaults to CURRENCY)")
	f.IntVar(&c.width, "width", 100, "word wrap width of the markdown output")
}

func (c *projectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", f.Args())
		return subcommands.ExitUsageError
	}

	freq, err := domain.ParseFrequency(c.frequency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	code := c.currency
	if code == "" {
		code = c.app.Config.Currency
	}
	cur, err := report.LookupCurrency(code)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	input := domain.ProjectionInput{
		AnnualRatePercent: c.rate,
		InitialBalance:    c.initial,
		TotalYears:        c.years,
		Frequency:         freq,
		Contribution:      c.contribution,
		Stages:            c.stages,
	}
	if len(c.stages) > 0 {
		input.Contribution = 0
	}

	projection, err := c.app.Service.Calculate(ctx, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating projection: %v\n", err)
		if errors.Is(err, service.ErrInvalidInput) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	switch c.format {
	case "json":
		enc := json.NewEncoder(c.app.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Rounded(projection)); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding projection: %v\n", err)
			return subcommands.ExitFailure
		}
	case "raw":
		fmt.Fprintln(c.app.Out, report.Markdown(projection, cur))
	case "markdown":
		out, err := report.Terminal(report.Markdown(projection, cur), c.width)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering projection: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprint(c.app.Out, out)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
