package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"

	"interest-projector/domain"
)

// Markdown renders a projection as a markdown document: the headline
// figures, the stages when there is more than one, and the year-by-year
// ledger.
func Markdown(p domain.Projection, cur *money.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	format := func(v float64) string { return FormatMoney(v, cur) }

	doc.H1("Compound Interest Projection")
	doc.PlainTextf("%s%% annual rate compounded daily, %s contributions over %d years.",
		strconv.FormatFloat(p.Input.AnnualRatePercent, 'f', -1, 64),
		p.Input.Frequency, len(p.Result.Rows))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Final Balance"), md.Bold(format(p.Summary.FinalBalance))},
		Rows: [][]string{
			{"Total Contributed", format(p.Summary.TotalContributed)},
			{"Interest Earned", format(p.Summary.TotalInterest)},
		},
	})

	if stages := p.Input.ResolvedStages(); len(stages) > 1 {
		doc.H2("Stages")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Stage", "Years", "Contribution"},
		}
		for i, st := range stages {
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(i + 1),
				strconv.Itoa(st.DurationYears),
				format(st.ContributionAmount),
			})
		}
		doc.Table(table)
	}

	doc.H2("Growth by Year")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Year", "Contribution", "Total Invested", "Interest", "Balance"},
	}
	for _, row := range p.Result.Rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(row.Year),
			format(row.ContributionForYear),
			format(row.TotalContributed),
			format(row.AccumulatedInterest),
			format(row.Balance),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Terminal renders a markdown document for display in a terminal.
func Terminal(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("crear renderizador: %w", err)
	}
	return r.Render(markdown)
}
