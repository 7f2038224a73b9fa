package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"interest-projector/domain"
)

type frequenciesCmd struct {
	app *App
}

func (*frequenciesCmd) Name() string     { return "frequencies" }
func (*frequenciesCmd) Synopsis() string { return "list the contribution frequencies" }
func (*frequenciesCmd) Usage() string {
	return `frequencies

  Lists the accepted contribution frequencies and how many contributions
  each makes per year.
`
}

func (*frequenciesCmd) SetFlags(*flag.FlagSet) {}

func (c *frequenciesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(c.app.Out, "Frequency\tPer year\n")
	for _, f := range domain.Frequencies() {
		fmt.Fprintf(c.app.Out, "%s\t%d\n", f, f.ContributionsPerYear())
	}
	return subcommands.ExitSuccess
}
