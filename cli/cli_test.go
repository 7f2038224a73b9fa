package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"testing"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interest-projector/config"
	"interest-projector/domain"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	app, closeApp := NewApp(context.Background(), &config.Config{Currency: "USD"}, logger, &out)
	t.Cleanup(closeApp)
	return app, &out
}

func runProject(t *testing.T, app *App, args ...string) subcommands.ExitStatus {
	t.Helper()
	cmd := &projectCmd{app: app}
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cmd.Execute(context.Background(), fs)
}

func TestStageList(t *testing.T) {
	var stages stageList
	require.NoError(t, stages.Set("10:100"))
	require.NoError(t, stages.Set(" 5 : 0.5 "))

	assert.Equal(t, stageList{
		{DurationYears: 10, ContributionAmount: 100},
		{DurationYears: 5, ContributionAmount: 0.5},
	}, stages)
	assert.Equal(t, "10:100,5:0.5", stages.String())

	assert.Error(t, stages.Set("10"))
	assert.Error(t, stages.Set("x:100"))
	assert.Error(t, stages.Set("10:y"))
}

func TestProjectCmd_JSON(t *testing.T) {
	app, out := newTestApp(t)

	status := runProject(t, app, "-rate", "5", "-years", "1", "-frequency", "monthly", "-contribution", "1000", "-format", "json")

	require.Equal(t, subcommands.ExitSuccess, status)
	var p domain.Projection
	require.NoError(t, json.Unmarshal(out.Bytes(), &p))
	assert.Equal(t, 12279.43, p.Summary.FinalBalance)
	assert.Equal(t, 12000.0, p.Summary.TotalContributed)
}

func TestProjectCmd_StagesRaw(t *testing.T) {
	app, out := newTestApp(t)

	status := runProject(t, app, "-years", "30", "-frequency", "mensual",
		"-stage", "10:100", "-stage", "5:0", "-stage", "15:200", "-format", "raw")

	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "## Stages")
	assert.Contains(t, out.String(), "| 30 |")
}

func TestProjectCmd_Errors(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, subcommands.ExitUsageError, runProject(t, app, "-years", "20", "-stage", "10:100"))
	assert.Equal(t, subcommands.ExitUsageError, runProject(t, app, "-frequency", "hourly"))
	assert.Equal(t, subcommands.ExitUsageError, runProject(t, app, "-currency", "ZZZZ"))
	assert.Equal(t, subcommands.ExitUsageError, runProject(t, app, "-format", "xml"))
	assert.Equal(t, subcommands.ExitUsageError, runProject(t, app, "extra"))
}

func TestFrequenciesCmd(t *testing.T) {
	app, out := newTestApp(t)
	cmd := &frequenciesCmd{app: app}

	status := cmd.Execute(context.Background(), flag.NewFlagSet("frequencies", flag.ContinueOnError))

	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "daily\t365\n")
	assert.Contains(t, out.String(), "biweekly\t24\n")
	assert.Contains(t, out.String(), "yearly\t1\n")
}
