package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"interest-projector/cli"
	"interest-projector/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("error loading configuration: %v", err)
	}
	logger := cfg.NewLogger()

	ctx := context.Background()
	app, closeApp := cli.NewApp(ctx, cfg, logger, os.Stdout)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, app)

	flag.Parse()
	status := commander.Execute(ctx)
	closeApp()
	os.Exit(int(status))
}
