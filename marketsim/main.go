package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/marketsim/cmd"
	"github.com/etnz/marketsim/config"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("marketsim")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitFailure))
	}
	cmd.Configure(cfg)

	if args := flag.Args(); !isCommand(commander, firstArg(args)) {
		flag.CommandLine.Parse(shellArgs(args))
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// shellArgs returns args as the arguments of the shell command. Without a
// known subcommand, the arguments are the files of an interactive session.
func shellArgs(args []string) []string {
	return append([]string{"shell"}, args...)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func isCommand(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			found = true
		}
	})
	return found
}
