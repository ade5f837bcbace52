// Command medalforge calls the MedalForge API from the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/medalforge/medalforge-go/medalforge"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "medalforge:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("medalforge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file (default $"+ConfigPathEnvVar+")")
	debug := fs.Bool("debug", false, "log requests to stderr")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", name)
		fs.Usage()
		return errUsage
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *debug {
		cfg.Debug = true
	}

	opts := cfg.ClientOpts()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
	opts.Logger = &logger

	client, err := medalforge.NewClient(opts)
	if err != nil {
		return err
	}

	e := &env{client: client, out: stdout, errOut: stderr}
	return cmd.run(ctx, e, newFlagSet(name, cmd.usage, stderr), fs.Args()[1:])
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: medalforge [flags] <command> [args]\n\nCommands:\n")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-12s %s\n", name, commands[name].usage)
	}

	fmt.Fprintf(out, "\nFlags:\n")
	fs.PrintDefaults()
	fmt.Fprintf(out, "\nEnvironment: %s\n", strings.Join([]string{
		"MEDALFORGE_API_KEY", "MEDALFORGE_SECRET_KEY", "MEDALFORGE_ENVIRONMENT",
		"MEDALFORGE_ENDPOINT", "MEDALFORGE_TIMEOUT", "MEDALFORGE_DEBUG",
	}, ", "))
}
