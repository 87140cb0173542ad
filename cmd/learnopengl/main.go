package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/learnopengl-go/learnopengl/lib/config"
	applog "github.com/learnopengl-go/learnopengl/lib/log"
	"github.com/learnopengl-go/learnopengl/lib/tutorial"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

type invocation struct {
	tutorial   *tutorial.Tutorial
	configPath string
	logLevel   string
}

// parseArgs returns the invocation, or the exit status to end with when
// the arguments do not name a tutorial.
func parseArgs(args []string, out io.Writer) (*invocation, int) {
	prog := "learnopengl"
	if len(args) > 0 {
		prog = args[0]
		args = args[1:]
	}

	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.SetOutput(out)
	inv := &invocation{}
	flags.StringVar(&inv.configPath, "config", "", "YAML config file")
	flags.StringVar(&inv.logLevel, "log-level", "", "debug, info, warn or error (overrides the config)")
	flags.Usage = func() {
		tutorial.Usage(out, prog)
		_, _ = fmt.Fprintln(out, "\nFlags:")
		flags.PrintDefaults()
	}

	err := flags.Parse(args)
	if err != nil {
		return nil, 1
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return nil, 1
	}

	t, err := tutorial.Lookup(flags.Arg(0))
	if err != nil {
		_, _ = fmt.Fprintf(out, "%s\n\n", err)
		flags.Usage()
		return nil, 1
	}
	inv.tutorial = t
	return inv, 0
}

func main() {
	inv, status := parseArgs(os.Args, os.Stdout)
	if inv == nil {
		os.Exit(status)
	}

	cfg := config.Default()
	if inv.configPath != "" {
		var err error
		cfg, err = config.Parse(inv.configPath)
		if err != nil {
			log.Fatalf("could not load config: %s", err)
		}
	}
	if inv.logLevel != "" {
		cfg.LogLevel = inv.logLevel
	}
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	applog.Setup(level)

	err = tutorial.Run(inv.tutorial, cfg)
	if err != nil {
		log.Fatalf("%s failed: %s", inv.tutorial.ID, err)
	}
}
