// mikrolog is a small demo host for the mikrolog logger. It builds a logger
// from the environment (and optional config files), writes a few messages
// and exits.
//
//	MIKROLOG_LEVEL=warn MIKROLOG_FILE=mikrolog.log mikrolog
//	mikrolog -config mikrolog.yaml
//	mikrolog -ports
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/willibrandon/mikrolog"
	"github.com/willibrandon/mikrolog/configuration"
	"github.com/willibrandon/mikrolog/selflog"
	"github.com/willibrandon/mikrolog/sinks"
)

type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

func main() {
	var configs stringList
	flag.Var(&configs, "config", "config or .env file to load (repeatable)")
	listPorts := flag.Bool("ports", false, "list serial ports and exit")
	debug := flag.Bool("selflog", false, "report internal logger failures to stderr")
	flag.Parse()

	if *debug {
		selflog.Enable(selflog.Sync(os.Stderr))
		defer selflog.Disable()
	}

	if *listPorts {
		ports, err := sinks.SerialPorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "mikrolog: %v\n", err)
			os.Exit(1)
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	cfg, err := configuration.Load(configs...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mikrolog: %v\n", err)
		os.Exit(2)
	}
	if cfg.File == "" {
		cfg.File = "mikrolog.log"
	}

	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mikrolog: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	run(logger)
}

func run(logger *mikrolog.Logger) {
	const msg = "brake or steer not in center_position"

	_, file, line, _ := runtime.Caller(0)
	logger.Infof("%s:%d %s", file, line, msg)
	logger.Tracef("%s:%d %s", file, line, msg)
	logger.Warnf("%s:%d %s", file, line, msg)
	logger.Errorf("%s:%d %s", file, line, msg)

	mikrolog.NewSlog(logger).Info("front-end", "via", "slog")
	mikrolog.NewLogr(logger).V(1).Info("front-end", "via", "logr")
}
