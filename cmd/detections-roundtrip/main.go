// Command detections-roundtrip encodes a detection list to protobuf bytes,
// decodes it again and checks that nothing changed.
//
// With no flags it runs the reference scenario for sensor-001. The exit
// status distinguishes each failure kind; see roundtrip.ExitCode.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/detections/internal/config"
	"github.com/banshee-data/detections/internal/monitoring"
	"github.com/banshee-data/detections/internal/roundtrip"
	"github.com/banshee-data/detections/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	prevLogf := monitoring.Logf
	monitoring.SetLogger(log.New(stderr, "", log.LstdFlags).Printf)
	defer monitoring.SetLogger(prevLogf)

	fs := flag.NewFlagSet("detections-roundtrip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioPath := fs.String("scenario", "", "JSON scenario file (default: built-in sensor-001 scenario)")
	printJSON := fs.Bool("json", false, "Also print the protojson form of the wire message")
	verbose := fs.Bool("v", false, "Verbose diagnostic logging")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return roundtrip.ExitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		return roundtrip.ExitUsage
	}
	if *showVersion {
		fmt.Fprintf(stdout, "detections-roundtrip %s\n", version.String())
		return roundtrip.ExitOK
	}
	monitoring.SetVerbose(*verbose)

	list := roundtrip.DemoScenario()
	if *scenarioPath != "" {
		cfg, err := config.LoadScenarioConfig(*scenarioPath)
		if err != nil {
			monitoring.Logf("[config] %v", err)
			return roundtrip.ExitUsage
		}
		if list, err = cfg.DetectionList(); err != nil {
			monitoring.Logf("[config] %v", err)
			return roundtrip.ExitUsage
		}
		monitoring.Debugf("[config] loaded %d detections from %s", len(list.Detections), *scenarioPath)
	}

	if _, err := roundtrip.Run(list, roundtrip.Options{Out: stdout, JSON: *printJSON}); err != nil {
		code := roundtrip.ExitCode(err)
		monitoring.Logf("[roundtrip] failed (exit %d): %v", code, err)
		return code
	}
	return roundtrip.ExitOK
}
