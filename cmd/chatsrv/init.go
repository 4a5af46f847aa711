package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wtask/linechat/pkg/semver"
)

type options struct {
	configPath string
	address    string
}

var (
	// BinaryName - name of run application binary
	BinaryName = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))

	// Version - app version fingerprint
	Version = semver.V{Major: 1, Minor: 0, Patch: 0}.String()

	// buildVersion - may be set at link time: -ldflags "-X main.buildVersion=1.2.3"
	buildVersion = ""
)

func init() {
	if buildVersion == "" {
		return
	}
	v, err := semver.Parse(buildVersion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: ignore invalid build version %q: %v\n", BinaryName, buildVersion, err)
		return
	}
	Version = v.String()
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet(BinaryName, flag.ContinueOnError)
	out := fs.Output()
	fs.Usage = func() {
		fmt.Fprintf(out, "Launch text line chat relay server\n\n\t%s [options]\nOptions:\n\n", BinaryName)
		fs.PrintDefaults()
		fmt.Fprint(out, "\n")
	}

	opts := options{}
	help, version := false, false
	fs.BoolVar(&help, "help", false, "Print usage help")
	fs.BoolVar(&version, "version", false, "Print version and exit")
	fs.StringVar(&opts.configPath, "config", "", "Path to YAML configuration file")
	fs.StringVar(&opts.address, "address", "", "Listen address, overrides configuration")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if help {
		fs.Usage()
		return opts, flag.ErrHelp
	}
	if version {
		fmt.Fprintf(out, "%s v%s\n", BinaryName, Version)
		return opts, flag.ErrHelp
	}
	return opts, nil
}
