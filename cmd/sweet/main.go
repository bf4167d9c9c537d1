// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command sweet installs switches on the checkboxes of an HTML
// document.
//
//	sweet --input form.html --size medium --toggle > out.html
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/yosssi/gohtml"
	"gopkg.in/yaml.v3"

	"github.com/dotchain/sweet/animation"
	"github.com/dotchain/sweet/dom/html"
	"github.com/dotchain/sweet/internal/config"
	"github.com/dotchain/sweet/sweet"
)

type options struct {
	Input  string `short:"i" long:"input" default:"-" description:"input html file, - for stdin"`
	Output string `short:"o" long:"output" default:"-" description:"output html file, - for stdout"`
	Select string `short:"s" long:"select" default:"//input[@type='checkbox']" description:"xpath of the checkboxes"`
	Config string `short:"c" long:"config" env:"SWEET_CONFIG" description:"yaml options file"`

	Switch struct {
		Size         string  `long:"size" description:"size preset (small, medium, large)"`
		Width        float64 `long:"width" description:"track width in px"`
		Height       float64 `long:"height" description:"track height in px"`
		FontSize     float64 `long:"font-size" description:"label font size in px"`
		OnText       string  `long:"on-text" description:"label when checked"`
		OffText      string  `long:"off-text" description:"label when unchecked"`
		WrapperClass string  `long:"wrapper-class" description:"extra classes of the wrapper"`
		InputClass   string  `long:"input-class" description:"extra classes of the checkbox"`
		Duration     string  `long:"duration" description:"transition duration, e.g. 250ms"`
		Spring       bool    `long:"spring" description:"use a spring easing"`
	} `group:"switch"`

	Toggle       bool `long:"toggle" description:"click every switch once after installing it"`
	Destroy      bool `long:"destroy" description:"remove the switches again before writing"`
	DumpSettings bool `long:"dump-settings" description:"print the resolved settings as yaml and exit"`
	Debug        bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

// spring parameters of --spring
const (
	springFrequency = 6.0
	springDamping   = 0.4
)

func main() {
	var opts options
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	setupLogs(opts.Debug)

	if err := run(opts, os.Stdin, os.Stdout, log.Default()); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func setupLogs(debug bool) {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg)
	}
}

func run(opts options, stdin io.Reader, stdout io.Writer, logger log.L) error {
	switchOpts, err := switchOptions(opts)
	if err != nil {
		return err
	}

	if opts.DumpSettings {
		return dumpSettings(sweet.Resolve(switchOpts), opts.Output, stdout)
	}

	doc, err := readDocument(opts.Input, stdin)
	if err != nil {
		return err
	}

	elts, err := doc.Query(opts.Select)
	if err != nil {
		return err
	}
	logger.Logf("[INFO] %d checkbox(es) match %s", len(elts), opts.Select)

	w := sweet.New(sweet.WithLogger(logger))
	w.Init(switchOpts, elts...)

	if opts.Toggle {
		for _, elt := range elts {
			if parent := elt.Parent(); parent != nil {
				// click the track like a user would
				parent.Children()[0].Click()
			}
		}
		html.Settle()
	}

	if opts.Destroy {
		w.Destroy(elts...)
	}

	return writeOutput(opts.Output, stdout, func(out io.Writer) error {
		_, err := io.WriteString(out, gohtml.Format(doc.String())+"\n")
		return err
	})
}

// switchOptions merges the config file, the environment and the
// flags, with flags taking precedence
func switchOptions(opts options) (sweet.Options, error) {
	result, err := config.Load(opts.Config)
	if err != nil {
		return result, err
	}

	s := opts.Switch
	if s.Size != "" {
		result.Size = s.Size
	}
	if s.Width != 0 {
		result.Width = s.Width
	}
	if s.Height != 0 {
		result.Height = s.Height
	}
	if s.FontSize != 0 {
		result.FontSize = s.FontSize
	}
	if s.OnText != "" {
		result.OnText = s.OnText
	}
	if s.OffText != "" {
		result.OffText = s.OffText
	}
	if s.WrapperClass != "" {
		result.WrapperClass = s.WrapperClass
	}
	if s.InputClass != "" {
		result.InputClass = s.InputClass
	}
	if s.Duration != "" {
		d, err := time.ParseDuration(s.Duration)
		if err != nil {
			return result, fmt.Errorf("invalid duration: %w", err)
		}
		result.Duration = d
	}
	if s.Spring {
		result.Easing = animation.Spring(springFrequency, springDamping)
	}
	return result, nil
}

func readDocument(path string, stdin io.Reader) (*html.Document, error) {
	if path == "" || path == "-" {
		return html.Parse(stdin)
	}

	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return html.Parse(f)
}

func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}

	f, err := os.Create(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func dumpSettings(s sweet.Settings, path string, stdout io.Writer) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return writeOutput(path, stdout, func(out io.Writer) error {
		_, err := out.Write(data)
		return err
	})
}
