package main

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/gridstyle/grid"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// traceKeys are the tracers of the gridstyle packages.
var traceKeys = []string{"gridstyle.grid", "gridstyle.css", "gridstyle.dom", "gridstyle.cssom"}

var defaults = map[string]interface{}{
	"tracing.adapter": "logrus",
	"trace.root":      "Error",
}

// yamlParser lets koanf read YAML files.
type yamlParser struct{}

func (yamlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	m := make(map[string]interface{})
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (yamlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(m)
}

// loadConfig reads the defaults, then the configuration file (if any), then
// the flags the user has set explicitly.
func loadConfig(cmd *cobra.Command, opts *options) (*koanfadapter.KConf, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}
	if opts.configFile != "" {
		if err := k.Load(file.Provider(opts.configFile), yamlParser{}); err != nil {
			return nil, fmt.Errorf("reading configuration %q: %w", opts.configFile, err)
		}
	}
	conf := koanfadapter.New(k, "", nil)
	flags := cmd.Flags()
	if flags.Changed("namespace") {
		conf.Set(grid.KeyNamespace, opts.namespace)
	}
	if flags.Changed("columns") {
		conf.Set(grid.KeyColumns, opts.columns)
	}
	if flags.Changed("no-inline-styles") {
		conf.Set(grid.KeyInlineStyles, !opts.noInlineStyles)
	}
	if flags.Changed("trace") {
		for _, key := range traceKeys {
			conf.Set("trace."+key, opts.traceLevel)
		}
	}
	return conf, nil
}

// setupTracing installs tracers configured by conf for all packages.
func setupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
