// Package config loads the optional HCL configuration file of xlmtrace.
//
// Example:
//
//	trace {
//	  mode              = "show-formula"
//	  empty_cell_budget = 25
//	}
//	input {
//	  encoding = "cp1252"
//	}
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace"
)

// File is the decoded configuration file. Absent blocks are nil.
type File struct {
	Trace *TraceBlock `hcl:"trace,block"`
	Input *InputBlock `hcl:"input,block"`
	Log   *LogBlock   `hcl:"log,block"`
}

// TraceBlock configures the tracer.
type TraceBlock struct {
	Mode            string `hcl:"mode,optional"`
	EmptyCellBudget int    `hcl:"empty_cell_budget,optional"`
	EntryPoint      string `hcl:"entry_point,optional"`
}

// InputBlock configures how inputs are read.
type InputBlock struct {
	Encoding string `hcl:"encoding,optional"`
	Marker   string `hcl:"marker,optional"`
	Sheet    string `hcl:"sheet,optional"`
}

// LogBlock configures logging.
type LogBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Load parses and decodes the configuration file at path.
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(hclFile.Body, path)
}

// Parse decodes configuration from memory; filename is used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}
	return decode(hclFile.Body, filename)
}

func decode(body hcl.Body, filename string) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}
	return &f, nil
}

// Apply overlays the values set in the file onto opts.
func (f *File) Apply(opts xlmtrace.Options) xlmtrace.Options {
	if t := f.Trace; t != nil {
		if t.Mode != "" {
			opts.Mode = xlmtrace.Mode(t.Mode)
		}
		if t.EmptyCellBudget > 0 {
			opts.EmptyCellBudget = t.EmptyCellBudget
		}
		if t.EntryPoint != "" {
			opts.EntryPoint = t.EntryPoint
		}
	}
	if in := f.Input; in != nil {
		if in.Encoding != "" {
			opts.Encoding = in.Encoding
		}
		if in.Marker != "" {
			opts.Marker = in.Marker
		}
		if in.Sheet != "" {
			opts.Sheet = in.Sheet
		}
	}
	return opts
}

// LogLevel returns the configured log level, or def when unset.
func (f *File) LogLevel(def string) string {
	if f.Log != nil && f.Log.Level != "" {
		return f.Log.Level
	}
	return def
}

// LogFormat returns the configured log format, or def when unset.
func (f *File) LogFormat(def string) string {
	if f.Log != nil && f.Log.Format != "" {
		return f.Log.Format
	}
	return def
}
