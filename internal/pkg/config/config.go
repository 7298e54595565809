/*
 * Copyright 2024-present Open Networking Foundation (ONF) and the ONF Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config provides the log, input, output and decode configuration of the dissector
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// OMCI dissector default constants
const (
	defaultInstanceid         = "omci-dissector"
	defaultLoglevel           = "WARN"
	defaultConfigFile         = ""
	defaultInputPath          = ""
	defaultInputKind          = InputKindHex
	defaultHexString          = ""
	defaultOutputPath         = ""
	defaultOutputFormat       = "text"
	defaultOutputMaxSizeMB    = 100
	defaultOutputMaxBackups   = 3
	defaultOutputMaxAgeDays   = 28
	defaultOutputCompress     = false
	defaultVariant            = "gpon"
	defaultStorePath          = ""
	defaultCrossCheck         = false
	defaultStats              = false
	defaultMibView            = false
	defaultInteractive        = false
	defaultEtherType          = 0x88b5
	defaultBanner             = false
	defaultDisplayVersionOnly = false
)

// input kinds
const (
	InputKindHex    = "hex"
	InputKindPcap   = "pcap"
	InputKindPcapng = "pcapng"
)

// DissectorFlags represents the set of configurations used by the dissector
type DissectorFlags struct {
	InstanceID         string `yaml:"instance_id"`
	LogLevel           string `yaml:"log_level"`
	ConfigFile         string `yaml:"-"`
	InputPath          string `yaml:"input"`
	InputKind          string `yaml:"input_kind"`
	HexString          string `yaml:"hex"`
	OutputPath         string `yaml:"output"`
	OutputFormat       string `yaml:"format"`
	OutputMaxSizeMB    int    `yaml:"output_max_size_mb"`
	OutputMaxBackups   int    `yaml:"output_max_backups"`
	OutputMaxAgeDays   int    `yaml:"output_max_age_days"`
	OutputCompress     bool   `yaml:"output_compress"`
	Variant            string `yaml:"variant"`
	StorePath          string `yaml:"store"`
	CrossCheck         bool   `yaml:"cross_check"`
	Stats              bool   `yaml:"stats"`
	MibView            bool   `yaml:"mib"`
	Interactive        bool   `yaml:"interactive"`
	EtherType          uint   `yaml:"ethertype"`
	Banner             bool   `yaml:"banner"`
	DisplayVersionOnly bool   `yaml:"-"`
}

// NewDissectorFlags returns a new dissector config
func NewDissectorFlags() *DissectorFlags {
	var dissectorFlags = DissectorFlags{ // Default values
		InstanceID:         defaultInstanceid,
		LogLevel:           defaultLoglevel,
		ConfigFile:         defaultConfigFile,
		InputPath:          defaultInputPath,
		InputKind:          defaultInputKind,
		HexString:          defaultHexString,
		OutputPath:         defaultOutputPath,
		OutputFormat:       defaultOutputFormat,
		OutputMaxSizeMB:    defaultOutputMaxSizeMB,
		OutputMaxBackups:   defaultOutputMaxBackups,
		OutputMaxAgeDays:   defaultOutputMaxAgeDays,
		OutputCompress:     defaultOutputCompress,
		Variant:            defaultVariant,
		StorePath:          defaultStorePath,
		CrossCheck:         defaultCrossCheck,
		Stats:              defaultStats,
		MibView:            defaultMibView,
		Interactive:        defaultInteractive,
		EtherType:          defaultEtherType,
		Banner:             defaultBanner,
		DisplayVersionOnly: defaultDisplayVersionOnly,
	}
	return &dissectorFlags
}

// LoadFile overlays the settings of a YAML config file; keys absent from the file keep their value
func (so *DissectorFlags) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return so.Load(f)
}

// Load overlays YAML settings read from r
func (so *DissectorFlags) Load(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(so); err != nil && err != io.EOF {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParseCommandArguments parses the command line of the dissector. A config file named
// with -config is applied first so that explicit flags override it.
func (so *DissectorFlags) ParseCommandArguments(args []string) error {
	if path := configFileArg(args); path != "" {
		if err := so.LoadFile(path); err != nil {
			return err
		}
	}

	fs := flag.NewFlagSet("omci-dissector", flag.ContinueOnError)

	help := fmt.Sprintf("YAML config file")
	fs.StringVar(&(so.ConfigFile), "config", so.ConfigFile, help)

	help = fmt.Sprintf("Instance id attached to all log lines")
	fs.StringVar(&(so.InstanceID), "instance_id", so.InstanceID, help)

	help = fmt.Sprintf("Log level")
	fs.StringVar(&(so.LogLevel), "log_level", so.LogLevel, help)

	help = fmt.Sprintf("Input file, - for stdin")
	fs.StringVar(&(so.InputPath), "in", so.InputPath, help)

	help = fmt.Sprintf("Input kind: hex, pcap or pcapng")
	fs.StringVar(&(so.InputKind), "kind", so.InputKind, help)

	help = fmt.Sprintf("Decode a single frame given as hex")
	fs.StringVar(&(so.HexString), "hex", so.HexString, help)

	help = fmt.Sprintf("Output file, rotated by size; stdout if empty")
	fs.StringVar(&(so.OutputPath), "out", so.OutputPath, help)

	help = fmt.Sprintf("Output format: text, json, yaml or cbor")
	fs.StringVar(&(so.OutputFormat), "format", so.OutputFormat, help)

	help = fmt.Sprintf("Maximum size in megabytes of the output file before it is rotated")
	fs.IntVar(&(so.OutputMaxSizeMB), "out_max_size", so.OutputMaxSizeMB, help)

	help = fmt.Sprintf("Maximum number of rotated output files to retain")
	fs.IntVar(&(so.OutputMaxBackups), "out_max_backups", so.OutputMaxBackups, help)

	help = fmt.Sprintf("Maximum number of days to retain rotated output files")
	fs.IntVar(&(so.OutputMaxAgeDays), "out_max_age", so.OutputMaxAgeDays, help)

	help = fmt.Sprintf("Compress rotated output files")
	fs.BoolVar(&(so.OutputCompress), "out_compress", so.OutputCompress, help)

	help = fmt.Sprintf("Device variant for test requests: gpon or xgpon")
	fs.StringVar(&(so.Variant), "variant", so.Variant, help)

	help = fmt.Sprintf("SQLite file to archive decoded frames in")
	fs.StringVar(&(so.StorePath), "store", so.StorePath, help)

	help = fmt.Sprintf("Cross-check baseline frames against the reference OMCI decoder")
	fs.BoolVar(&(so.CrossCheck), "xcheck", so.CrossCheck, help)

	help = fmt.Sprintf("Print message and entity class counts at the end")
	fs.BoolVar(&(so.Stats), "stats", so.Stats, help)

	help = fmt.Sprintf("Rebuild the ONU MIB from the frames and print it at the end")
	fs.BoolVar(&(so.MibView), "mib", so.MibView, help)

	help = fmt.Sprintf("Read hex frames from an interactive prompt")
	fs.BoolVar(&(so.Interactive), "interactive", so.Interactive, help)

	help = fmt.Sprintf("Ethertype of OMCI frames in Ethernet captures")
	fs.UintVar(&(so.EtherType), "ethertype", so.EtherType, help)

	help = fmt.Sprintf("Show startup banner log lines")
	fs.BoolVar(&(so.Banner), "banner", so.Banner, help)

	help = fmt.Sprintf("Show version information and exit")
	fs.BoolVar(&(so.DisplayVersionOnly), "version", so.DisplayVersionOnly, help)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 && so.InputPath == "" {
		so.InputPath = fs.Arg(0)
	}
	return so.Validate()
}

// Validate checks the enumerated settings
func (so *DissectorFlags) Validate() error {
	switch so.InputKind {
	case InputKindHex, InputKindPcap, InputKindPcapng:
	default:
		return fmt.Errorf("config: unknown input kind %q", so.InputKind)
	}
	if so.EtherType > 0xffff {
		return fmt.Errorf("config: ethertype 0x%x out of range", so.EtherType)
	}
	if so.OutputMaxSizeMB <= 0 {
		return fmt.Errorf("config: output max size must be positive, got %d", so.OutputMaxSizeMB)
	}
	return nil
}

// configFileArg finds the value of -config / --config without parsing the rest
func configFileArg(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		name := strings.TrimLeft(a, "-")
		if name == a || len(a)-len(name) > 2 {
			continue
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
