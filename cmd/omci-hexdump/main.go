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

// Package main -> converts hex text into the offset listing of Wireshark's "Import from Hex Dump"
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/opencord/voltha-lib-go/v7/pkg/log"

	"github.com/opencord/omci-dissector-go/config/version"
	"github.com/opencord/omci-dissector-go/internal/pkg/hexdump"
)

var logger log.CLogger

func init() {
	var err error
	logger, err = log.RegisterPackage(log.JSON, log.ErrorLevel, log.Fields{"pkg": "main"})
	if err != nil {
		panic(err)
	}
}

type hexdumpFlags struct {
	hexString    string
	inputPath    string
	outputPath   string
	singlePacket bool
	logLevel     string
	showVersion  bool
}

func parseFlags(args []string, stderr io.Writer) (*hexdumpFlags, error) {
	hf := &hexdumpFlags{}
	fs := flag.NewFlagSet("omci-hexdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&hf.hexString, "s", "", "Hex string to convert")
	fs.StringVar(&hf.inputPath, "i", "", "Input file, one packet per line")
	fs.StringVar(&hf.outputPath, "o", "", "Output file, stdout if empty")
	fs.BoolVar(&hf.singlePacket, "n", false, "Treat the whole input file as a single packet")
	fs.StringVar(&hf.logLevel, "log_level", "WARN", "Log level")
	fs.BoolVar(&hf.showVersion, "version", false, "Show version information and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if hf.showVersion {
		return hf, nil
	}
	if hf.hexString == "" && hf.inputPath == "" {
		fs.Usage()
		return nil, errors.New("one of -s or -i is required")
	}
	if hf.hexString != "" && hf.inputPath != "" {
		return nil, errors.New("-s and -i are mutually exclusive")
	}
	return hf, nil
}

func convert(ctx context.Context, hf *hexdumpFlags, w io.Writer) error {
	if hf.hexString != "" {
		return hexdump.ProcessHexString(ctx, hf.hexString, w)
	}
	f, err := os.Open(hf.inputPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if hf.singlePacket {
		return hexdump.ProcessSingle(ctx, hf.inputPath, f, w)
	}
	return hexdump.ProcessFile(ctx, hf.inputPath, f, w)
}

func run(ctx context.Context, hf *hexdumpFlags) error {
	var out io.Writer = os.Stdout
	if hf.outputPath != "" {
		f, err := os.Create(hf.outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	bw := bufio.NewWriter(out)
	if err := convert(ctx, hf, bw); err != nil {
		return err
	}
	return bw.Flush()
}

func main() {
	ctx := context.Background()
	hf, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if hf.showVersion {
		fmt.Println("omci-hexdump")
		fmt.Println(version.VersionInfo.String("  "))
		return
	}
	logLevel, err := log.StringToLogLevel(hf.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot setup logging, %s\n", err)
		os.Exit(2)
	}
	if _, err := log.SetDefaultLogger(log.JSON, logLevel, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot setup logging, %s\n", err)
		os.Exit(2)
	}
	log.SetAllLogLevel(logLevel)

	err = run(ctx, hf)
	_ = log.CleanUp()
	if err != nil {
		logger.Errorw(ctx, "hexdump-failed", log.Fields{"error": err})
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
