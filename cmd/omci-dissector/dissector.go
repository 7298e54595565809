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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/gopacket/layers"
	"github.com/opencord/voltha-lib-go/v7/pkg/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/opencord/omci-dissector-go/internal/pkg/capture"
	"github.com/opencord/omci-dissector-go/internal/pkg/config"
	"github.com/opencord/omci-dissector-go/internal/pkg/devdb"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/omci-dissector-go/internal/pkg/render"
	"github.com/opencord/omci-dissector-go/internal/pkg/stats"
	"github.com/opencord/omci-dissector-go/internal/pkg/store"
	"github.com/opencord/omci-dissector-go/internal/pkg/xcheck"
)

// dissector pushes the records of a source through decode, cross-check, archive, tally and rendering
type dissector struct {
	config     *config.DissectorFlags
	opts       omcidec.Options
	out        render.Writer
	outCloser  io.Closer
	stdout     io.Writer
	store      *store.Store
	tally      *stats.Tally
	mib        *devdb.OnuDeviceDB
	crossCheck bool
	decoded    int
}

func newDissector(ctx context.Context, cf *config.DissectorFlags, stdout io.Writer) (*dissector, error) {
	variant, err := omcidec.ParseVariant(cf.Variant)
	if err != nil {
		return nil, err
	}
	format, err := render.ParseFormat(cf.OutputFormat)
	if err != nil {
		return nil, err
	}
	dh := &dissector{
		config:     cf,
		opts:       omcidec.Options{Variant: variant},
		stdout:     stdout,
		crossCheck: cf.CrossCheck,
	}

	var w io.Writer = stdout
	if cf.OutputPath != "" {
		rotator := &lumberjack.Logger{
			Filename:   cf.OutputPath,
			MaxSize:    cf.OutputMaxSizeMB,
			MaxAge:     cf.OutputMaxAgeDays,
			MaxBackups: cf.OutputMaxBackups,
			Compress:   cf.OutputCompress,
		}
		w = rotator
		dh.outCloser = rotator
	}
	if dh.out, err = render.NewWriter(format, w); err != nil {
		dh.closeOutput()
		return nil, err
	}

	if cf.StorePath != "" {
		if dh.store, err = store.Open(ctx, cf.StorePath); err != nil {
			dh.closeOutput()
			return nil, fmt.Errorf("open store %s: %w", cf.StorePath, err)
		}
		logger.Infow(ctx, "store-opened", log.Fields{"path": cf.StorePath, "run-id": dh.store.RunID()})
	}
	if cf.Stats {
		dh.tally = stats.NewTally()
	}
	if cf.MibView {
		dh.mib = devdb.NewOnuDeviceDB(ctx, cf.InstanceID)
	}
	return dh, nil
}

// openSource selects the frame source from the configuration
func (dh *dissector) openSource(ctx context.Context) (capture.Source, error) {
	cf := dh.config
	if cf.HexString != "" {
		return capture.NewHexLineSource("hex", strings.NewReader(cf.HexString)), nil
	}
	switch cf.InputKind {
	case config.InputKindPcap, config.InputKindPcapng:
		var src *capture.PcapSource
		var err error
		if cf.InputPath == "" || cf.InputPath == "-" {
			src, err = capture.NewPcapSource("stdin", os.Stdin, layers.EthernetType(cf.EtherType))
		} else {
			src, err = capture.OpenPcap(cf.InputPath, layers.EthernetType(cf.EtherType))
		}
		if err != nil {
			return nil, err
		}
		logger.Debugw(ctx, "capture-opened", log.Fields{"path": cf.InputPath, "link-type": src.LinkType()})
		return src, nil
	}
	if cf.InputPath == "" || cf.InputPath == "-" {
		return capture.NewHexLineSource("stdin", io.NopCloser(os.Stdin)), nil
	}
	f, err := os.Open(cf.InputPath)
	if err != nil {
		return nil, err
	}
	logger.Debugw(ctx, "hex-input-opened", log.Fields{"path": cf.InputPath})
	return capture.NewHexLineSource(cf.InputPath, f), nil
}

// run drains src; decode failures of single records are rendered and counted, not returned
func (dh *dissector) run(ctx context.Context, src capture.Source) error {
	for {
		rec, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := dh.processRecord(ctx, rec); err != nil {
			return err
		}
	}
}

// processRecord returns only output and archive errors
func (dh *dissector) processRecord(ctx context.Context, rec capture.Record) error {
	entry := render.Entry{Index: rec.Index}
	if !rec.Timestamp.IsZero() {
		ts := rec.Timestamp
		entry.Timestamp = &ts
	}
	frame, err := omcidec.DecodeFrame(ctx, rec.Data, rec.FrameLen, dh.opts)
	if err != nil {
		logger.Infow(ctx, "frame-not-decoded", log.Fields{"index": rec.Index, "error": err})
		entry.Error = err.Error()
		if dh.tally != nil {
			dh.tally.AddFailure()
		}
		return dh.out.Write(entry)
	}
	dh.decoded++
	entry.Frame = frame
	if dh.crossCheck {
		report := xcheck.Compare(ctx, frame, rec.Data)
		entry.CrossCheck = &report
	}
	if dh.tally != nil {
		dh.tally.Add(frame)
	}
	if dh.mib != nil {
		dh.mib.Apply(ctx, frame)
	}
	if dh.store != nil {
		if _, err := dh.store.Insert(ctx, rec.Index, rec.Timestamp, rec.Data, frame); err != nil {
			return fmt.Errorf("archive frame %d: %w", rec.Index, err)
		}
	}
	return dh.out.Write(entry)
}

func (dh *dissector) closeOutput() {
	if dh.out != nil {
		if err := dh.out.Close(); err != nil {
			logger.Errorw(context.Background(), "output-flush-failed", log.Fields{"error": err})
		}
	}
	if dh.outCloser != nil {
		_ = dh.outCloser.Close()
	}
}

// stop flushes the output, prints the tallies and the MIB and closes the archive
func (dh *dissector) stop(ctx context.Context) {
	dh.closeOutput()
	if dh.tally != nil {
		if _, err := dh.tally.WriteTo(dh.stdout); err != nil {
			logger.Warnw(ctx, "stats-not-written", log.Fields{"error": err})
		}
	}
	if dh.mib != nil {
		if _, err := dh.mib.WriteTo(dh.stdout); err != nil {
			logger.Warnw(ctx, "mib-not-written", log.Fields{"error": err})
		}
	}
	if dh.store != nil {
		if err := dh.store.Close(); err != nil {
			logger.Warnw(ctx, "store-close-failed", log.Fields{"error": err})
		}
	}
	logger.Infow(ctx, "dissector-stopped", log.Fields{"decoded": dh.decoded})
}
