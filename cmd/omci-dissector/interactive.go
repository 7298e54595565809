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
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/opencord/voltha-lib-go/v7/pkg/log"

	"github.com/opencord/omci-dissector-go/internal/pkg/capture"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
)

const interactivePrompt = "omci> "

// prompt reads hex frames and a few commands from the terminal
type prompt struct {
	dh    *dissector
	out   io.Writer
	index int
}

func newPrompt(dh *dissector, out io.Writer) *prompt {
	return &prompt{dh: dh, out: out}
}

func (p *prompt) printHelp() {
	fmt.Fprintln(p.out, "Enter an OMCI frame as hex digits, or one of:")
	fmt.Fprintln(p.out, "  variant gpon|xgpon   select the test request layout")
	fmt.Fprintln(p.out, "  xcheck on|off        cross-check with the reference decoder")
	fmt.Fprintln(p.out, "  stats                print the tallies so far")
	fmt.Fprintln(p.out, "  mib                  print the MIB rebuilt so far")
	fmt.Fprintln(p.out, "  help                 show this text")
	fmt.Fprintln(p.out, "  quit                 leave")
}

// handleLine returns true when the session should end
func (p *prompt) handleLine(ctx context.Context, line string) (bool, error) {
	input := strings.TrimSpace(line)
	if input == "" || strings.HasPrefix(input, "#") {
		return false, nil
	}
	parts := strings.Fields(input)
	switch strings.ToLower(parts[0]) {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		p.printHelp()
		return false, nil
	case "variant":
		if len(parts) != 2 {
			fmt.Fprintln(p.out, "usage: variant gpon|xgpon")
			return false, nil
		}
		variant, err := omcidec.ParseVariant(parts[1])
		if err != nil {
			fmt.Fprintln(p.out, err)
			return false, nil
		}
		p.dh.opts.Variant = variant
		fmt.Fprintf(p.out, "variant %s\n", variant)
		return false, nil
	case "xcheck":
		if len(parts) != 2 || (parts[1] != "on" && parts[1] != "off") {
			fmt.Fprintln(p.out, "usage: xcheck on|off")
			return false, nil
		}
		p.dh.crossCheck = parts[1] == "on"
		return false, nil
	case "stats":
		if p.dh.tally == nil {
			fmt.Fprintln(p.out, "stats are disabled, start with -stats")
			return false, nil
		}
		_, err := p.dh.tally.WriteTo(p.out)
		return false, err
	case "mib":
		if p.dh.mib == nil {
			fmt.Fprintln(p.out, "the MIB view is disabled, start with -mib")
			return false, nil
		}
		_, err := p.dh.mib.WriteTo(p.out)
		return false, err
	}

	data, err := capture.ParseHex(input)
	if err != nil {
		fmt.Fprintln(p.out, err)
		return false, nil
	}
	p.index++
	rec := capture.Record{Index: p.index, Timestamp: time.Now(), Data: data, FrameLen: len(data)}
	return false, p.dh.processRecord(ctx, rec)
}

// runInteractive owns rl and closes it on return
func runInteractive(ctx context.Context, cancel context.CancelFunc, rl *readline.Instance, p *prompt) {
	defer rl.Close()
	p.printHelp()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			cancel()
			return
		}
		quit, err := p.handleLine(ctx, line)
		if err != nil {
			logger.Errorw(ctx, "interactive-frame-failed", log.Fields{"error": err})
			cancel()
			return
		}
		if quit {
			cancel()
			return
		}
	}
}

func newReadline() (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          interactivePrompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return rl, nil
}
