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

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
)

const indentUnit = "  "

type textWriter struct {
	w io.Writer
}

func (t *textWriter) Write(entry Entry) error {
	bw := bufio.NewWriter(t.w)
	switch {
	case entry.Frame != nil:
		writeTextFrame(bw, entry)
	case entry.Error != "":
		fmt.Fprintf(bw, "#%d error: %s\n", entry.Index, entry.Error)
	}
	return bw.Flush()
}

func (t *textWriter) Close() error {
	return nil
}

func writeTextFrame(bw *bufio.Writer, entry Entry) {
	frame := entry.Frame
	fmt.Fprintf(bw, "#%d %s", entry.Index, frame.Summary)
	if entry.Timestamp != nil {
		fmt.Fprintf(bw, "  (%s)", entry.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"))
	}
	bw.WriteString("\n")
	for _, f := range frame.Fields {
		writeTextField(bw, f, 1)
	}
	for _, d := range frame.Diagnostics {
		fmt.Fprintf(bw, "%s! %s\n", indentUnit, d)
	}
	if entry.CrossCheck != nil {
		fmt.Fprintf(bw, "%s= %s\n", indentUnit, entry.CrossCheck)
	}
}

func writeTextField(bw *bufio.Writer, f *omcidec.Field, depth int) {
	fmt.Fprintf(bw, "%s[%02d] %s\n", strings.Repeat(indentUnit, depth), f.Offset, f.Label())
	for _, c := range f.Fields {
		writeTextField(bw, c, depth+1)
	}
}
