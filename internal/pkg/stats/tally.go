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

// Package stats counts decoded frames per summary line and per entity class in first seen order
package stats

import (
	"fmt"
	"io"
	"sync"

	"github.com/cevaris/ordered_map"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
)

// Count is one tally row
type Count struct {
	Key   string
	Count int
}

// Tally is safe for concurrent use
type Tally struct {
	mutex     sync.Mutex
	summaries *ordered_map.OrderedMap
	classes   *ordered_map.OrderedMap
	frames    int
	failures  int
	diags     int
}

// NewTally returns an empty tally
func NewTally() *Tally {
	return &Tally{
		summaries: ordered_map.NewOrderedMap(),
		classes:   ordered_map.NewOrderedMap(),
	}
}

// Add counts a decoded frame
func (t *Tally) Add(frame *omcidec.Frame) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.frames++
	t.diags += len(frame.Diagnostics)
	increment(t.summaries, frame.Summary)
	increment(t.classes, fmt.Sprintf("%d %s", frame.Header.ClassID, frame.ClassName))
}

// AddFailure counts a frame that could not be decoded
func (t *Tally) AddFailure() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.failures++
}

func increment(m *ordered_map.OrderedMap, key string) {
	n := 0
	if v, ok := m.Get(key); ok {
		n = v.(int)
	}
	m.Set(key, n+1)
}

func counts(m *ordered_map.OrderedMap) []Count {
	out := make([]Count, 0, m.Len())
	iter := m.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		out = append(out, Count{Key: (kv.Key).(string), Count: (kv.Value).(int)})
	}
	return out
}

// Summaries returns the count per summary line
func (t *Tally) Summaries() []Count {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return counts(t.summaries)
}

// Classes returns the count per entity class
func (t *Tally) Classes() []Count {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return counts(t.classes)
}

// Totals returns the number of decoded frames, failed frames and diagnostics
func (t *Tally) Totals() (frames, failures, diagnostics int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.frames, t.failures, t.diags
}

// WriteTo prints the tally as a plain text table
func (t *Tally) WriteTo(w io.Writer) (int64, error) {
	frames, failures, diags := t.Totals()
	var written int64
	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(w, format, args...)
		written += int64(n)
		return err
	}
	if err := write("frames: %d  failed: %d  diagnostics: %d\n", frames, failures, diags); err != nil {
		return written, err
	}
	for _, section := range []struct {
		title string
		rows  []Count
	}{{"per message", t.Summaries()}, {"per entity class", t.Classes()}} {
		if err := write("%s:\n", section.title); err != nil {
			return written, err
		}
		for _, c := range section.rows {
			if err := write("%8d  %s\n", c.Count, c.Key); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}
