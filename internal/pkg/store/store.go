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

package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/voltha-lib-go/v7/pkg/log"

	_ "modernc.org/sqlite"
)

// StoredFrame is one row of the frames table
type StoredFrame struct {
	ID          int64
	RunID       string
	CapturedAt  time.Time
	FrameNo     int
	TID         uint16
	MessageType uint8
	AR          bool
	AK          bool
	ClassID     uint16
	Instance    uint16
	Summary     string
	RawHex      string
	TreeJSON    string
	Diagnostics string
}

// Store wraps the database of one dissector run
type Store struct {
	db    *sql.DB
	runID string
}

// Open opens or creates the database at path and starts a new run
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := createSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	s := &Store{db: db, runID: uuid.New().String()}
	logger.Infow(ctx, "frame-store-opened", log.Fields{"path": path, "run-id": s.runID})
	return s, nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS frames (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		captured_at TEXT NOT NULL,
		frame_no INTEGER NOT NULL,
		tid INTEGER NOT NULL,
		message_type INTEGER NOT NULL,
		ar INTEGER NOT NULL,
		ak INTEGER NOT NULL,
		class_id INTEGER NOT NULL,
		instance INTEGER NOT NULL,
		summary TEXT NOT NULL,
		raw_hex TEXT NOT NULL,
		tree_json TEXT NOT NULL,
		diagnostics TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_frames_run ON frames(run_id);
	CREATE INDEX IF NOT EXISTS idx_frames_class ON frames(class_id);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// RunID identifies the rows written through this Store
func (s *Store) RunID() string {
	return s.runID
}

// Insert archives a decoded frame; a zero capturedAt is stored as the current time
func (s *Store) Insert(ctx context.Context, frameNo int, capturedAt time.Time, raw []byte, frame *omcidec.Frame) (int64, error) {
	if capturedAt.IsZero() {
		capturedAt = time.Now()
	}
	tree, err := json.Marshal(frame.Fields)
	if err != nil {
		return 0, fmt.Errorf("marshal decode tree: %w", err)
	}
	diags := make([]string, 0, len(frame.Diagnostics))
	for _, d := range frame.Diagnostics {
		diags = append(diags, d.String())
	}
	hdr := frame.Header
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO frames (run_id, captured_at, frame_no, tid, message_type, ar, ak, class_id, instance,
			summary, raw_hex, tree_json, diagnostics)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.runID, capturedAt.UTC().Format(time.RFC3339Nano), frameNo, hdr.TransactionID, uint8(hdr.MessageType),
		boolToInt(hdr.AR), boolToInt(hdr.AK), hdr.ClassID, hdr.Instance,
		frame.Summary, hex.EncodeToString(raw), string(tree), strings.Join(diags, "\n"))
	if err != nil {
		return 0, fmt.Errorf("insert frame: %w", err)
	}
	return result.LastInsertId()
}

// QueryByClass returns the frames of a class, all runs, in insertion order
func (s *Store) QueryByClass(ctx context.Context, classID uint16) ([]StoredFrame, error) {
	return s.query(ctx, "WHERE class_id = ?", classID)
}

// QueryRun returns the frames of a run in insertion order
func (s *Store) QueryRun(ctx context.Context, runID string) ([]StoredFrame, error) {
	return s.query(ctx, "WHERE run_id = ?", runID)
}

func (s *Store) query(ctx context.Context, where string, arg interface{}) ([]StoredFrame, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, captured_at, frame_no, tid, message_type, ar, ak, class_id, instance,
			summary, raw_hex, tree_json, COALESCE(diagnostics, '')
		FROM frames `+where+` ORDER BY id`, arg)
	if err != nil {
		return nil, fmt.Errorf("query frames: %w", err)
	}
	defer rows.Close()

	var out []StoredFrame
	for rows.Next() {
		var f StoredFrame
		var capturedAt string
		var ar, ak int
		if err := rows.Scan(&f.ID, &f.RunID, &capturedAt, &f.FrameNo, &f.TID, &f.MessageType, &ar, &ak,
			&f.ClassID, &f.Instance, &f.Summary, &f.RawHex, &f.TreeJSON, &f.Diagnostics); err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		f.CapturedAt, _ = time.Parse(time.RFC3339Nano, capturedAt)
		f.AR, f.AK = ar != 0, ak != 0
		out = append(out, f)
	}
	return out, rows.Err()
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
