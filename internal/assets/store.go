/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package assets stores converted media blobs on disk, content-addressed by
// SHA-256, with a small embedded SQLite catalog next to them. Widgets hold
// only the asset:// reference; Resolve turns it back into a file path.
package assets

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "pagebuilder/internal/log"
	"pagebuilder/internal/version"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	CatalogFileName = "assets.sqlite"
	blobDirName     = "blobs"

	// RefScheme prefixes every reference handed out by Put.
	RefScheme = "asset://"

	schemaVersion = 1
)

// ErrNotExist is returned by Resolve for a reference the store never issued.
var ErrNotExist = errors.New("asset does not exist")

// Entry describes one catalogued asset.
type Entry struct {
	Hash      string
	Name      string
	MIME      string
	Size      int64
	CreatedAt time.Time
}

// Store is a content-addressed blob store rooted at a directory.
type Store struct {
	root string
	db   *sql.DB
	log  *slog.Logger
}

// Open ensures the asset directory exists, opens the catalog database in WAL
// mode and creates the schema when missing.
func Open(root string) (*Store, error) {
	l := applog.WithOperation(applog.WithComponent("assets"), "open").With(
		slog.String("root", root),
	)
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("asset root is required")
	}
	if err := os.MkdirAll(filepath.Join(root, blobDirName), 0o755); err != nil {
		l.Error("create asset dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create asset dir: %w", err)
	}

	path := filepath.Join(root, CatalogFileName)
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure schema failed", slog.Any("err", err))
		return nil, err
	}

	l.Info("asset store ready", slog.String("catalog", path))
	return &Store{root: root, db: db, log: applog.WithComponent("assets")}, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS assets (
			hash       TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			mime       TEXT NOT NULL,
			size       INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_assets_name ON assets(name);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	seed := [][2]string{
		{"schema", fmt.Sprintf("%d", schemaVersion)},
		{"app", version.String()},
		{"updated_at", now},
	}
	for _, kv := range seed {
		if _, err := db.ExecContext(ctx, `INSERT INTO meta(key, value) VALUES(?, ?)
			ON CONFLICT(key) DO UPDATE SET value=excluded.value`, kv[0], kv[1]); err != nil {
			return fmt.Errorf("seed meta: %w", err)
		}
	}
	return nil
}

// Put writes the blob under its content hash and records it in the catalog.
// Storing the same bytes twice is a no-op that returns the same reference.
func (s *Store) Put(ctx context.Context, name, mime string, data []byte) (string, error) {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	ref := RefScheme + hash

	blobPath := s.blobPath(hash)
	if _, err := os.Stat(blobPath); errors.Is(err, os.ErrNotExist) {
		tmp := blobPath + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return "", fmt.Errorf("write blob: %w", err)
		}
		if err := os.Rename(tmp, blobPath); err != nil {
			_ = os.Remove(tmp)
			return "", fmt.Errorf("commit blob: %w", err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, `INSERT INTO assets(hash, name, mime, size, created_at)
		VALUES(?, ?, ?, ?, ?) ON CONFLICT(hash) DO NOTHING`, hash, name, mime, int64(len(data)), now); err != nil {
		return "", fmt.Errorf("catalog asset: %w", err)
	}
	s.log.Debug("asset stored",
		slog.String("name", name),
		slog.String("mime", mime),
		slog.Int("size", len(data)),
		slog.String("ref", ref),
	)
	return ref, nil
}

// Resolve maps an asset:// reference to the blob's file path.
func (s *Store) Resolve(ctx context.Context, ref string) (string, error) {
	hash, ok := strings.CutPrefix(ref, RefScheme)
	if !ok || hash == "" {
		return "", fmt.Errorf("malformed reference %q: %w", ref, ErrNotExist)
	}
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM assets WHERE hash=?`, hash).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("%s: %w", ref, ErrNotExist)
	case err != nil:
		return "", fmt.Errorf("lookup asset: %w", err)
	}
	return s.blobPath(hash), nil
}

// List returns the catalogued assets, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT hash, name, mime, size, created_at
		FROM assets ORDER BY created_at DESC, hash`)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.Hash, &e.Name, &e.MIME, &e.Size, &created); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the catalog database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) blobPath(hash string) string {
	return filepath.Join(s.root, blobDirName, hash)
}
