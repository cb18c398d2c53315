package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/world"
)

// ErrNotFound is returned when an organization id has no stored row
var ErrNotFound = errors.New("store: organization not found")

type positionReq struct {
	orgID   string
	agentID string
	x, y    float64
}

// Store is the SQLite-backed organization and position store. Position
// writes are fire-and-forget: SavePosition enqueues and returns, a single
// writer goroutine serializes the upserts, and writes beyond the queue
// capacity are dropped and logged. A dropped write only loses a later
// retry; the next drag of the same agent writes the newest position anyway.
type Store struct {
	db *sql.DB

	ch   chan positionReq
	wg   sync.WaitGroup
	once sync.Once

	closed  atomic.Bool
	dropped atomic.Int64

	log *slog.Logger
}

// Open opens or creates the database at path and starts the position writer
func Open(path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store: empty db path")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{
		db:  db,
		ch:  make(chan positionReq, constant.PositionQueueSize),
		log: logger,
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS organizations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			data TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS agent_positions (
			org_id TEXT NOT NULL,
			agent_id TEXT NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (org_id, agent_id)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close drains the position queue and closes the database
func (s *Store) Close() error {
	var err error
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.ch)
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

// SaveOrganization upserts the full organization document
func (s *Store) SaveOrganization(org *world.Organization) error {
	if org == nil || org.ID == "" {
		return fmt.Errorf("store: organization without id")
	}
	data, err := json.Marshal(org)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO organizations (id, name, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, data=excluded.data, updated_at=excluded.updated_at`,
		org.ID, org.Name, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// LoadOrganization reads one organization and overlays the saved agent
// positions on top of the document's defaults
func (s *Store) LoadOrganization(id string) (*world.Organization, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM organizations WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var org world.Organization
	if err := json.Unmarshal([]byte(data), &org); err != nil {
		return nil, fmt.Errorf("store: decode organization %s: %w", id, err)
	}

	rows, err := s.db.Query(`SELECT agent_id, x, y FROM agent_positions WHERE org_id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var agentID string
		var x, y float64
		if err := rows.Scan(&agentID, &x, &y); err != nil {
			return nil, err
		}
		if a := org.FindAgent(agentID); a != nil {
			a.Position = world.Position{X: x, Y: y}
		}
		// positions for agents no longer in the document are ignored
	}
	return &org, rows.Err()
}

// FirstOrganizationID returns the id of any stored organization, or
// ErrNotFound on an empty database
func (s *Store) FirstOrganizationID() (string, error) {
	var id string
	err := s.db.QueryRow(`SELECT id FROM organizations ORDER BY id LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return id, err
}

// SavePosition enqueues one position upsert and returns immediately.
// Implements the engine's position writer.
func (s *Store) SavePosition(orgID, agentID string, x, y float64) {
	if s == nil || s.closed.Load() {
		return
	}
	select {
	case s.ch <- positionReq{orgID: orgID, agentID: agentID, x: x, y: y}:
	default:
		n := s.dropped.Add(1)
		s.log.Warn("position write dropped", "agent", agentID, "dropped_total", n)
	}
}

// Dropped reports how many position writes were discarded on a full queue
func (s *Store) Dropped() int64 {
	return s.dropped.Load()
}

func (s *Store) loop() {
	for r := range s.ch {
		_, err := s.db.Exec(
			`INSERT INTO agent_positions (org_id, agent_id, x, y, updated_at) VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(org_id, agent_id) DO UPDATE SET x=excluded.x, y=excluded.y, updated_at=excluded.updated_at`,
			r.orgID, r.agentID, r.x, r.y, time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			// last-write-wins semantics tolerate a lost write
			s.log.Error("position write failed", "agent", r.agentID, "error", err)
		}
	}
}
