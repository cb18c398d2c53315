package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

// SessionRecorder appends JSON lines to a zstd-compressed session log, one
// file per mounted session. Safe for concurrent use; the frame loop is the
// only writer in practice but tests call Record directly.
type SessionRecorder struct {
	path string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewSessionRecorder creates a session log under baseDir, named by start
// time so consecutive sessions never collide
func NewSessionRecorder(baseDir string) (*SessionRecorder, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("session-%s.jsonl.zst", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(baseDir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &SessionRecorder{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Path returns the session log location
func (r *SessionRecorder) Path() string { return r.path }

// Record appends one entry as a JSON line
func (r *SessionRecorder) Record(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return fmt.Errorf("replay: recorder closed")
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return err
	}
	return r.w.Flush()
}

// Close flushes and closes the session log
func (r *SessionRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return nil
	}
	_ = r.w.Flush()
	r.w = nil
	err := r.enc.Close()
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	r.enc = nil
	r.f = nil
	return err
}
