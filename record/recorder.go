// Package record writes session events to a zstd-compressed JSONL file.
package record

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"minisnake/game/manager"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Recorder is a manager.Observer. A failed write is logged once and turns
// the recorder off; play continues.
type Recorder struct {
	f      *os.File
	enc    *zstd.Encoder
	w      *bufio.Writer
	logger *slog.Logger
	err    error
}

// Create truncates path and starts a new recording there.
func Create(path string, logger *slog.Logger) (*Recorder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("record: %w", err)
	}
	return &Recorder{
		f:      f,
		enc:    enc,
		w:      bufio.NewWriterSize(enc, 64*1024),
		logger: logger,
	}, nil
}

func (r *Recorder) Observe(ev manager.Event) {
	if r.err != nil || r.w == nil {
		return
	}
	if err := r.write(ev); err != nil {
		r.err = err
		r.logger.Error("recording stopped", "err", err)
	}
}

func (r *Recorder) write(ev manager.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return err
	}
	if ev.Kind == manager.EventGameOver {
		return r.endFrame()
	}
	return nil
}

// endFrame closes the current zstd frame so everything recorded so far is
// on disk and decodable, then starts a new frame for the next session.
func (r *Recorder) endFrame() error {
	if err := r.w.Flush(); err != nil {
		return err
	}
	if err := r.enc.Close(); err != nil {
		return err
	}
	r.enc.Reset(r.f)
	return nil
}

// Err reports the write error that stopped the recorder, if any.
func (r *Recorder) Err() error {
	return r.err
}

// Close flushes buffered events and finishes the zstd frame.
func (r *Recorder) Close() error {
	var errs []error
	if r.w != nil {
		errs = append(errs, r.w.Flush())
	}
	if r.enc != nil {
		errs = append(errs, r.enc.Close())
	}
	if r.f != nil {
		errs = append(errs, r.f.Close())
	}
	r.w, r.enc, r.f = nil, nil, nil
	return errors.Join(errs...)
}

// ReadAll decodes every event in a recording.
func ReadAll(rd io.Reader) ([]manager.Event, error) {
	dec, err := zstd.NewReader(rd)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	defer dec.Close()

	var events []manager.Event
	scanner := bufio.NewScanner(dec)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var ev manager.Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			return events, fmt.Errorf("record: line %d: %w", len(events)+1, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("record: %w", err)
	}
	return events, nil
}

// ReadFile decodes the recording at path.
func ReadFile(path string) ([]manager.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f)
}
