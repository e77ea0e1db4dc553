// Package replay records games as zstd-compressed JSON lines and reads them
// back. A recording starts with one setup entry holding the map, followed by
// one entry per turn with the referee input and the two commands sent back.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/nstehr/sitewar/ipc"
	"github.com/nstehr/sitewar/model"
)

const (
	KindSetup = "setup"
	KindTurn  = "turn"
)

// SiteRecord is the static part of a site as the referee sends it.
type SiteRecord struct {
	ID     int `json:"id"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Radius int `json:"radius"`
}

// Entry is one line of a recording.
type Entry struct {
	Kind  string           `json:"kind"`
	Sites []SiteRecord     `json:"sites,omitempty"`
	Turn  int              `json:"turn,omitempty"`
	Input *model.TurnInput `json:"input,omitempty"`
	Queen string           `json:"queen,omitempty"`
	Train string           `json:"train,omitempty"`
}

// ModelSites converts a setup entry back to map sites.
func (e Entry) ModelSites() []model.Site {
	out := make([]model.Site, len(e.Sites))
	for i, s := range e.Sites {
		out[i] = model.Site{ID: s.ID, X: s.X, Y: s.Y, Radius: s.Radius}
	}
	return out
}

// Recorder appends entries to a zstd stream. Every entry is flushed through
// the encoder's buffer so a crashed game keeps all complete turns.
type Recorder struct {
	mu     sync.Mutex
	closer io.Closer
	enc    *zstd.Encoder
	w      *bufio.Writer
}

// NewRecorder compresses entries into w. Close finishes the zstd frame but
// leaves w open.
func NewRecorder(w io.Writer) (*Recorder, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	return &Recorder{
		enc: enc,
		w:   bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Create truncates path and records into it. Close also closes the file.
func Create(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	r, err := NewRecorder(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

func (r *Recorder) RecordSetup(sites []model.Site) error {
	recs := make([]SiteRecord, len(sites))
	for i, s := range sites {
		recs[i] = SiteRecord{ID: s.ID, X: s.X, Y: s.Y, Radius: s.Radius}
	}
	return r.write(Entry{Kind: KindSetup, Sites: recs})
}

func (r *Recorder) RecordTurn(turn int, in model.TurnInput, tc ipc.TurnCommands) error {
	lines := tc.Lines()
	return r.write(Entry{
		Kind:  KindTurn,
		Turn:  turn,
		Input: &in,
		Queen: lines[0],
		Train: lines[1],
	})
}

func (r *Recorder) write(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.w == nil {
		return errors.New("recorder closed")
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return err
	}
	if err := r.w.Flush(); err != nil {
		return err
	}
	return r.enc.Flush()
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.w == nil {
		return nil
	}
	err := r.w.Flush()
	if cerr := r.enc.Close(); err == nil {
		err = cerr
	}
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	r.w = nil
	return err
}

// Reader walks the entries of a recording in order.
type Reader struct {
	closer io.Closer
	dec    *zstd.Decoder
	sc     *bufio.Scanner
	line   int
}

func NewReader(r io.Reader) (*Reader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	return &Reader{dec: dec, sc: sc}, nil
}

func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Next returns the next entry, or io.EOF after the last one.
func (r *Reader) Next() (Entry, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Entry{}, err
		}
		return Entry{}, io.EOF
	}
	r.line++
	var e Entry
	if err := json.Unmarshal(r.sc.Bytes(), &e); err != nil {
		return Entry{}, fmt.Errorf("line %d: unmarshal: %w", r.line, err)
	}
	return e, nil
}

func (r *Reader) Close() error {
	r.dec.Close()
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Game is a fully loaded recording.
type Game struct {
	Sites []model.Site
	Turns []Entry
}

// ReadGame loads a whole recording. The first entry must be the setup.
func ReadGame(r *Reader) (Game, error) {
	first, err := r.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Game{}, errors.New("empty recording")
		}
		return Game{}, err
	}
	if first.Kind != KindSetup {
		return Game{}, fmt.Errorf("recording starts with %q, want %q", first.Kind, KindSetup)
	}
	g := Game{Sites: first.ModelSites()}
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return g, nil
		}
		if err != nil {
			return Game{}, err
		}
		if e.Kind != KindTurn || e.Input == nil {
			return Game{}, fmt.Errorf("line %d: unexpected %q entry", r.line, e.Kind)
		}
		g.Turns = append(g.Turns, e)
	}
}
