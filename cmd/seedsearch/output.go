package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/seedsearch/frame"
	"github.com/katalvlaran/seedsearch/search"
)

// resultRecord is the JSON line written for every matching frame.
type resultRecord struct {
	Time        string `json:"time"`
	Buttons     string `json:"buttons"`
	Timer0      string `json:"timer0"`
	VCount      string `json:"vcount"`
	VFrame      uint32 `json:"vframe"`
	Seed        string `json:"seed"`
	Frame       uint64 `json:"frame"`
	PID         string `json:"pid"`
	Nature      string `json:"nature"`
	IVs         string `json:"ivs"`
	HiddenType  string `json:"hidden_type"`
	HiddenPower uint32 `json:"hidden_power"`
	Ability     uint32 `json:"ability"`
	Shiny       bool   `json:"shiny"`
}

func newResultRecord(f frame.WonderCard) resultRecord {
	return resultRecord{
		Time:        f.Seed.Time.Format(time.DateTime),
		Buttons:     f.Seed.Buttons.String(),
		Timer0:      fmt.Sprintf("%X", f.Seed.Timer0),
		VCount:      fmt.Sprintf("%X", f.Seed.VCount),
		VFrame:      f.Seed.VFrame,
		Seed:        fmt.Sprintf("%016X", f.Seed.RawSeed),
		Frame:       f.Number,
		PID:         fmt.Sprintf("%08X", f.PID),
		Nature:      f.Nature.String(),
		IVs:         f.IVs.String(),
		HiddenType:  f.IVs.HiddenType().String(),
		HiddenPower: f.IVs.HiddenPower(),
		Ability:     f.Ability(),
		Shiny:       f.Shiny,
	}
}

// resultWriter encodes results as JSON lines, up to an optional limit. It is
// safe for concurrent use.
type resultWriter struct {
	mu      sync.Mutex
	enc     *json.Encoder
	limit   uint64
	written uint64
}

func newResultWriter(w io.Writer, limit uint64) *resultWriter {
	return &resultWriter{enc: json.NewEncoder(w), limit: limit}
}

// write encodes f unless the limit has been reached.
func (rw *resultWriter) write(f frame.WonderCard) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.limit > 0 && rw.written >= rw.limit {
		return nil
	}
	rw.written++
	return rw.enc.Encode(newResultRecord(f))
}

func (rw *resultWriter) full() bool {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.limit > 0 && rw.written >= rw.limit
}

func (rw *resultWriter) count() uint64 {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.written
}

// progressLine redraws a percentage on a terminal. On anything else it does
// nothing; progress is still logged at debug level.
type progressLine struct {
	w       io.Writer
	enabled bool
	drawn   bool
}

func newProgressLine(w io.Writer) *progressLine {
	f, ok := w.(*os.File)
	enabled := ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	return &progressLine{w: w, enabled: enabled}
}

func (p *progressLine) update(pr search.Progress) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "\r%6.2f%% %d/%d seeds", 100*pr.Fraction(), pr.Done, pr.Total)
	p.drawn = true
}

func (p *progressLine) finish() {
	if p.drawn {
		fmt.Fprintln(p.w)
	}
}
