package ipc

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nstehr/sitewar/model"
)

// ReadSetup reads the one-off map description: a site count followed by
// "id x y radius" per site.
func ReadSetup(r io.Reader) ([]model.Site, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, fmt.Errorf("read site count: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("invalid site count: %d", n)
	}
	sites := make([]model.Site, n)
	for i := range sites {
		s := &sites[i]
		if _, err := fmt.Fscan(r, &s.ID, &s.X, &s.Y, &s.Radius); err != nil {
			return nil, fmt.Errorf("read site %d: %w", i, err)
		}
	}
	return sites, nil
}

// ReadTurn reads one turn: "gold touchedSite", numSites structure records,
// then a unit count and that many unit records.
func ReadTurn(r io.Reader, numSites int) (model.TurnInput, error) {
	var in model.TurnInput
	if _, err := fmt.Fscan(r, &in.Gold, &in.TouchedSite); err != nil {
		return in, fmt.Errorf("read queen status: %w", err)
	}

	in.Sites = make([]model.StructureRecord, numSites)
	for i := range in.Sites {
		rec := &in.Sites[i]
		var kind, owner int
		if _, err := fmt.Fscan(r, &rec.SiteID, &rec.Gold, &rec.MaxMineSize, &kind, &owner, &rec.Param1, &rec.Param2); err != nil {
			return in, fmt.Errorf("read site record %d: %w", i, err)
		}
		rec.Kind = model.StructureKind(kind)
		rec.Owner = model.Owner(owner)
	}

	var numUnits int
	if _, err := fmt.Fscan(r, &numUnits); err != nil {
		return in, fmt.Errorf("read unit count: %w", err)
	}
	if numUnits < 0 {
		return in, fmt.Errorf("invalid unit count: %d", numUnits)
	}
	in.Units = make([]model.UnitRecord, numUnits)
	for i := range in.Units {
		u := &in.Units[i]
		var owner, kind int
		if _, err := fmt.Fscan(r, &u.X, &u.Y, &owner, &kind, &u.HP); err != nil {
			return in, fmt.Errorf("read unit %d: %w", i, err)
		}
		u.Owner = model.Owner(owner)
		u.Kind = model.UnitKind(kind)
	}
	return in, nil
}

// WriteTurn writes the queen line then the training line and flushes.
func WriteTurn(w *bufio.Writer, tc TurnCommands) error {
	for _, line := range tc.Lines() {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("write command: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write command: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush commands: %w", err)
	}
	return nil
}
