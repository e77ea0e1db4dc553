package ipc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nstehr/sitewar/model"
)

// SetupHandler receives the map once, before the first turn.
type SetupHandler func(sites []model.Site) error

// TurnHandler decides one turn.
type TurnHandler func(in model.TurnInput) (TurnCommands, error)

// Connection is the referee's stdin/stdout pipe pair.
type Connection struct {
	r *bufio.Reader
	w *bufio.Writer

	onSetup SetupHandler
	onTurn  TurnHandler
}

func NewConnection(r io.Reader, w io.Writer) *Connection {
	return &Connection{
		r: bufio.NewReader(r),
		w: bufio.NewWriter(w),
	}
}

func (c *Connection) HandleSetup(h SetupHandler) { c.onSetup = h }
func (c *Connection) HandleTurn(h TurnHandler)   { c.onTurn = h }

// ReadLoop reads the setup, then answers turns until the referee closes the
// input. A clean EOF between turns returns nil.
func (c *Connection) ReadLoop() error {
	if c.onTurn == nil {
		return errors.New("no turn handler registered")
	}

	sites, err := ReadSetup(c.r)
	if err != nil {
		return err
	}
	slog.Info("map received", "sites", len(sites))
	if c.onSetup != nil {
		if err := c.onSetup(sites); err != nil {
			return fmt.Errorf("setup handler: %w", err)
		}
	}

	for {
		in, err := ReadTurn(c.r, len(sites))
		if err != nil {
			if errors.Is(err, io.EOF) {
				slog.Info("input closed")
				return nil
			}
			return err
		}

		tc, err := c.onTurn(in)
		if err != nil {
			// Never skip a reply: the referee expects two lines every turn.
			slog.Error("turn handler error", "error", err)
			tc = TurnCommands{Queen: Wait{}}
		}
		if err := WriteTurn(c.w, tc); err != nil {
			return err
		}
	}
}
