// Package bf - brainfuck interpreter whose tape cells and data pointer wrap
// around instead of overflowing.
package bf

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/jaredmtdev/wrapnum"
)

// DefaultCells - tape length used unless WithCells is given.
const DefaultCells = 30_000

// cancellation is only checked every checkEvery steps.
const checkEvery = 1 << 10

type machineOpts struct {
	cells     int
	stepLimit int64
	logger    hclog.Logger
}

func (mo *machineOpts) validate() error {
	if mo.cells <= 0 {
		return newInvalidCellsError(mo.cells)
	}
	if mo.stepLimit < 0 {
		return newInvalidStepLimitError(mo.stepLimit)
	}
	return nil
}

// Opt - options used to configure a Machine.
type Opt func(mo *machineOpts)

// WithCells - set the tape length. the data pointer wraps at both ends.
//
// Uses DefaultCells by default.
func WithCells(cells int) Opt {
	return func(mo *machineOpts) {
		mo.cells = cells
	}
}

// WithStepLimit - stop with ErrStepLimit after this many instructions.
//
// Uses 0 (no limit) by default.
func WithStepLimit(limit int64) Opt {
	return func(mo *machineOpts) {
		mo.stepLimit = limit
	}
}

// WithLogger - set logger. pointer wraparound is logged at trace level.
//
// Discards logs by default.
func WithLogger(logger hclog.Logger) Opt {
	return func(mo *machineOpts) {
		mo.logger = logger
	}
}

// Machine - runs compiled programs. each Run starts with a zeroed tape.
type Machine struct {
	opts machineOpts
}

// New - creates a Machine.
func New(opts ...Opt) (*Machine, error) {
	mo := machineOpts{
		cells:  DefaultCells,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&mo)
	}
	if err := mo.validate(); err != nil {
		return nil, err
	}
	return &Machine{opts: mo}, nil
}

// Run - executes p reading ',' input from in and writing '.' output to out.
// ',' at the end of input leaves the cell unchanged.
func (m *Machine) Run(ctx context.Context, p Program, in io.Reader, out io.Writer) error {
	logger := m.opts.logger
	tape := make([]wrapnum.Num[uint8], m.opts.cells)
	for i := range tape {
		tape[i] = wrapnum.Full[uint8](0)
	}
	ptr := wrapnum.Must(wrapnum.New(m.opts.cells))
	w := bufio.NewWriter(out)
	var buf [1]byte
	var steps int64

	logger.Debug("program started", "instructions", p.Len(), "cells", m.opts.cells)

	err := func() error {
		for pc := 0; pc < len(p.code); pc++ {
			steps++
			if m.opts.stepLimit > 0 && steps > m.opts.stepLimit {
				return newStepLimitError(m.opts.stepLimit)
			}
			if steps%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			switch p.code[pc] {
			case '>':
				next := ptr.Inc()
				if next.Less(ptr) && logger.IsTrace() {
					logger.Trace("data pointer wrapped", "from", ptr, "to", next, "pc", pc)
				}
				ptr = next
			case '<':
				next := ptr.Dec()
				if next.Greater(ptr) && logger.IsTrace() {
					logger.Trace("data pointer wrapped", "from", ptr, "to", next, "pc", pc)
				}
				ptr = next
			case '+':
				tape[ptr.Int()] = tape[ptr.Int()].Inc()
			case '-':
				tape[ptr.Int()] = tape[ptr.Int()].Dec()
			case '.':
				if err := w.WriteByte(tape[ptr.Int()].Value()); err != nil {
					return err
				}
			case ',':
				// flush first so interactive prompts show before blocking on input
				if err := w.Flush(); err != nil {
					return err
				}
				_, err := io.ReadFull(in, buf[:])
				if errors.Is(err, io.EOF) {
					continue
				}
				if err != nil {
					return err
				}
				tape[ptr.Int()] = tape[ptr.Int()].At(buf[0])
			case '[':
				if tape[ptr.Int()].Value() == 0 {
					pc = p.jump[pc]
				}
			case ']':
				if tape[ptr.Int()].Value() != 0 {
					pc = p.jump[pc]
				}
			}
		}
		return nil
	}()

	if flushErr := w.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		logger.Debug("program stopped", "steps", steps, "error", err)
		return err
	}
	logger.Debug("program finished", "steps", steps)
	return nil
}
