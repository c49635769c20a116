/*
Package script replays declarative TOML operation scripts against a stack.
*/
package script

import (
	"errors"
	"fmt"

	"github.com/mgnsk/circstack"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Available operations.
const (
	OpAdd      = "add"
	OpAppend   = "append"
	OpPrepend  = "prepend"
	OpRemove   = "remove"
	OpRemoveAt = "remove-at"
	OpClear    = "clear"
	OpReverse  = "reverse"
)

// ErrUnknownOp indicates an operation name that is not supported.
var ErrUnknownOp = errors.New("unknown operation")

// ErrNotFound indicates a remove operation matched no element.
var ErrNotFound = errors.New("value not found")

// Op is a single script operation.
type Op struct {
	Op    string `toml:"op"`
	At    int    `toml:"at"`
	Value int64  `toml:"value"`
}

// Script is a list of initial values and the operations to apply to them.
type Script struct {
	Values []int64 `toml:"values"`
	Ops    []Op    `toml:"ops"`
}

// Parse decodes and validates a TOML script.
func Parse(data []byte) (*Script, error) {
	var s Script

	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	for i, op := range s.Ops {
		switch op.Op {
		case OpAdd, OpAppend, OpPrepend, OpRemove, OpRemoveAt, OpClear, OpReverse:
		default:
			return nil, fmt.Errorf("script: op %d: %w '%s'", i, ErrUnknownOp, op.Op)
		}
	}

	return &s, nil
}

// Stack creates a stack holding the script's initial values.
func (s *Script) Stack(opts ...circstack.Option) (*circstack.Stack[int64], error) {
	return circstack.FromSlice(s.Values, opts...)
}

// Run applies the operations to st in order and returns the resulting stack.
// A reverse operation replaces the working stack with its reversal.
func (s *Script) Run(st *circstack.Stack[int64], logger zerolog.Logger) (*circstack.Stack[int64], error) {
	for i, op := range s.Ops {
		var err error

		st, err = apply(st, op)
		if err != nil {
			return st, fmt.Errorf("script: op %d: %w", i, err)
		}

		logger.Debug().
			Int("step", i).
			Str("op", op.Op).
			Int("len", st.Len()).
			Str("values", st.String()).
			Msg("applied")
	}

	return st, nil
}

func apply(st *circstack.Stack[int64], op Op) (*circstack.Stack[int64], error) {
	switch op.Op {
	case OpAdd:
		return st, st.Add(op.Value)

	case OpAppend:
		e, err := st.Get(op.At)
		if err != nil {
			return st, err
		}
		e.Append(op.Value)

	case OpPrepend:
		e, err := st.Get(op.At)
		if err != nil {
			return st, err
		}
		e.Prepend(op.Value)

	case OpRemove:
		if !st.Remove(op.Value) {
			return st, fmt.Errorf("%w: %d", ErrNotFound, op.Value)
		}

	case OpRemoveAt:
		if !st.RemoveAt(op.At) {
			return st, fmt.Errorf("%w: index %d with length %d", circstack.ErrOutOfRange, op.At, st.Len())
		}

	case OpClear:
		st.Clear()

	case OpReverse:
		return st.Reverse(), nil

	default:
		return st, fmt.Errorf("%w '%s'", ErrUnknownOp, op.Op)
	}

	return st, nil
}
