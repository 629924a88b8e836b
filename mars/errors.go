package mars

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two fatal error kinds spec.md §7 defines.
// ProcessFault and "limit reached" are normal, silent, in-band control flow
// (a faulting process simply dies, an over-limit enqueue is simply
// dropped) and never surface as Go errors.
var (
	// ErrConfigError is wrapped by ConfigError values: bad Core
	// dimensions, too many warriors, invalid instruction parameters.
	ErrConfigError = errors.New("mars: config error")

	// ErrDecodeError is wrapped by DecodeError values: an opcode or
	// modifier value outside the defined set was found in a cell. This
	// should be unreachable once a Core is built only from Instructions
	// constructed via NewInstruction. The engine itself never returns
	// one: Step has no error result, and executeOpcode ends the executing
	// task, as for DAT, when it meets an opcode outside the set.
	ErrDecodeError = errors.New("mars: decode error")
)

// ConfigError reports a fatal misconfiguration, e.g. a Core whose size is
// not a multiple of its width.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mars: config error: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfigError
}

// DecodeError reports an opcode or modifier value that does not correspond
// to any defined enum member.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("mars: decode error: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecodeError
}
