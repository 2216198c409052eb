package throughput

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidInput is the category every validation error wraps.
	ErrInvalidInput = errors.New("throughput: invalid input")

	// ErrBoundsMismatch indicates maxIn and maxOut describe different node counts.
	ErrBoundsMismatch = fmt.Errorf("%w: maxIn and maxOut lengths differ", ErrInvalidInput)

	// ErrNodeOutOfRange indicates an origin, target or connection endpoint
	// outside [0, len(maxIn)).
	ErrNodeOutOfRange = fmt.Errorf("%w: node id out of range", ErrInvalidInput)

	// ErrOriginIsTarget indicates the origin also appears among the targets.
	ErrOriginIsTarget = fmt.Errorf("%w: origin cannot be a target", ErrInvalidInput)

	// ErrNegativeCapacity is wrapped by every CapacityError.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInvalidInput)
)

// CapacityError is returned when a connection or a node bound is negative.
// For node bounds From == To == the node id and Kind names the bound.
type CapacityError struct {
	Kind     string // "connection", "max_in" or "max_out"
	From, To int
	Cap      int64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("throughput: negative %s capacity %d→%d: %d", e.Kind, e.From, e.To, e.Cap)
}

// Unwrap lets errors.Is match ErrNegativeCapacity and ErrInvalidInput.
func (e CapacityError) Unwrap() error { return ErrNegativeCapacity }

// Connection is a directed channel from one node to another.
type Connection struct {
	From     int
	To       int
	Capacity int64
}

// EdgeFlow is a read-only view of one internal edge after Run.
// From and To are internal node ids (see InNode, MidNode, OutNode).
type EdgeFlow struct {
	From     int
	To       int
	Capacity int64
	Flow     int64
}

// Options configures Run.
//   - Logger: receives a Debug entry per augmentation; nil means the logrus standard logger.
type Options struct {
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options logging to the logrus standard logger.
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}
