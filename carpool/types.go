package carpool

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by FindRoute, Plan and RouteCost.
var (
	// ErrInvalidInput is the category every validation error wraps.
	ErrInvalidInput = errors.New("carpool: invalid input")

	// ErrNoRoads indicates that the road list is empty, so no node ids exist.
	ErrNoRoads = fmt.Errorf("%w: road list is empty", ErrInvalidInput)

	// ErrNodeOutOfRange indicates a start, end, passenger or path node that
	// does not appear in the node range [0, N) derived from the roads.
	ErrNodeOutOfRange = fmt.Errorf("%w: node id out of range", ErrInvalidInput)

	// ErrNegativeWeight indicates a road with a negative solo or carpool weight.
	ErrNegativeWeight = fmt.Errorf("%w: negative road weight", ErrInvalidInput)

	// ErrNotAdjacent indicates a path handed to RouteCost with two consecutive
	// nodes that no road connects.
	ErrNotAdjacent = fmt.Errorf("%w: consecutive path nodes are not connected", ErrInvalidInput)

	// ErrNoPath indicates that end cannot be reached from start.
	ErrNoPath = errors.New("carpool: no path found")

	// ErrBadMaxCost indicates that WithMaxCost received a negative cap.
	ErrBadMaxCost = errors.New("carpool: MaxCost must be non-negative")
)

// Road is one directed road segment. Solo is the travel cost while driving
// alone, Carpool the cost once a passenger is on board.
type Road struct {
	From    int
	To      int
	Solo    float64
	Carpool float64
}

// Route is the full result of a search.
//
// Path    – node ids from start to end inclusive.
// Cost    – total cost, solo weights before the pickup and carpool weights after.
// Pickup  – node where the passenger boarded, or -1 when the route is driven alone.
type Route struct {
	Path   []int
	Cost   float64
	Pickup int
}

// Carrying reports whether the route picks up a passenger.
func (r Route) Carrying() bool { return r.Pickup >= 0 }

// Options configures a search.
//
// MaxCost – entries whose cost exceeds this value are not explored.
// Must be ≥ 0. Default is +Inf (no cap).
//
// Logger  – receives a Debug summary of every search.
type Options struct {
	MaxCost float64
	Logger  logrus.FieldLogger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxCost caps exploration: heap entries costing more than max are
// discarded, so a destination farther than max yields ErrNoPath.
// Panics with ErrBadMaxCost on a negative cap.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithLogger routes Debug tracing to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with no cost cap and the logrus standard logger.
func DefaultOptions() Options {
	return Options{
		MaxCost: math.Inf(1),
		Logger:  logrus.StandardLogger(),
	}
}
