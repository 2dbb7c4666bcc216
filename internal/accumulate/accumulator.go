package accumulate

import (
	"fmt"
	"sort"
	"sync"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

//go:generate mockgen -destination=mocks/accumulator_mock.go -package=mocks github.com/agbru/exactsum/internal/accumulate Accumulator

// Accumulator accumulates a running value from float64 inputs.
//
// Every Add method either applies its whole input or, on error, leaves
// the running value unchanged. Array forms that take two slices require
// them to have the same length.
type Accumulator interface {
	// Name identifies the implementation (e.g., "exact").
	Name() string
	// IsExact reports whether accumulation introduces no rounding.
	IsExact() bool
	// NoOverflow reports whether the running value can never overflow
	// to infinity when all inputs are finite.
	NoOverflow() bool

	// Clear resets the running value to zero.
	Clear()

	Add(z float64) error
	Add2(z float64) error
	AddAbs(z float64) error
	AddProduct(z0, z1 float64) error
	AddL1(z0, z1 float64) error
	AddL2(z0, z1 float64) error

	AddAll(zs []float64) error
	AddAbsAll(zs []float64) error
	Add2All(zs []float64) error
	AddProducts(z0, z1 []float64) error
	AddL1Distance(z0, z1 []float64) error
	AddL2Distance(z0, z1 []float64) error

	// Float64 rounds the running value to the nearest float64.
	Float64() float64
	// Float32 rounds the running value to the nearest float32.
	Float32() float32
	// Value returns the running value in the implementation's native
	// representation. The result does not alias internal state.
	Value() any
}

// Constructor builds a fresh, cleared Accumulator.
type Constructor func() Accumulator

// Registry maps accumulator names to constructors.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// DefaultRegistry returns a registry holding the built-in accumulators.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.mustRegister(ExactName, func() Accumulator { return NewExact() })
	r.mustRegister(NaiveName, func() Accumulator { return NewNaive() })
	r.mustRegister(KahanName, func() Accumulator { return NewKahan() })
	r.mustRegister(RationalName, func() Accumulator { return NewRational() })
	return r
}

// Register adds a constructor under name. Names are unique.
func (r *Registry) Register(name string, ctor Constructor) error {
	if name == "" || ctor == nil {
		return apperrors.ValidationError{Field: "accumulator", Message: "name and constructor are required"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ctors[name]; ok {
		return apperrors.ValidationError{Field: "accumulator", Message: fmt.Sprintf("%q is already registered", name)}
	}
	r.ctors[name] = ctor
	return nil
}

func (r *Registry) mustRegister(name string, ctor Constructor) {
	if err := r.Register(name, ctor); err != nil {
		panic(err)
	}
}

// New builds the accumulator registered under name.
func (r *Registry) New(name string) (Accumulator, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[name]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewConfigError("unknown accumulator %q (available: %v)", name, r.List())
	}
	return ctor(), nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a selection: "all" yields every registered accumulator
// in name order, anything else a single one.
func (r *Registry) Select(selection string) ([]Accumulator, error) {
	if selection != "all" {
		acc, err := r.New(selection)
		if err != nil {
			return nil, err
		}
		return []Accumulator{acc}, nil
	}
	names := r.List()
	accs := make([]Accumulator, 0, len(names))
	for _, name := range names {
		acc, err := r.New(name)
		if err != nil {
			return nil, err
		}
		accs = append(accs, acc)
	}
	return accs, nil
}

func checkLengths(op string, z0, z1 []float64) error {
	if len(z0) != len(z1) {
		return apperrors.NewPreconditionError(op, "length mismatch: %d and %d", len(z0), len(z1))
	}
	return nil
}
