package units

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/rotblauer/mks/dimension"
	"github.com/rotblauer/mks/params"
	"github.com/rotblauer/mks/quantity"
)

var (
	ErrSymbolDefined = errors.New("symbol already defined")
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrNilNamespace  = errors.New("nil namespace")
)

// Registry is an immutable table of named units built from a params.UnitsConfig.
type Registry struct {
	symbols  []string
	table    map[string]quantity.Quantity
	aliases  map[uint64]alias
	useAlias bool
	logger   *slog.Logger
}

type alias struct {
	symbol string
	dim    dimension.Dimension
}

type Option func(*Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry evaluates every symbol in cfg.
// A nil cfg means params.DefaultUnitsConfig.
//
// Derived units may refer to base units and to each other in any order;
// a derived unit whose expression never resolves fails with ErrUnknownSymbol.
// Constants may refer to any base or derived unit and to constants listed before them.
func NewRegistry(cfg *params.UnitsConfig, opts ...Option) (*Registry, error) {
	r := &Registry{
		table:   make(map[string]quantity.Quantity),
		aliases: make(map[uint64]alias),
		logger:  slog.With("component", "units"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if cfg == nil {
		r.logger.Debug("No units config provided, using default")
		cfg = params.DefaultUnitsConfig()
	}
	r.useAlias = cfg.Aliases

	for _, sym := range cfg.Base {
		if err := r.add(sym, quantity.Base(dimension.Symbol(sym))); err != nil {
			return nil, err
		}
	}
	if err := r.addDerived(cfg.Derived); err != nil {
		return nil, err
	}
	for _, c := range cfg.Constants {
		unit, err := r.Eval(c.Unit)
		if err != nil {
			return nil, fmt.Errorf("constant %s: %w", c.Symbol, err)
		}
		if err := r.add(c.Symbol, unit.Mul(quantity.Scalar(c.Value))); err != nil {
			return nil, err
		}
	}

	r.logger.Info("Built unit registry",
		"base", len(cfg.Base), "derived", len(cfg.Derived), "constants", len(cfg.Constants))
	return r, nil
}

// addDerived resolves derived units to a fixpoint so that they may be listed in any order.
func (r *Registry) addDerived(derived []params.DerivedConfig) error {
	pending := slices.Clone(derived)
	for len(pending) > 0 {
		var next []params.DerivedConfig
		var lastErr error
		for _, d := range pending {
			q, err := r.Eval(d.Unit)
			if errors.Is(err, ErrUnknownSymbol) {
				next = append(next, d)
				lastErr = fmt.Errorf("derived unit %s: %w", d.Symbol, err)
				continue
			}
			if err != nil {
				return fmt.Errorf("derived unit %s: %w", d.Symbol, err)
			}
			if err := r.add(d.Symbol, q); err != nil {
				return err
			}
			if err := r.addAlias(d.Symbol, q); err != nil {
				return err
			}
		}
		if len(next) == len(pending) {
			return lastErr
		}
		pending = next
	}
	return nil
}

func (r *Registry) add(sym string, q quantity.Quantity) error {
	if dimension.Symbol(sym).Empty() {
		return fmt.Errorf("%w: empty", ErrInvalidSymbol)
	}
	d, err := dimension.Parse(sym)
	if err != nil || !d.Equal(dimension.Of(dimension.Symbol(sym))) {
		return fmt.Errorf("%w %q", ErrInvalidSymbol, sym)
	}
	if _, ok := r.table[sym]; ok {
		return fmt.Errorf("%w: %s", ErrSymbolDefined, sym)
	}
	r.table[sym] = q
	r.symbols = append(r.symbols, sym)
	return nil
}

// addAlias records sym as the display name for its dimension.
// Only unit-magnitude definitions qualify, and the first one wins.
func (r *Registry) addAlias(sym string, q quantity.Quantity) error {
	if q.Magnitude() != 1 || q.IsDimensionless() {
		return nil
	}
	h, err := dimension.Hash(q.Dimension())
	if err != nil {
		return fmt.Errorf("hash %s: %w", sym, err)
	}
	if _, ok := r.aliases[h]; !ok {
		r.aliases[h] = alias{symbol: sym, dim: q.Dimension()}
	}
	return nil
}

// Eval evaluates a unit expression such as "m/s" or "kg.m²"
// against the registry's symbols, using only quantity arithmetic.
func (r *Registry) Eval(expr string) (quantity.Quantity, error) {
	d, err := dimension.Parse(expr)
	if err != nil {
		return quantity.Quantity{}, err
	}
	out := quantity.Scalar(1).Quantity()
	for _, sym := range d.Symbols() {
		u, ok := r.table[sym.String()]
		if !ok {
			return quantity.Quantity{}, fmt.Errorf("%w %q in %q", ErrUnknownSymbol, sym, expr)
		}
		p, err := u.PowInt(d.Get(sym))
		if err != nil {
			return quantity.Quantity{}, err
		}
		out = out.Mul(p)
	}
	return out, nil
}

func (r *Registry) Lookup(sym string) (quantity.Quantity, bool) {
	q, ok := r.table[sym]
	return q, ok
}

// Symbols returns every defined symbol in definition order.
func (r *Registry) Symbols() []string {
	return slices.Clone(r.symbols)
}

// Define inserts every symbol of r into ns.
// If any symbol is already bound in ns, nothing is inserted.
func (r *Registry) Define(ns Namespace) error {
	if ns == nil {
		return ErrNilNamespace
	}
	for _, sym := range r.symbols {
		if _, ok := ns[sym]; ok {
			return fmt.Errorf("%w: %s", ErrSymbolDefined, sym)
		}
	}
	for _, sym := range r.symbols {
		ns[sym] = r.table[sym]
		r.logger.Debug("Defined unit", "symbol", sym, "value", r.table[sym])
	}
	return nil
}

// Format is like q.String, but uses a derived symbol for the unit
// when one matches q's dimension exactly, eg. "1 C" rather than "1 A.s".
func (r *Registry) Format(q quantity.Quantity) string {
	if !r.useAlias || q.IsDimensionless() {
		return q.String()
	}
	h, err := dimension.Hash(q.Dimension())
	if err != nil {
		return q.String()
	}
	a, ok := r.aliases[h]
	if !ok || !a.dim.Equal(q.Dimension()) {
		return q.String()
	}
	return quantity.Scalar(q.Magnitude()).Quantity().String() + " " + a.symbol
}

// Define builds a registry from cfg and registers it into ns.
func Define(ns Namespace, cfg *params.UnitsConfig) error {
	r, err := NewRegistry(cfg)
	if err != nil {
		return err
	}
	return r.Define(ns)
}
