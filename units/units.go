// Package units supplies named base units, derived units and constants,
// and registers them into a caller-owned namespace.
package units

import (
	"github.com/rotblauer/mks/dimension"
	"github.com/rotblauer/mks/quantity"
)

// SI base unit symbols.
const (
	SymbolMeter    dimension.Symbol = "m"
	SymbolKilogram dimension.Symbol = "kg"
	SymbolSecond   dimension.Symbol = "s"
	SymbolAmpere   dimension.Symbol = "A"
	SymbolKelvin   dimension.Symbol = "K"
	SymbolMole     dimension.Symbol = "mol"
	SymbolCandela  dimension.Symbol = "cd"
)

// SI base units; each is 1 along its own axis.
var (
	Meter    = quantity.Base(SymbolMeter)
	Kilogram = quantity.Base(SymbolKilogram)
	Second   = quantity.Base(SymbolSecond)
	Ampere   = quantity.Base(SymbolAmpere)
	Kelvin   = quantity.Base(SymbolKelvin)
	Mole     = quantity.Base(SymbolMole)
	Candela  = quantity.Base(SymbolCandela)
)

// Namespace is a caller-owned environment of named quantities.
type Namespace map[string]quantity.Quantity
