package params

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/viper"
)

// UnitsConfig enumerates the symbols a units registry defines.
// Symbols are always list entries, never map keys, because viper folds key case
// and unit symbols are case sensitive (Pa vs. pa, K vs. k).
type UnitsConfig struct {
	// Base lists the base unit symbols.
	// Each becomes a quantity of magnitude 1 along its own axis.
	Base []string `mapstructure:"base"`

	// Derived units are named products of powers of other units,
	// eg. {Symbol: "N", Unit: "kg.m/s2"}.
	Derived []DerivedConfig `mapstructure:"derived"`

	// Constants are named multiples of other units,
	// eg. physical constants or explicitly prefixed units like {Symbol: "km", Value: 1000, Unit: "m"}.
	Constants []ConstantConfig `mapstructure:"constants"`

	// Aliases enables derived-symbol substitution when formatting,
	// so that a quantity in A.s prints as C.
	Aliases bool `mapstructure:"aliases"`
}

type DerivedConfig struct {
	Symbol string `mapstructure:"symbol"`
	Unit   string `mapstructure:"unit"`
}

type ConstantConfig struct {
	Symbol string  `mapstructure:"symbol"`
	Value  float64 `mapstructure:"value"`
	Unit   string  `mapstructure:"unit"`
}

// SIBaseSymbols are the seven SI base units.
var SIBaseSymbols = []string{"m", "kg", "s", "A", "K", "mol", "cd"}

// DefaultUnitsConfig returns the SI base units,
// the derived units volt, watt, joule, newton, pascal and coulomb,
// and the gas constant, the Faraday constant and the dalton.
func DefaultUnitsConfig() *UnitsConfig {
	return &UnitsConfig{
		Base: slices.Clone(SIBaseSymbols),
		Derived: []DerivedConfig{
			{Symbol: "V", Unit: "m2.kg/s3.A"},
			{Symbol: "W", Unit: "m2.kg/s3"},
			{Symbol: "J", Unit: "m2.kg/s2"},
			{Symbol: "N", Unit: "m.kg/s2"},
			{Symbol: "Pa", Unit: "kg/m.s2"},
			{Symbol: "C", Unit: "A.s"},
		},
		Constants: []ConstantConfig{
			{Symbol: "R", Value: 8.3144621, Unit: "kg.m2/mol.s2.K"},
			{Symbol: "F", Value: 9.64853399e4, Unit: "A.s/mol"},
			{Symbol: "Da", Value: 1.660538921e-27, Unit: "kg"},
		},
		Aliases: true,
	}
}

var ErrNilViper = errors.New("nil viper instance")

// LoadUnitsConfig decodes a UnitsConfig from v, eg. viper.Sub("units").
// Keys that are not set keep their DefaultUnitsConfig values;
// a key that is set replaces the default wholesale.
//
//	base: [m, kg, s]
//	derived:
//	  - symbol: N
//	    unit: kg.m/s2
//	constants:
//	  - symbol: km
//	    value: 1000
//	    unit: m
func LoadUnitsConfig(v *viper.Viper) (*UnitsConfig, error) {
	if v == nil {
		return nil, ErrNilViper
	}
	cfg := &UnitsConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode units config: %w", err)
	}
	def := DefaultUnitsConfig()
	if !v.IsSet("base") {
		cfg.Base = def.Base
	}
	if !v.IsSet("derived") {
		cfg.Derived = def.Derived
	}
	if !v.IsSet("constants") {
		cfg.Constants = def.Constants
	}
	if !v.IsSet("aliases") {
		cfg.Aliases = def.Aliases
	}
	return cfg, nil
}
