package quantity

import (
	"encoding/json"
	"fmt"

	"github.com/rotblauer/mks/dimension"
	"github.com/tidwall/gjson"
)

type jsonQuantity struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

// MarshalJSON encodes q as {"magnitude": 3, "unit": "m.s^-1"}.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonQuantity{Magnitude: q.magnitude, Unit: q.dimension.Signature()})
}

// UnmarshalJSON decodes the MarshalJSON shape.
// The unit may be any expression dimension.Parse accepts; a missing unit is dimensionless.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: invalid json", ErrDecode)
	}
	mag := gjson.GetBytes(data, "magnitude")
	if mag.Type != gjson.Number {
		return fmt.Errorf("%w: missing or non-numeric 'magnitude'", ErrDecode)
	}
	var dim dimension.Dimension
	if unit := gjson.GetBytes(data, "unit"); unit.Exists() {
		if unit.Type != gjson.String {
			return fmt.Errorf("%w: non-string 'unit'", ErrDecode)
		}
		var err error
		dim, err = dimension.Parse(unit.String())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}
	*q = New(mag.Float(), dim)
	return nil
}
