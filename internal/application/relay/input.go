package relay

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a numeric request field. It accepts JSON numbers and numeric
// strings; anything else is kept as present-but-invalid so validation can
// report it with the field's own message instead of a decode error.
type Number struct {
	value   decimal.Decimal
	present bool
	valid   bool
}

// NewNumber returns a present, valid Number
func NewNumber(d decimal.Decimal) Number {
	return Number{value: d, present: true, valid: true}
}

// UnmarshalJSON implements json.Unmarshaler. null leaves the field absent.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	raw := bytes.TrimSpace(data)
	if string(raw) == "null" {
		return nil
	}
	n.present = true

	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
	}
	if d, err := decimal.NewFromString(text); err == nil {
		n.value = d
		n.valid = true
	}
	return nil
}

// Present reports whether the field was sent with a non-null value
func (n Number) Present() bool { return n.present }

// Valid reports whether the field parsed as a number
func (n Number) Valid() bool { return n.present && n.valid }

// Decimal returns the parsed value, or zero when absent or invalid
func (n Number) Decimal() decimal.Decimal {
	if !n.Valid() {
		return decimal.Zero
	}
	return n.value
}

// IntOr returns the integer part, or def when the value is absent,
// invalid or truncates to zero.
func (n Number) IntOr(def int64) int64 {
	if !n.Valid() {
		return def
	}
	if i := n.value.IntPart(); i != 0 {
		return i
	}
	return def
}

// validationValue is what validator tags see: nil when absent, NaN when
// unparseable, the float value otherwise.
func (n Number) validationValue() any {
	if !n.present {
		return nil
	}
	if !n.valid {
		return math.NaN()
	}
	return n.value.InexactFloat64()
}

// Flag is a boolean request field that records whether it was sent and
// whether the sent value was a JSON boolean.
type Flag struct {
	value   bool
	present bool
	valid   bool
}

// NewFlag returns a present, valid Flag
func NewFlag(v bool) Flag {
	return Flag{value: v, present: true, valid: true}
}

// UnmarshalJSON implements json.Unmarshaler. null leaves the field absent.
func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = Flag{}
	switch string(bytes.TrimSpace(data)) {
	case "null":
	case "true":
		*f = NewFlag(true)
	case "false":
		*f = NewFlag(false)
	default:
		f.present = true
	}
	return nil
}

// Present reports whether the field was sent with a non-null value
func (f Flag) Present() bool { return f.present }

// Valid reports whether the sent value was a boolean
func (f Flag) Valid() bool { return f.present && f.valid }

// Value returns the boolean value; false when absent or invalid
func (f Flag) Value() bool { return f.Valid() && f.value }

// IsExplicitFalse reports whether the caller sent a literal false
func (f Flag) IsExplicitFalse() bool { return f.Valid() && !f.value }

func (f Flag) validationValue() any {
	if !f.present {
		return nil
	}
	if !f.valid {
		return "invalid"
	}
	return f.value
}

// ID is an identifier request field. Platforms send ids both as strings and
// as JSON numbers; numbers keep their literal text. A numeric zero counts as
// not sent. Any other JSON type is kept as present-but-invalid.
type ID struct {
	value   string
	present bool
	valid   bool
}

// NewID returns a present, valid ID
func NewID(s string) ID {
	return ID{value: s, present: true, valid: true}
}

// UnmarshalJSON implements json.Unmarshaler. null leaves the field absent.
func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ID{}
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*id = NewID(s)
	case c == '-' || (c >= '0' && c <= '9'):
		if d, err := decimal.NewFromString(string(raw)); err == nil && d.IsZero() {
			return nil
		}
		*id = NewID(string(raw))
	default:
		id.present = true
	}
	return nil
}

// Present reports whether a non-null, non-zero value was sent
func (id ID) Present() bool { return id.present }

// Valid reports whether the sent value was a string or a number
func (id ID) Valid() bool { return id.valid }

// String returns the identifier, or "" when absent or invalid
func (id ID) String() string {
	if !id.valid {
		return ""
	}
	return id.value
}

// validationValue is nil when absent, true when the sent value was neither a
// string nor a number, and the identifier otherwise.
func (id ID) validationValue() any {
	if !id.present {
		return nil
	}
	if !id.valid {
		return true
	}
	return id.value
}
