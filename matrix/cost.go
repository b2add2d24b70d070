package matrix

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Cost is the price of one transition: either a non-negative integer weight
// or Blocked. The zero value is an open transition of weight 0.
//
// Blocked is a distinct variant rather than a reserved integer, so it can
// never leak into sums: Sub leaves it untouched and Value reports ok=false.
type Cost struct {
	w       int
	blocked bool
}

// blockedToken is the canonical textual form of a blocked cost.
const blockedToken = "-"

// Weight returns an open cost of n.
func Weight(n int) Cost { return Cost{w: n} }

// Blocked returns the "no transition allowed" cost.
func Blocked() Cost { return Cost{blocked: true} }

// IsBlocked reports whether c forbids the transition.
func (c Cost) IsBlocked() bool { return c.blocked }

// IsZero reports whether c is an open transition of weight exactly 0.
func (c Cost) IsZero() bool { return !c.blocked && c.w == 0 }

// Value returns the weight and true, or 0 and false for a blocked cost.
func (c Cost) Value() (int, bool) {
	if c.blocked {
		return 0, false
	}

	return c.w, true
}

// Sub returns c reduced by d. Blocked stays blocked.
func (c Cost) Sub(d int) Cost {
	if c.blocked {
		return c
	}

	return Cost{w: c.w - d}
}

// Less orders open costs by weight and places Blocked after every weight.
func (c Cost) Less(o Cost) bool {
	switch {
	case c.blocked:
		return false
	case o.blocked:
		return true
	default:
		return c.w < o.w
	}
}

// String renders the weight in decimal, or "-" when blocked.
func (c Cost) String() string {
	if c.blocked {
		return blockedToken
	}

	return strconv.Itoa(c.w)
}

// ParseCost parses a decimal weight or a blocked marker.
// Accepted blocked markers: "-", "-1" (legacy sentinel), "x", "inf", "∞".
func ParseCost(s string) (Cost, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case blockedToken, "-1", "x", "inf", "∞":
		return Blocked(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Cost{}, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	if n < 0 {
		return Cost{}, fmt.Errorf("%q: %w", s, ErrNegativeCost)
	}

	return Weight(n), nil
}

// fromInt maps the legacy integer convention (-1 = blocked) to a Cost.
func fromInt(n int64) (Cost, error) {
	if n == -1 {
		return Blocked(), nil
	}
	if n < 0 {
		return Cost{}, fmt.Errorf("%d: %w", n, ErrNegativeCost)
	}

	return Weight(int(n)), nil
}

// MarshalJSON encodes a weight as a number and Blocked as null.
func (c Cost) MarshalJSON() ([]byte, error) {
	if c.blocked {
		return []byte("null"), nil
	}

	return []byte(strconv.Itoa(c.w)), nil
}

// UnmarshalJSON accepts a number, null, or a string token understood by ParseCost.
func (c *Cost) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = Blocked()

		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := ParseCost(s)
		if err != nil {
			return err
		}
		*c = v

		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%s: %w", data, ErrSyntax)
	}
	v, err := fromInt(n)
	if err != nil {
		return err
	}
	*c = v

	return nil
}

// MarshalYAML encodes Blocked as "-" and a weight as an integer.
func (c Cost) MarshalYAML() (interface{}, error) {
	if c.blocked {
		return blockedToken, nil
	}

	return c.w, nil
}

// UnmarshalYAML accepts integers, null/~ and the ParseCost markers.
func (c *Cost) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", value.Line, ErrSyntax)
	}
	if value.Tag == "!!null" {
		*c = Blocked()

		return nil
	}
	v, err := ParseCost(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = v

	return nil
}

// UnmarshalTOML implements toml.Unmarshaler. TOML has no null, so blocked
// cells are written as -1 or as a string marker.
func (c *Cost) UnmarshalTOML(v interface{}) error {
	switch x := v.(type) {
	case int64:
		cv, err := fromInt(x)
		if err != nil {
			return err
		}
		*c = cv
	case string:
		cv, err := ParseCost(x)
		if err != nil {
			return err
		}
		*c = cv
	default:
		return fmt.Errorf("%v: %w", v, ErrSyntax)
	}

	return nil
}
