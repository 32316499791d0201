package layout

import (
	"fmt"
	"strings"
)

// Flags is the dock bitset carried by widgets and mask descriptors.
type Flags uint32

const (
	None   Flags = 2 << 1
	Free   Flags = 2 << 2
	Top    Flags = 2 << 3
	Bottom Flags = 2 << 4
	Right  Flags = 2 << 5
	Left   Flags = 2 << 6
	Center Flags = 2 << 7
	Full   Flags = 2 << 8
	Next   Flags = 2 << 9
	Fill   Flags = 2 << 10
	Resize Flags = 2 << 11
	Bind   Flags = 2 << 12
)

// Axis selects the main direction of a mask pass.
type Axis uint32

const (
	Vertical   Axis = 2 << 13
	Horizontal Axis = 2 << 14
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Axis(%d)", uint32(a))
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{None, "none"},
	{Free, "free"},
	{Top, "top"},
	{Bottom, "bottom"},
	{Right, "right"},
	{Left, "left"},
	{Center, "center"},
	{Full, "full"},
	{Next, "next"},
	{Fill, "fill"},
	{Resize, "resize"},
	{Bind, "bind"},
}

// Has reports whether every bit of want is set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// Any reports whether at least one bit of want is set.
func (f Flags) Any(want Flags) bool {
	return f&want != 0
}

// String renders the set as "left|fill".
func (f Flags) String() string {
	if f == 0 {
		return ""
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseFlags parses a "|" or "," separated list of flag names. The empty
// string parses to zero, which docks like left|top.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' '
	})
	for _, field := range fields {
		name := strings.ToLower(field)
		found := false
		for _, fn := range flagNames {
			if fn.name == name {
				f |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown dock flag %q", field)
		}
	}
	return f, nil
}
