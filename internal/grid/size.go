package grid

import (
	"fmt"
	"strings"
)

// SizeClass selects the edge length of the cells.
type SizeClass uint8

const (
	L SizeClass = iota
	M
	S
	XS
)

// SizeClasses lists every size class from largest to smallest.
var SizeClasses = []SizeClass{L, M, S, XS}

// Edge returns the cell edge in pixels.
func (s SizeClass) Edge() float32 {
	switch s {
	case L:
		return 96
	case M:
		return 72
	case S:
		return 48
	default:
		return 24
	}
}

func (s SizeClass) String() string {
	switch s {
	case L:
		return "L"
	case M:
		return "M"
	case S:
		return "S"
	case XS:
		return "XS"
	default:
		return fmt.Sprintf("size(%d)", uint8(s))
	}
}

// Next returns the next smaller size class, wrapping to L after XS.
func (s SizeClass) Next() SizeClass {
	return SizeClasses[(int(s)+1)%len(SizeClasses)]
}

// ParseSize resolves a size class by name.
func ParseSize(v string) (SizeClass, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "L":
		return L, nil
	case "M":
		return M, nil
	case "S":
		return S, nil
	case "XS":
		return XS, nil
	}
	return XS, fmt.Errorf("grid: unknown size class %q", v)
}
