package core

// Size describes the dimensions of a viewport or grid in pixels or cells.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is not positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }
