// Package extract turns parsed source text into a flat list of code
// entities (classes, functions, methods) with exact line spans.
package extract

// Kind classifies an extracted entity.
type Kind string

const (
	KindClass    Kind = "class"
	KindFunction Kind = "function"
	KindMethod   Kind = "method"
)

// Entity represents one declared class, function, or method.
type Entity struct {
	// Name is the bare declared name
	Name string `json:"name"`
	// Kind is class, function, or method
	Kind Kind `json:"kind"`
	// StartLine is 1-indexed and includes leading decorator lines
	StartLine int `json:"startLine"`
	// EndLine is 1-indexed, inclusive, the last line of the body
	EndLine int `json:"endLine"`
	// ClassName is the owning class name for methods, empty otherwise
	ClassName string `json:"className,omitempty"`
	// Depth is the nesting level, 0 for top-level declarations
	Depth int `json:"depth"`

	// Parent is the enclosing class entity, nil for top-level
	// declarations and for methods qualified only by receiver type.
	Parent *Entity `json:"-"`
}

// QualifiedName returns Class.name for methods and the bare name otherwise.
func (e *Entity) QualifiedName() string {
	if e.ClassName != "" {
		return e.ClassName + "." + e.Name
	}
	return e.Name
}

// Contains reports whether line falls inside the entity's span.
func (e *Entity) Contains(line int) bool {
	return line >= e.StartLine && line <= e.EndLine
}

// Intersects reports whether the entity's span overlaps [start, end].
func (e *Entity) Intersects(start, end int) bool {
	return e.StartLine <= end && e.EndLine >= start
}
