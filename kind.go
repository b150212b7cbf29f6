package dia

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind    = errors.New("unknown diagram kind")
	ErrUnknownVariant = errors.New("unknown graph variant")
)

// ParseKind returns the diagram kind named by v. Unknown values
// result in a [ErrUnknownKind].
func ParseKind(v string) (Kind, error) {
	k, found := kindNames[v]
	if !found {
		return 0, fmt.Errorf("%q: %w", v, ErrUnknownKind)
	}
	return k, nil
}

// Kind selects the top level dispatch path.
type Kind int

const (
	KindGraph Kind = iota
	KindFigure
)

var kindNames = map[string]Kind{
	"Graph":  KindGraph,
	"Figure": KindFigure,
}

func (k Kind) String() string {
	switch k {
	case KindGraph:
		return "Graph"
	case KindFigure:
		return "Figure"
	}
	return "unknown"
}

// ParseVariant returns the graph variant named by v. Unknown values
// result in a [ErrUnknownVariant].
func ParseVariant(v string) (Variant, error) {
	g, found := variantNames[v]
	if !found {
		return 0, fmt.Errorf("%q: %w", v, ErrUnknownVariant)
	}
	return g, nil
}

// Variant selects which graph builder services a request.
type Variant int

const (
	VariantBar Variant = iota
	VariantLine
)

var variantNames = map[string]Variant{
	"Bar":  VariantBar,
	"Line": VariantLine,
}

func (v Variant) String() string {
	switch v {
	case VariantBar:
		return "Bar"
	case VariantLine:
		return "Line"
	}
	return "unknown"
}
