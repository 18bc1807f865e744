package script

import (
	"fmt"
	"strings"
)

// Label is the ordinal a palette assigns to a value name.
type Label uint8

// Palette maps value names to ordinals in declaration order.
type Palette struct {
	names []string
	index map[string]Label
}

// DefaultPalette is used when a workload names no values.
var DefaultPalette = []string{"red", "green", "blue"}

func NewPalette(names []string) (*Palette, error) {
	if len(names) == 0 {
		names = DefaultPalette
	}
	if len(names) > 256 {
		return nil, ErrBadPalette
	}
	p := &Palette{
		names: make([]string, len(names)),
		index: make(map[string]Label, len(names)),
	}
	for i, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			return nil, ErrBadPalette
		}
		if _, dup := p.index[n]; dup {
			return nil, fmt.Errorf("%w: duplicate %q", ErrBadPalette, n)
		}
		p.names[i] = n
		p.index[n] = Label(i)
	}
	return p, nil
}

// Lookup resolves a value name.
func (p *Palette) Lookup(name string) (Label, error) {
	l, ok := p.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValue, name)
	}
	return l, nil
}

// Name returns the name of l.
func (p *Palette) Name(l Label) string {
	if int(l) < len(p.names) {
		return p.names[l]
	}
	return fmt.Sprintf("#%d", l)
}

// Names lists the palette in ordinal order.
func (p *Palette) Names() []string {
	return append([]string(nil), p.names...)
}
