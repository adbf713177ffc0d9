package input

import (
	"errors"
	"fmt"
	"strings"
)

// Bindings maps each action to the sources that drive it. An action with no
// sources contributes 0.
type Bindings map[Action][]*Source

// Clone deep-copies the table. Every source in the copy starts with an empty
// cache; a source listed under several actions stays shared within the copy.
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	seen := make(map[*Source]*Source)
	for a, srcs := range b {
		cp := make([]*Source, len(srcs))
		for i, src := range srcs {
			cp[i] = src.clone(seen)
		}
		out[a] = cp
	}
	return out
}

// Channels builds one combined source per channel.
func (b Bindings) Channels() [ChannelCount]*Source {
	var out [ChannelCount]*Source
	for c, acts := range channelActions {
		var neg []*Source
		if acts[1] >= 0 {
			neg = b[acts[1]]
		}
		out[c] = Combine(b[acts[0]], neg)
	}
	return out
}

var ErrBadSource = errors.New("malformed source")

// String renders leaf sources as "kind:Name", the form ParseSource reads.
func (s *Source) String() string {
	switch s.kind {
	case SourceKey:
		return "key:" + s.key.String()
	case SourceButton:
		return "button:" + s.button.String()
	case SourceAxis:
		return "axis:" + s.axis.String()
	}
	return fmt.Sprintf("combined(%d+, %d-)", len(s.positive), len(s.negative))
}

// ParseSource reads a leaf source such as "key:KeyP", "button:RTrigger" or
// "axis:LHorizontal".
func ParseSource(spec string) (*Source, error) {
	kind, name, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadSource, spec)
	}
	switch kind {
	case "key":
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		return KeyInput(k), nil
	case "button":
		b, err := ParseButton(name)
		if err != nil {
			return nil, err
		}
		return ButtonInput(b), nil
	case "axis":
		a, err := ParseAxis(name)
		if err != nil {
			return nil, err
		}
		return AxisInput(a), nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q in %q", ErrBadSource, kind, spec)
}

// ParseBindings builds fresh sources from a table keyed by action name.
func ParseBindings(table map[string][]string) (Bindings, error) {
	b := make(Bindings, len(table))
	for name, specs := range table {
		a, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		srcs := make([]*Source, 0, len(specs))
		for _, spec := range specs {
			src, err := ParseSource(spec)
			if err != nil {
				return nil, fmt.Errorf("action %s: %w", name, err)
			}
			srcs = append(srcs, src)
		}
		b[a] = srcs
	}
	return b, nil
}

// Table is the inverse of ParseBindings for leaf sources.
func (b Bindings) Table() map[string][]string {
	out := make(map[string][]string, len(b))
	for a, srcs := range b {
		specs := make([]string, 0, len(srcs))
		for _, src := range srcs {
			specs = append(specs, src.String())
		}
		out[a.String()] = specs
	}
	return out
}
