package input

import "math"

// Instant identifies one sampling tick. Instants must increase monotonically
// and be shared by every source read within one Sampler.State call.
type Instant uint64

// SourceKind tags the variant held by a Source.
type SourceKind uint8

const (
	SourceKey SourceKind = iota
	SourceButton
	SourceAxis
	SourceCombined
)

func (k SourceKind) String() string {
	switch k {
	case SourceKey:
		return "key"
	case SourceButton:
		return "button"
	case SourceAxis:
		return "axis"
	case SourceCombined:
		return "combined"
	}
	return "unknown"
}

// Sample is the memoized reading of a source.
type Sample struct {
	Value    float64
	Previous float64
	Instant  Instant
	valid    bool
}

// Source is one raw input channel, or a combination of several.
// Sources carry their own cache and must not be shared between samplers
// that run on different instant sequences.
type Source struct {
	kind   SourceKind
	key    Key
	button Button
	axis   Axis

	positive []*Source
	negative []*Source

	cache Sample
}

func KeyInput(k Key) *Source {
	return &Source{kind: SourceKey, key: k}
}

func ButtonInput(b Button) *Source {
	return &Source{kind: SourceButton, button: b}
}

func AxisInput(a Axis) *Source {
	return &Source{kind: SourceAxis, axis: a}
}

// Combine sums the positive sources, subtracts the negative ones and clamps
// the result to [-1, 1].
func Combine(positive, negative []*Source) *Source {
	return &Source{
		kind:     SourceCombined,
		positive: positive,
		negative: negative,
	}
}

func (s *Source) Kind() SourceKind { return s.kind }

// clone copies s and its children without their caches.
func (s *Source) clone(seen map[*Source]*Source) *Source {
	if s == nil {
		return nil
	}
	if cp, ok := seen[s]; ok {
		return cp
	}
	cp := &Source{kind: s.kind, key: s.key, button: s.button, axis: s.axis}
	seen[s] = cp
	cp.positive = cloneSources(s.positive, seen)
	cp.negative = cloneSources(s.negative, seen)
	return cp
}

func cloneSources(srcs []*Source, seen map[*Source]*Source) []*Source {
	if srcs == nil {
		return nil
	}
	out := make([]*Source, len(srcs))
	for i, src := range srcs {
		out[i] = src.clone(seen)
	}
	return out
}

// Cached returns the last sample without touching the device.
func (s *Source) Cached() Sample { return s.cache }

// Status returns the value at instant at and the value from the previous
// distinct instant. Repeated calls with the same instant replay the cache
// without reading the device, even if the device changed in between.
func (s *Source) Status(d Device, at Instant) (value, previous float64) {
	s.resample(d, at)
	return s.cache.Value, s.cache.Previous
}

// Value is Status without the previous value.
func (s *Source) Value(d Device, at Instant) float64 {
	v, _ := s.Status(d, at)
	return v
}

func (s *Source) resample(d Device, at Instant) {
	if s.cache.valid && s.cache.Instant == at {
		return
	}
	s.cache.Previous = s.cache.Value
	s.cache.Value = s.read(d, at)
	s.cache.Instant = at
	s.cache.valid = true
}

func (s *Source) read(d Device, at Instant) float64 {
	switch s.kind {
	case SourceKey:
		if d.IsKeyPressed(s.key) {
			return 1
		}
		return 0
	case SourceButton:
		gp := d.ActiveGamepad()
		if gp == nil {
			return 0
		}
		// Some platforms report trigger buttons with a stale analog value
		// while still setting the digital flag, so take the stronger one.
		var pressed float64
		if gp.IsButtonPressed(s.button) {
			pressed = 1
		}
		return math.Max(gp.ButtonValue(s.button), pressed)
	case SourceAxis:
		gp := d.ActiveGamepad()
		if gp == nil {
			return 0
		}
		return gp.AxisValue(s.axis)
	case SourceCombined:
		var v float64
		for _, src := range s.positive {
			v += src.Value(d, at)
		}
		for _, src := range s.negative {
			v -= src.Value(d, at)
		}
		return clamp(v, -1, 1)
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
