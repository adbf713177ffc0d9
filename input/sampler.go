package input

// Values holds one raw number per channel.
type Values [ChannelCount]float64

func (v Values) Get(c Channel) float64 { return v[c] }

// Transform turns the raw channel values of the current and previous
// instants into a typed record. It must be pure.
type Transform[T any] func(current, previous Values) T

// Sampler reads every channel once per instant and applies a transform.
type Sampler[T any] struct {
	sources   [ChannelCount]*Source
	transform Transform[T]
}

// NewSampler builds a sampler. Nil sources read as an empty combination.
func NewSampler[T any](sources [ChannelCount]*Source, transform Transform[T]) *Sampler[T] {
	for c, src := range sources {
		if src == nil {
			sources[c] = Combine(nil, nil)
		}
	}
	return &Sampler[T]{sources: sources, transform: transform}
}

// Sample collects raw (value, previous) records for instant at.
func (s *Sampler[T]) Sample(d Device, at Instant) (current, previous Values) {
	for c, src := range s.sources {
		current[c], previous[c] = src.Status(d, at)
	}
	return current, previous
}

// State samples every channel at instant at and returns the transformed
// record. Calling it again with the same instant replays cached values.
func (s *Sampler[T]) State(d Device, at Instant) T {
	current, previous := s.Sample(d, at)
	return s.transform(current, previous)
}

func (s *Sampler[T]) Source(c Channel) *Source {
	return s.sources[c]
}
