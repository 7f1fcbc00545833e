package metrics

import "github.com/Asiantown/GeoEvents/core/factory"

var sinkRegistry = factory.NewRegistry[Sink]()

// RegisterSink adds a sink builder identified by name.
func RegisterSink(name string, b factory.Builder[Sink]) error {
	return sinkRegistry.Register(name, b)
}

// NewSink creates a Sink from the provided configurations: a NopSink when
// none are given, the single sink when one is, a MultiSink otherwise.
func NewSink(cfgs []factory.ModuleConfig) (Sink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]Sink, len(cfgs))
	for i, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
