// Package factory provides a small generic registry used to build pluggable
// modules from configuration. A module is named by a type string and carries
// a map of raw settings; builders decode those settings into typed structs
// and return the concrete implementation. Metric sinks are wired this way.
//
// Example usage:
//
//	reg := factory.NewRegistry[io.Writer]()
//	reg.Register("file", func(conf map[string]any) (io.Writer, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return os.Create(c.Path)
//	})
//	w, err := reg.Create(factory.ModuleConfig{Type: "file", Conf: map[string]any{"path": "out"}})
package factory
