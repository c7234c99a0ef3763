// Package factory provides a small generic registry used to build pluggable
// modules, such as metrics recorders, from configuration. A module is
// selected by a type string and receives a map of raw settings that the
// factory decodes into its own struct.
//
// Example usage:
//
//	reg := factory.NewRegistry[metrics.Recorder]()
//	reg.Register("influx", func(conf map[string]any) (metrics.Recorder, error) {
//	    var c struct{ URL string `json:"url"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return newInfluxRecorder(c.URL), nil
//	})
//	rec, err := reg.Create(factory.ModuleConfig{Type: "influx", Conf: map[string]any{"url": "http://localhost:8086"}})
package factory
