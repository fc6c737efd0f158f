package bundler

// Metafile is the build metadata emitted by esbuild.
type Metafile struct {
	Inputs  map[string]InputInfo  `json:"inputs"`
	Outputs map[string]OutputInfo `json:"outputs"`
}

// InputInfo describes one input file of the build.
type InputInfo struct {
	Bytes   int          `json:"bytes"`
	Imports []ImportInfo `json:"imports"`
	Format  string       `json:"format,omitempty"`
}

// OutputInfo describes one emitted file and its import graph.
type OutputInfo struct {
	Bytes      int          `json:"bytes"`
	EntryPoint string       `json:"entryPoint,omitempty"`
	Imports    []ImportInfo `json:"imports"`
	Exports    []string     `json:"exports,omitempty"`
	CSSBundle  string       `json:"cssBundle,omitempty"`
}

// ImportInfo is a single edge in the import graph.
type ImportInfo struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	External bool   `json:"external,omitempty"`
}
