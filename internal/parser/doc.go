// Package parser provides the file format parsers used by the loader.
//
// [YAML] reads and writes YAML documents with gopkg.in/yaml.v3; [JSON] reads
// and writes JSON documents and plays the role of the "native" snapshot-friendly
// format. Both return the generic value model of the configuration tree:
// map[string]any, []any and scalars, with integral numbers decoded as int.
package parser
