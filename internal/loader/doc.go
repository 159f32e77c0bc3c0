// Package loader reads configuration sources into a tree.
//
// A [Loader] turns one file into tree data under a namespace: it consults an
// optional [Cache] capability, parses the file with a [Parser] on a miss,
// applies the environment merge (the "all" section overlaid with the section
// named after the environment) and finally adds the result to the tree.
//
//	t := tree.New()
//	l := loader.New(t, "dev", loader.WithLogger(log))
//	err := l.Load(ctx, "config/db.yml", "app.db", parser.NewYAML(), loader.WithEnvironment("dev"))
//
// [Loader.LoadFromDirectory] loads every file of a directory whose extension
// has a registered parser, deriving each namespace from the file stem.
package loader
