package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates/*.json
var builtinFS embed.FS

// Builtins returns the goal templates shipped with the binary, in filename
// order.
func Builtins() ([]*GoalSchema, error) {
	files, err := fs.Glob(builtinFS, "templates/*.json")
	if err != nil {
		return nil, err
	}
	schemas := make([]*GoalSchema, 0, len(files))
	for _, file := range files {
		data, err := builtinFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading builtin template %s: %w", file, err)
		}
		schema, err := ParseSchema(data)
		if err != nil {
			return nil, fmt.Errorf("builtin template %s: %w", file, err)
		}
		schemas = append(schemas, schema)
	}
	return schemas, nil
}
