package fixtures

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"

	"github.com/charmbracelet/log"
)

// TypeMap records the Go response type behind each fixture path and
// generates a type-mapping source file for the downstream integration.
type TypeMap struct {
	order []string
	types map[string]string
}

// NewTypeMap creates an empty TypeMap.
func NewTypeMap() *TypeMap {
	return &TypeMap{types: make(map[string]string)}
}

// Record detects and stores the response type for a fixture path.
//
// Pointers are unwrapped; for slices the element type is recorded, and
// empty untyped slices record nothing (there is no element to inspect,
// matching the behavior of skipping empty list responses).
func (m *TypeMap) Record(category Category, name string, response any) {
	typeName := detectTypeName(response)
	if typeName == "" {
		return
	}

	key := string(category) + "/" + name + ".json"
	if _, seen := m.types[key]; !seen {
		m.order = append(m.order, key)
	}
	m.types[key] = typeName
}

// TypeName returns the recorded type name for a fixture path, or "".
func (m *TypeMap) TypeName(path string) string {
	return m.types[path]
}

// Len returns the number of recorded mappings.
func (m *TypeMap) Len() int { return len(m.order) }

func detectTypeName(response any) string {
	if response == nil {
		return ""
	}

	t := reflect.TypeOf(response)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() == reflect.Slice {
		elem := t.Elem()
		for elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.Interface {
			// []any carries no element type; inspect the first element
			v := reflect.ValueOf(response)
			for v.Kind() == reflect.Pointer {
				v = v.Elem()
			}
			if v.Len() == 0 {
				return ""
			}
			return detectTypeName(v.Index(0).Interface())
		}
		return elem.Name()
	}

	return t.Name()
}

// Generate writes the type-mapping Go source file to outputPath and
// formats it with gofmt. Formatting is best effort; a missing or failing
// gofmt logs a warning and keeps the unformatted file.
func (m *TypeMap) Generate(ctx context.Context, outputPath string, logger *log.Logger) error {
	var buf bytes.Buffer

	pkg := filepath.Base(filepath.Dir(outputPath))
	buf.WriteString("// Code generated by nicofix. DO NOT EDIT.\n\n")
	buf.WriteString("// Package " + pkg + " maps fixture paths to the response type names\n")
	buf.WriteString("// recorded during fixture generation.\n")
	buf.WriteString("package " + pkg + "\n\n")
	buf.WriteString("// Mappings lists fixture path -> response type name in collection order.\n")
	buf.WriteString("var Mappings = map[string]string{\n")
	for _, key := range m.order {
		buf.WriteString(fmt.Sprintf("\t%q: %q,\n", key, m.types[key]))
	}
	buf.WriteString("}\n")

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create typemap directory: %w", err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write typemap file: %w", err)
	}

	logger.Info("generated path->type mapping", "path", outputPath, "entries", len(m.order))

	if out, err := exec.CommandContext(ctx, "gofmt", "-w", outputPath).CombinedOutput(); err != nil {
		logger.Warn("gofmt failed, keeping unformatted typemap", "error", err, "output", string(out))
	}

	return nil
}
