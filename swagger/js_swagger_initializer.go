package swagger

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

const jsSwaggerInitializerPath = "/swagger-initializer.js"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type initializerField struct {
	key   string
	value any
}

// Initializer renders swagger-initializer.js for the config.
// Presets are emitted as script references, every other value as a JSON literal.
func (c Config) Initializer() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	b := new(bytes.Buffer)
	b.WriteString("window.onload = function() {\n")
	b.WriteString("  window." + HandleName + " = SwaggerUIBundle({\n")
	if err := writeField(b, initializerField{"url", c.URL}); err != nil {
		return nil, err
	}
	if err := writeField(b, initializerField{"dom_id", c.DomID}); err != nil {
		return nil, err
	}
	b.WriteString("    presets: [")
	for i, p := range c.Presets {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n      " + string(p))
	}
	if len(c.Presets) > 0 {
		b.WriteString("\n    ")
	}
	b.WriteString("],\n")
	fields := []initializerField{
		{"layout", c.Layout},
		{"docExpansion", c.DocExpansion},
	}
	// the bundle keeps document order when no sorter is given
	if c.OperationsSorter != OperationsSorterNone {
		fields = append(fields, initializerField{"operationsSorter", c.OperationsSorter})
	}
	fields = append(fields, initializerField{"deepLinking", c.DeepLinking})
	for _, f := range fields {
		if err := writeField(b, f); err != nil {
			return nil, err
		}
	}
	b.WriteString("  });\n};\n")
	return b.Bytes(), nil
}

func writeField(b *bytes.Buffer, f initializerField) error {
	buf, err := json.Marshal(f.value)
	if err != nil {
		return err
	}
	b.WriteString("    " + f.key + ": ")
	b.Write(buf)
	b.WriteString(",\n")
	return nil
}
