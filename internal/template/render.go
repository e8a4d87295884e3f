package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// jsonEscape escapes a string for safe embedding in JSON values.
	// It handles backslashes, quotes, and control characters by leveraging
	// encoding/json.Marshal, then stripping the surrounding quotes.
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	},
}

// mustRender parses and executes a template with strict mode
// (missingkey=error). Every template here is a compile-time constant, so a
// parse or execute failure is a programming error and panics.
func mustRender(name, text string, data any) string {
	tmpl := template.Must(template.New(name).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(text))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
	return buf.String()
}
