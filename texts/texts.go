package texts

import (
	"bluebot/shared"
	"embed"
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_texts.go -package mocks bluebot/texts ITexts

//go:embed snippets
var fs embed.FS

const personasFile = "personas.jsonc"

type ITexts interface {
	Get(id string) string
	WithVals(id string, vals map[string]string) string
}

func NewTexts() ITexts {
	return &texts{}
}

type texts struct {
}

func (t *texts) Get(id string) string {
	fn := fmt.Sprintf("snippets/%s", id)
	bytes, err := fs.ReadFile(fn)
	if err != nil {
		return ""
	}
	return string(bytes)
}

func (t *texts) WithVals(id string, vals map[string]string) string {
	res := t.Get(id)
	isHtml := strings.HasSuffix(id, ".html")
	if isHtml {
		escaped := make(map[string]string, len(vals))
		for ph, val := range vals {
			escaped[ph] = html.EscapeString(val)
		}
		vals = escaped
	}
	return Fill(res, vals)
}

// Fill replaces every {{name}} placeholder in template with its value.
func Fill(template string, vals map[string]string) string {
	res := template
	for ph, val := range vals {
		res = strings.ReplaceAll(res, fmt.Sprintf("{{%s}}", ph), val)
	}
	return res
}

// DefaultPersonas parses the built-in persona table.
func DefaultPersonas() (map[string]*shared.Persona, error) {
	bytes, err := fs.ReadFile("snippets/" + personasFile)
	if err != nil {
		return nil, err
	}
	bytes, err = shared.StandardizeJSON(bytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", personasFile, err)
	}
	res := map[string]*shared.Persona{}
	if err = json.Unmarshal(bytes, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", personasFile, err)
	}
	for id, p := range res {
		p.ID = id
	}
	return res, nil
}
