package store

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var schemaFiles = map[Key]string{
	KeyUser:       "schemas/user.json",
	KeyOnboarding: "schemas/onboarding.json",
	KeyHistory:    "schemas/history.json",
	KeyFavorites:  "schemas/favorites.json",
}

type schemaSet map[Key]*gojsonschema.Schema

func loadSchemas() (schemaSet, error) {
	set := make(schemaSet, len(schemaFiles))
	for key, file := range schemaFiles {
		raw, err := schemaFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", file, err)
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", file, err)
		}
		set[key] = s
	}
	return set, nil
}

// check validates raw against the schema registered for key. Keys without a
// schema pass.
func (s schemaSet) check(key Key, raw []byte) error {
	schema, ok := s[key]
	if !ok {
		return nil
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
