// SPDX-License-Identifier: GPL-3.0-or-later

package agent

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
)

// WriteSchemas writes the JSON schema of every selected module's job
// configuration, keyed by module name.
func (a *Agent) WriteSchemas(w io.Writer) error {
	enabled, err := a.loadEnabledModules()
	if err != nil {
		return fmt.Errorf("invalid module selector '%s': %v", a.RunModule, err)
	}

	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		DoNotReference:            true,
	}

	schemas := make(map[string]*jsonschema.Schema)
	for _, name := range enabled.Names() {
		creator, _ := enabled.Lookup(name)
		if creator.Config == nil {
			a.Debugf("module '%s' has no configuration prototype", name)
			continue
		}
		schema := reflector.Reflect(creator.Config())
		schema.Title = name
		schemas[name] = schema
	}

	bs, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(bs, '\n'))
	return err
}
