package pricing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/randalmurphal/posekit/model"
)

// DefaultPath is the pricing file location relative to the executable's
// working directory.
const DefaultPath = "config/pricing.json"

// ignorePrefix marks top-level keys that are metadata, not model entries.
const ignorePrefix = "_"

const disclaimer = "Rates are USD per million tokens and were correct when this " +
	"file was generated. Provider prices drift; edit this file to match the " +
	"current price list. Keys starting with _ are ignored."

// Rates is the per-million-token pricing for one model.
type Rates struct {
	InputPerMillion  float64 `json:"input_per_million"`
	OutputPerMillion float64 `json:"output_per_million"`
}

// Defaults seeds the pricing file on first run.
var Defaults = map[model.ID]Rates{
	model.GPT41:     {InputPerMillion: 2.00, OutputPerMillion: 8.00},
	model.GPT41Mini: {InputPerMillion: 0.40, OutputPerMillion: 1.60},
	model.GPT41Nano: {InputPerMillion: 0.10, OutputPerMillion: 0.40},
	model.GPT4o:     {InputPerMillion: 2.50, OutputPerMillion: 10.00},
	model.GPT4oMini: {InputPerMillion: 0.15, OutputPerMillion: 0.60},
	model.O3:        {InputPerMillion: 2.00, OutputPerMillion: 8.00},
	model.O4Mini:    {InputPerMillion: 1.10, OutputPerMillion: 4.40},
}

// Catalog reads model rates from a JSON file on disk.
type Catalog struct {
	path string
}

// NewCatalog returns a catalog backed by the file at path, or DefaultPath
// when path is empty.
func NewCatalog(path string) *Catalog {
	if path == "" {
		path = DefaultPath
	}
	return &Catalog{path: path}
}

// Path returns the location of the backing file.
func (c *Catalog) Path() string {
	return c.path
}

// Rates returns the pricing for id, or nil when no rates are available:
// unknown model, unreadable file, unparseable file. The file is seeded
// with Defaults if absent and re-read on every call.
func (c *Catalog) Rates(id model.ID) *Rates {
	if err := c.ensure(); err != nil {
		return nil
	}
	table, err := c.load()
	if err != nil {
		return nil
	}
	r, ok := table[string(id)]
	if !ok {
		return nil
	}
	return &r
}

// ensure creates the seed file if nothing exists at the catalog path.
func (c *Catalog) ensure() error {
	if _, err := os.Stat(c.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	seed := make(map[string]any, len(Defaults)+1)
	seed[ignorePrefix+"disclaimer"] = disclaimer
	for id, r := range Defaults {
		seed[string(id)] = r
	}

	data, err := json.MarshalIndent(seed, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create pricing dir: %w", err)
		}
	}
	return os.WriteFile(c.path, append(data, '\n'), 0o644)
}

// load parses the pricing file. Every object-valued top-level key not
// starting with the ignore prefix is a model entry; an entry missing a
// rate keeps that rate at 0. Non-object values are skipped.
func (c *Catalog) load() (map[string]Rates, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.path, err)
	}

	table := make(map[string]Rates, len(raw))
	for key, val := range raw {
		if strings.HasPrefix(key, ignorePrefix) {
			continue
		}
		var r Rates
		if err := json.Unmarshal(val, &r); err != nil {
			continue
		}
		table[key] = r
	}
	return table, nil
}
