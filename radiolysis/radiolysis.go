// SPDX-License-Identifier: MIT
// Package: lvquad/radiolysis
//
// radiolysis.go — embedded equilibrium-constant table.

package radiolysis

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrUnknownConstant indicates a lookup for an id that is not in the table.
var ErrUnknownConstant = errors.New("radiolysis: unknown constant")

//go:embed constants.yaml
var rawTable []byte

// Equilibrium is one acid–base dissociation equilibrium.
type Equilibrium struct {
	ID       string  `yaml:"id"`
	Reaction string  `yaml:"reaction"`
	PK       float64 `yaml:"pk"`
}

// K returns the equilibrium constant 10^(−pK).
func (e Equilibrium) K() float64 {
	return math.Pow(10, -e.PK)
}

// table is the decoded document.
type table struct {
	TemperatureC float64       `yaml:"temperature_c"`
	Equilibria   []Equilibrium `yaml:"equilibria"`
}

var (
	loadOnce sync.Once
	loaded   table
	loadErr  error
)

func load() (table, error) {
	loadOnce.Do(func() {
		loaded, loadErr = decode(rawTable)
	})
	return loaded, loadErr
}

func decode(data []byte) (table, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return table{}, fmt.Errorf("radiolysis: decode table: %w", err)
	}
	seen := make(map[string]bool, len(t.Equilibria))
	for _, e := range t.Equilibria {
		key := strings.ToUpper(e.ID)
		if key == "" || seen[key] {
			return table{}, fmt.Errorf("radiolysis: decode table: empty or duplicate id %q", e.ID)
		}
		seen[key] = true
	}
	return t, nil
}

// Table returns a copy of every equilibrium in table order.
func Table() ([]Equilibrium, error) {
	t, err := load()
	if err != nil {
		return nil, err
	}
	out := make([]Equilibrium, len(t.Equilibria))
	copy(out, t.Equilibria)
	return out, nil
}

// Temperature returns the reference temperature of the table in °C.
func Temperature() (float64, error) {
	t, err := load()
	return t.TemperatureC, err
}

// Lookup returns the equilibrium with the given id (case-insensitive).
func Lookup(id string) (Equilibrium, error) {
	t, err := load()
	if err != nil {
		return Equilibrium{}, err
	}
	for _, e := range t.Equilibria {
		if strings.EqualFold(e.ID, strings.TrimSpace(id)) {
			return e, nil
		}
	}
	return Equilibrium{}, fmt.Errorf("Lookup: %q: %w", id, ErrUnknownConstant)
}
