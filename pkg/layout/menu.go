// Package layout reads menu definitions from YAML and turns them into GUI
// builders.
package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Menu is one menu file.
type Menu struct {
	Title   string   `yaml:"title" validate:"required"`
	Rows    int      `yaml:"rows" validate:"min=0,max=6"`
	Type    string   `yaml:"type" validate:"omitempty,invtype"`
	Border  string   `yaml:"border" validate:"omitempty,material"`
	Fill    string   `yaml:"fill" validate:"omitempty,material"`
	Fillers []Filler `yaml:"fillers" validate:"dive"`
	Items   []Item   `yaml:"items" validate:"dive"`
}

// Filler places nameless background items.
type Filler struct {
	Material string   `yaml:"material" validate:"required,material"`
	Slots    []int    `yaml:"slots" validate:"dive,min=0,max=53"`
	Ranges   []string `yaml:"ranges" validate:"dive,slotrange"`
}

// Item describes one configured slot.
type Item struct {
	Slot         *int           `yaml:"slot" validate:"required,min=0,max=53"`
	Material     string         `yaml:"material" validate:"required,material"`
	Name         *string        `yaml:"name"`
	Lore         []string       `yaml:"lore"`
	Amount       int            `yaml:"amount" validate:"min=0,max=99"`
	Enchantments map[string]int `yaml:"enchantments" validate:"dive,keys,required,endkeys,min=1,max=255"`
	Flags        []string       `yaml:"flags" validate:"dive,itemflag"`
	Color        string         `yaml:"color" validate:"omitempty,hexcolor"`
	Trim         *Trim          `yaml:"trim"`
	Effects      []Effect       `yaml:"effects" validate:"dive"`
	Instrument   string         `yaml:"instrument" validate:"omitempty,instrument"`
	Axolotl      string         `yaml:"axolotl" validate:"omitempty,oneof=lucy wild gold cyan blue"`
	Book         *Book          `yaml:"book"`
	Owner        *Owner         `yaml:"owner"`
}

type Trim struct {
	Material string `yaml:"material" validate:"required,trimmaterial"`
	Pattern  string `yaml:"pattern" validate:"required,trimpattern"`
}

type Effect struct {
	Type      string `yaml:"type" validate:"required,effect"`
	Duration  int32  `yaml:"duration" validate:"min=-1"`
	Amplifier int32  `yaml:"amplifier" validate:"min=0,max=255"`
	Ambient   bool   `yaml:"ambient"`
	Particles *bool  `yaml:"particles"`
	Icon      *bool  `yaml:"icon"`
}

type Book struct {
	Title      string   `yaml:"title"`
	Author     string   `yaml:"author"`
	Pages      []string `yaml:"pages"`
	Generation string   `yaml:"generation" validate:"omitempty,oneof=original copy_of_original copy_of_copy tattered"`
}

type Owner struct {
	Name     string `yaml:"name" validate:"max=16"`
	ID       string `yaml:"id" validate:"omitempty,uuid"`
	Textures string `yaml:"textures"`
}

// Parse decodes and validates a menu definition.
func Parse(data []byte) (*Menu, error) {
	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
