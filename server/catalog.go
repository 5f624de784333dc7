//go:build !js
// +build !js

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/simukka/brewfx/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Drink is one entry of the menu catalog.
type Drink struct {
	ID        string   `mapstructure:"id" json:"id"`
	Name      string   `mapstructure:"name" json:"name"`
	ShortDesc string   `mapstructure:"shortDesc" json:"shortDesc"`
	FullDesc  string   `mapstructure:"fullDesc" json:"fullDesc"`
	Extras    []string `mapstructure:"extras" json:"extras"`
	Icon      string   `mapstructure:"icon" json:"icon"`
}

// Catalog is the editable drink list. It is maintained separately from
// the palette tables, so it may name drinks the tables do not know.
type Catalog struct {
	Drinks []Drink
}

// LoadCatalog reads a JSON catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes catalog JSON.
func ParseCatalog(data []byte) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{}
	if err := v.UnmarshalKey("drinks", &c.Drinks); err != nil {
		return nil, fmt.Errorf("decode drinks: %w", err)
	}
	for i, d := range c.Drinks {
		if d.ID == "" {
			return nil, fmt.Errorf("drink %d has no id", i)
		}
	}
	return c, nil
}

// MenuItem is a catalog drink annotated with whether it has its own
// palette tables.
type MenuItem struct {
	Drink
	Themed bool `json:"themed"`
}

// Menu annotates every drink against model.
func (c *Catalog) Menu(model *palette.Model) []MenuItem {
	items := make([]MenuItem, 0, len(c.Drinks))
	for _, d := range c.Drinks {
		items = append(items, MenuItem{Drink: d, Themed: model.Known(d.ID)})
	}
	return items
}

// Unthemed returns the catalog ids that fall back to the default tables.
func (c *Catalog) Unthemed(model *palette.Model) []string {
	var ids []string
	for _, d := range c.Drinks {
		if !model.Known(d.ID) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the drink catalog",
	}

	check := &cobra.Command{
		Use:   "check",
		Short: "Report catalog drinks without palette tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.v.GetString(keyMenu)
			c, err := LoadCatalog(path)
			if err != nil {
				return err
			}

			model := palette.NewModel()
			unthemed := c.Unthemed(model)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d drinks, %d themed\n", len(c.Drinks), len(c.Drinks)-len(unthemed))
			for _, id := range unthemed {
				fmt.Fprintf(out, "  %s: no palette, uses %s\n", id, palette.DefaultID)
			}
			a.logger.Debug().Str("menu", path).Strs("unthemed", unthemed).Msg("catalog checked")
			return nil
		},
	}

	cmd.AddCommand(check)
	return cmd
}
