// Package catalog holds the fixed option lists offered by the registration
// steps: specialties and their services, languages, degrees, licensing
// councils and payment methods.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Specialty struct {
	Name     string   `yaml:"name" json:"name"`
	Services []string `yaml:"services" json:"services"`
}

type PaymentMethod struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

type Catalog struct {
	Specialties    []Specialty     `yaml:"specialties" json:"specialties"`
	Languages      []string        `yaml:"languages" json:"languages"`
	Degrees        []string        `yaml:"degrees" json:"degrees"`
	Councils       []string        `yaml:"councils" json:"councils"`
	PaymentMethods []PaymentMethod `yaml:"payment_methods" json:"payment_methods"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Specialties) == 0 {
		return nil, fmt.Errorf("failed to parse catalog: no specialties defined")
	}
	return &c, nil
}

func (c *Catalog) HasSpecialty(name string) bool {
	_, ok := c.specialty(name)
	return ok
}

// ServicesFor returns the services offered under a specialty, or nil when the
// specialty is unknown.
func (c *Catalog) ServicesFor(specialty string) []string {
	s, ok := c.specialty(specialty)
	if !ok {
		return nil
	}
	out := make([]string, len(s.Services))
	copy(out, s.Services)
	return out
}

func (c *Catalog) OffersService(specialty, service string) bool {
	s, ok := c.specialty(specialty)
	if !ok {
		return false
	}
	for _, svc := range s.Services {
		if svc == service {
			return true
		}
	}
	return false
}

func (c *Catalog) HasPaymentMethod(id string) bool {
	for _, m := range c.PaymentMethods {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (c *Catalog) PaymentMethodLabel(id string) string {
	for _, m := range c.PaymentMethods {
		if m.ID == id {
			return m.Label
		}
	}
	return id
}

func (c *Catalog) specialty(name string) (Specialty, bool) {
	for _, s := range c.Specialties {
		if s.Name == name {
			return s, true
		}
	}
	return Specialty{}, false
}
