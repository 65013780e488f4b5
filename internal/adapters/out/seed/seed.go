// Package seed reads the reference data of the order store (statuses,
// services and their products) from YAML.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/status"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

// Data is validated reference data ready to be written to a store.
type Data struct {
	Statuses []*status.Status
	Services []*catalog.Service
	Products []*catalog.Product
}

type fileFormat struct {
	Statuses []statusRecord  `yaml:"statuses"`
	Services []serviceRecord `yaml:"services"`
}

type statusRecord struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type serviceRecord struct {
	ID       string          `yaml:"id"`
	Name     string          `yaml:"name"`
	Products []productRecord `yaml:"products"`
}

type productRecord struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	UnitCost  string `yaml:"unitCost"`
	UnitPrice string `yaml:"unitPrice"`
}

// Default returns the reference data shipped with the binary.
func Default() (Data, error) {
	return Parse(defaultSeed)
}

// Load reads path, or returns Default when path is empty.
func Load(path string) (Data, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a seed document. Every invalid record is
// reported; status names must be unique.
func Parse(raw []byte) (Data, error) {
	var doc fileFormat
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Data{}, fmt.Errorf("decode seed: %w", err)
	}

	var (
		data  Data
		fails []error
		names = make(map[string]struct{}, len(doc.Statuses))
	)

	for i, rec := range doc.Statuses {
		s, err := rec.toDomain()
		if err != nil {
			fails = append(fails, fmt.Errorf("statuses[%d]: %w", i, err))
			continue
		}
		if _, dup := names[s.Name()]; dup {
			fails = append(fails, fmt.Errorf("statuses[%d]: duplicate status name %q", i, s.Name()))
			continue
		}
		names[s.Name()] = struct{}{}
		data.Statuses = append(data.Statuses, s)
	}

	for i, rec := range doc.Services {
		svc, err := rec.toDomain()
		if err != nil {
			fails = append(fails, fmt.Errorf("services[%d]: %w", i, err))
			continue
		}
		data.Services = append(data.Services, svc)

		for j, p := range rec.Products {
			product, pErr := p.toDomain(svc.ID())
			if pErr != nil {
				fails = append(fails, fmt.Errorf("services[%d].products[%d]: %w", i, j, pErr))
				continue
			}
			data.Products = append(data.Products, product)
		}
	}

	if err := errors.Join(fails...); err != nil {
		return Data{}, err
	}
	return data, nil
}

func (r statusRecord) toDomain() (*status.Status, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return nil, err
	}
	return status.NewStatus(id, r.Name)
}

func (r serviceRecord) toDomain() (*catalog.Service, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return nil, err
	}
	return catalog.NewService(id, r.Name)
}

func (r productRecord) toDomain(serviceID kernel.UUID) (*catalog.Product, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return nil, err
	}
	cost, err := decimal.NewFromString(r.UnitCost)
	if err != nil {
		return nil, fmt.Errorf("unitCost: %w", err)
	}
	price, err := decimal.NewFromString(r.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("unitPrice: %w", err)
	}
	return catalog.NewProduct(id, r.Name, cost, price, serviceID)
}
