package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"orders/internal/adapters/out/seed"
	"orders/internal/core/domain/model/status"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	data, err := seed.Default()
	require.NoError(t, err)

	names := make([]string, 0, len(data.Statuses))
	for _, s := range data.Statuses {
		names = append(names, s.Name())
	}
	assert.ElementsMatch(t, []string{status.Created, status.InProgress, status.Completed}, names)
	assert.NotEmpty(t, data.Services)
	assert.NotEmpty(t, data.Products)

	services := make(map[string]bool, len(data.Services))
	for _, svc := range data.Services {
		services[svc.ID().String()] = true
	}
	for _, p := range data.Products {
		assert.True(t, services[p.ServiceID().String()], "product %s has unknown service", p.Name())
	}
}

func TestParse(t *testing.T) {
	doc := []byte(`
statuses:
  - id: 11111111-1111-1111-1111-111111111111
    name: Created
services:
  - id: 22222222-2222-2222-2222-222222222222
    name: Email
    products:
      - id: 33333333-3333-3333-3333-333333333333
        name: Mailbox
        unitCost: "1.00"
        unitPrice: 2.50
`)

	data, err := seed.Parse(doc)
	require.NoError(t, err)
	require.Len(t, data.Products, 1)

	p := data.Products[0]
	assert.Equal(t, "Mailbox", p.Name())
	assert.True(t, p.UnitPrice().Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", p.ServiceID().String())
}

func TestParse_InvalidRecords(t *testing.T) {
	doc := []byte(`
statuses:
  - id: 11111111-1111-1111-1111-111111111111
    name: Created
  - id: 11111111-1111-1111-1111-111111111112
    name: Created
  - id: not-a-uuid
    name: Completed
services:
  - id: 22222222-2222-2222-2222-222222222222
    name: Email
    products:
      - id: 33333333-3333-3333-3333-333333333333
        name: Mailbox
        unitCost: "-1"
        unitPrice: "2"
`)

	_, err := seed.Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statuses[1]: duplicate status name")
	assert.Contains(t, err.Error(), "statuses[2]")
	assert.Contains(t, err.Error(), "services[0].products[0]")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("statuses:\n  - id: 11111111-1111-1111-1111-111111111111\n    name: Created\n"), 0o600))

	data, err := seed.Load(path)
	require.NoError(t, err)
	require.Len(t, data.Statuses, 1)

	_, err = seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read seed file")

	fallback, err := seed.Load("")
	require.NoError(t, err)
	assert.Len(t, fallback.Statuses, 3)
}
