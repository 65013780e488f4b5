package guard_test

import (
	"errors"
	"sync"
	"testing"

	"orders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("CreateOrderCommand must be created via NewCreateOrderCommand")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type query struct {
		statusName string
		guard      guard.ConstructorGuard
	}
	errQueryNotConstructed := errors.New("query must be created via newQuery")

	newQuery := func(name string) query {
		return query{statusName: name, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructor_built_value_is_valid", func(t *testing.T) {
		q := newQuery("Completed")

		require.NoError(t, q.guard.Validate(errQueryNotConstructed))
		assert.Equal(t, "Completed", q.statusName)
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		q := query{statusName: "Completed"}

		assert.ErrorIs(t, q.guard.Validate(errQueryNotConstructed), errQueryNotConstructed)
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(validationError))
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
