package validation

import (
	"testing"

	"github.com/backoffice/core/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name string `json:"name" validate:"required,max=10"`
	Kind string `json:"kind" validate:"omitempty,oneof=A B"`
}

func TestStruct(t *testing.T) {
	t.Run("passes a valid struct", func(t *testing.T) {
		assert.NoError(t, Struct(sampleRequest{Name: "ok", Kind: "A"}))
	})

	t.Run("reports missing required field under its json name", func(t *testing.T) {
		err := Struct(sampleRequest{})
		require.Error(t, err)

		assert.True(t, shared.IsValidationError(err))
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("reports oneof violation with allowed values", func(t *testing.T) {
		err := Struct(sampleRequest{Name: "ok", Kind: "C"})
		require.Error(t, err)

		assert.True(t, shared.IsValidationError(err))
		assert.Contains(t, err.Error(), "must be one of")
	})

	t.Run("joins multiple failures", func(t *testing.T) {
		err := Struct(sampleRequest{Name: "definitely too long", Kind: "C"})
		require.Error(t, err)

		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "kind")
	})
}
