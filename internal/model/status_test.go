package model_test

import (
	"testing"

	"event-lifecycle-service/internal/model"
	apperrors "event-lifecycle-service/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromCode(t *testing.T) {
	t.Run("maps all six codes to distinct statuses", func(t *testing.T) {
		expected := map[int]model.Status{
			1: model.StatusOpen,
			2: model.StatusActive,
			3: model.StatusTesting,
			4: model.StatusChecking,
			5: model.StatusClosed,
			6: model.StatusCanceled,
		}

		seen := make(map[model.Status]bool)
		for code, want := range expected {
			status, err := model.StatusFromCode(code)
			require.NoError(t, err)
			assert.Equal(t, want, status)
			assert.False(t, seen[status], "status %s mapped twice", status)
			seen[status] = true
		}
		assert.Len(t, seen, 6)
	})

	t.Run("rejects codes outside 1..6", func(t *testing.T) {
		for _, code := range []int{-1, 0, 7, 100} {
			_, err := model.StatusFromCode(code)
			assert.ErrorIs(t, err, apperrors.ErrInvalidStatus, "code %d", code)
		}
	})
}

func TestStatusCode(t *testing.T) {
	t.Run("round trips through StatusFromCode", func(t *testing.T) {
		for code := 1; code <= 6; code++ {
			status, err := model.StatusFromCode(code)
			require.NoError(t, err)
			assert.Equal(t, code, status.Code())
		}
	})

	t.Run("unknown status has no code", func(t *testing.T) {
		assert.Equal(t, 0, model.Status("UNKNOWN").Code())
		assert.False(t, model.Status("UNKNOWN").IsValid())
	})
}
