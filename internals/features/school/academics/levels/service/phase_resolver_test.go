package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
)

func intPtr(v int) *int { return &v }

func TestResolvePhase(t *testing.T) {
	phaseMap := levelModel.PhaseMap{"1": "A", "2": "A", "3": "B"}

	t.Run("tingkat terdaftar", func(t *testing.T) {
		got := ResolvePhase(intPtr(3), phaseMap)
		require.NotNil(t, got)
		assert.Equal(t, "B", *got)
	})

	t.Run("tingkat tidak terdaftar", func(t *testing.T) {
		assert.Nil(t, ResolvePhase(intPtr(9), phaseMap))
	})

	t.Run("tingkat kosong", func(t *testing.T) {
		assert.Nil(t, ResolvePhase(nil, phaseMap))
	})

	t.Run("map kosong", func(t *testing.T) {
		assert.Nil(t, ResolvePhase(intPtr(1), nil))
		assert.Nil(t, ResolvePhase(intPtr(1), levelModel.PhaseMap{}))
	})

	t.Run("fase kosong diperlakukan tidak terdaftar", func(t *testing.T) {
		assert.Nil(t, ResolvePhase(intPtr(4), levelModel.PhaseMap{"4": ""}))
	})
}

func TestAvailablePhases(t *testing.T) {
	t.Run("dedup dan sort", func(t *testing.T) {
		phaseMap := levelModel.PhaseMap{"1": "A", "2": "A", "3": "B", "4": "B", "5": "C", "6": "C"}
		assert.Equal(t, []string{"A", "B", "C"}, AvailablePhases(phaseMap))
	})

	t.Run("map kosong", func(t *testing.T) {
		assert.Empty(t, AvailablePhases(nil))
	})

	t.Run("fase kosong dilewati", func(t *testing.T) {
		phaseMap := levelModel.PhaseMap{"1": "", "2": "D"}
		assert.Equal(t, []string{"D"}, AvailablePhases(phaseMap))
	})
}
