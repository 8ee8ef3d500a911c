// file: internals/features/school/academics/levels/dto/level_dto.go
package dto

import (
	"strings"
	"time"

	m "sekolahku_backend/internals/features/school/academics/levels/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateLevelRequest struct {
	Name string  `json:"level_name" validate:"required,min=1,max=120"`
	Type string  `json:"level_type" validate:"required,oneof=class_teacher subject_teacher"`
	Tier *string `json:"level_tier" validate:"omitempty,oneof=paud sd smp sma paket"`

	// key tingkat (string angka) → fase A–F
	PhaseMap map[string]string `json:"level_phase_map" validate:"omitempty,dive,oneof=A B C D E F"`

	IsActive *bool `json:"level_is_active"`
}

func (r *CreateLevelRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	if r.Tier != nil {
		t := strings.ToLower(strings.TrimSpace(*r.Tier))
		if t == "" {
			r.Tier = nil
		} else {
			r.Tier = &t
		}
	}
	for k, v := range r.PhaseMap {
		r.PhaseMap[k] = strings.ToUpper(strings.TrimSpace(v))
	}
}

func (r CreateLevelRequest) ToModel() m.LevelModel {
	now := time.Now()
	mm := m.LevelModel{
		LevelName:      r.Name,
		LevelType:      r.Type,
		LevelTier:      r.Tier,
		LevelPhaseMap:  m.PhaseMap(r.PhaseMap),
		LevelIsActive:  true,
		LevelCreatedAt: now,
		LevelUpdatedAt: now,
	}
	if r.IsActive != nil {
		mm.LevelIsActive = *r.IsActive
	}
	return mm
}

/* =========================================================
   UPDATE (partial)
   ========================================================= */

type UpdateLevelRequest struct {
	Name     *string            `json:"level_name" validate:"omitempty,min=1,max=120"`
	Type     *string            `json:"level_type" validate:"omitempty,oneof=class_teacher subject_teacher"`
	Tier     *string            `json:"level_tier" validate:"omitempty,oneof=paud sd smp sma paket"`
	PhaseMap *map[string]string `json:"level_phase_map" validate:"omitempty,dive,oneof=A B C D E F"`
	IsActive *bool              `json:"level_is_active"`
}

func (r UpdateLevelRequest) Apply(mm *m.LevelModel) {
	if r.Name != nil {
		mm.LevelName = strings.TrimSpace(*r.Name)
	}
	if r.Type != nil {
		mm.LevelType = strings.ToLower(strings.TrimSpace(*r.Type))
	}
	if r.Tier != nil {
		mm.LevelTier = r.Tier
	}
	if r.PhaseMap != nil {
		pm := make(m.PhaseMap, len(*r.PhaseMap))
		for k, v := range *r.PhaseMap {
			pm[k] = strings.ToUpper(strings.TrimSpace(v))
		}
		mm.LevelPhaseMap = pm
	}
	if r.IsActive != nil {
		mm.LevelIsActive = *r.IsActive
	}
	mm.LevelUpdatedAt = time.Now()
}

/* =========================================================
   RESPONSE
   ========================================================= */

type LevelResponse struct {
	m.LevelModel
	// fase yang tersedia di jenjang ini (dedup + sort) — untuk dropdown UI
	AvailablePhases []string `json:"available_phases,omitempty"`
}
