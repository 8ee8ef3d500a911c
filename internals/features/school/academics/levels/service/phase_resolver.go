// file: internals/features/school/academics/levels/service/phase_resolver.go
package service

import (
	"sort"
	"strconv"

	levelModel "sekolahku_backend/internals/features/school/academics/levels/model"
)

// Huruf fase yang sah di Kurikulum Merdeka
var ValidPhases = []string{"A", "B", "C", "D", "E", "F"}

// ResolvePhase: lookup murni tingkat → fase, tanpa fallback/inference.
// nil kalau tingkat kosong, map kosong, atau tingkat tidak terdaftar —
// "fase tidak diketahui" adalah keadaan sah, bukan error.
func ResolvePhase(classLevel *int, phaseMap levelModel.PhaseMap) *string {
	if classLevel == nil || len(phaseMap) == 0 {
		return nil
	}
	phase, ok := phaseMap[strconv.Itoa(*classLevel)]
	if !ok || phase == "" {
		return nil
	}
	return &phase
}

// AvailablePhases: daftar huruf fase yang muncul di map sebuah jenjang,
// dedup + sort leksikografis (untuk {A..F} sama dengan urutan kurikulum).
func AvailablePhases(phaseMap levelModel.PhaseMap) []string {
	seen := make(map[string]struct{}, len(phaseMap))
	out := make([]string, 0, len(phaseMap))
	for _, phase := range phaseMap {
		if phase == "" {
			continue
		}
		if _, ok := seen[phase]; ok {
			continue
		}
		seen[phase] = struct{}{}
		out = append(out, phase)
	}
	sort.Strings(out)
	return out
}
