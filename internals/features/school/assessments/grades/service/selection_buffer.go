// file: internals/features/school/assessments/grades/service/selection_buffer.go
package service

import (
	"github.com/google/uuid"

	gradeModel "sekolahku_backend/internals/features/school/assessments/grades/model"
)

// Jenis pilihan TP
const (
	SelectionStrongest        = "strongest"
	SelectionNeedsImprovement = "needs_improvement"
)

type selectionKey struct {
	StudentID uuid.UUID
	Kind      string
}

// SelectionBuffer: area scratch untuk picker modal. Pilihan di-buffer per
// (siswa, jenis) dan baru masuk ke entry otoritatif saat Commit; Cancel
// membuang scratch tanpa menyentuh entry. Tidak aman untuk akses paralel —
// satu buffer per sesi edit.
type SelectionBuffer struct {
	entries map[uuid.UUID]*StudentGradeEntry
	scratch map[selectionKey]gradeModel.UUIDSet
}

func NewSelectionBuffer(entries []StudentGradeEntry) *SelectionBuffer {
	byID := make(map[uuid.UUID]*StudentGradeEntry, len(entries))
	for i := range entries {
		byID[entries[i].StudentID] = &entries[i]
	}
	return &SelectionBuffer{
		entries: byID,
		scratch: make(map[selectionKey]gradeModel.UUIDSet),
	}
}

// Begin: seed scratch dari entry otoritatif (copy, bukan alias)
func (b *SelectionBuffer) Begin(studentID uuid.UUID, kind string) {
	key := selectionKey{StudentID: studentID, Kind: kind}
	var seed gradeModel.UUIDSet
	if entry, ok := b.entries[studentID]; ok {
		switch kind {
		case SelectionStrongest:
			seed = append(gradeModel.UUIDSet(nil), entry.StrongestIDs...)
		case SelectionNeedsImprovement:
			seed = append(gradeModel.UUIDSet(nil), entry.NeedsImprovementIDs...)
		}
	}
	b.scratch[key] = seed
}

// Toggle: tambah/hapus satu TP di scratch
func (b *SelectionBuffer) Toggle(studentID uuid.UUID, kind string, objectiveID uuid.UUID) {
	key := selectionKey{StudentID: studentID, Kind: kind}
	cur := b.scratch[key]
	if cur.Contains(objectiveID) {
		next := make(gradeModel.UUIDSet, 0, len(cur)-1)
		for _, id := range cur {
			if id != objectiveID {
				next = append(next, id)
			}
		}
		b.scratch[key] = next
		return
	}
	b.scratch[key] = append(cur, objectiveID)
}

// Scratch: isi buffer saat ini (untuk render picker)
func (b *SelectionBuffer) Scratch(studentID uuid.UUID, kind string) gradeModel.UUIDSet {
	return b.scratch[selectionKey{StudentID: studentID, Kind: kind}]
}

// Commit: tulis scratch kembali ke entry otoritatif, lalu bersihkan
func (b *SelectionBuffer) Commit(studentID uuid.UUID, kind string) {
	key := selectionKey{StudentID: studentID, Kind: kind}
	sel, ok := b.scratch[key]
	if !ok {
		return
	}
	if entry, exists := b.entries[studentID]; exists {
		switch kind {
		case SelectionStrongest:
			entry.StrongestIDs = sel.Dedup()
		case SelectionNeedsImprovement:
			entry.NeedsImprovementIDs = sel.Dedup()
		}
	}
	delete(b.scratch, key)
}

// Cancel: buang scratch; entry otoritatif tidak berubah
func (b *SelectionBuffer) Cancel(studentID uuid.UUID, kind string) {
	delete(b.scratch, selectionKey{StudentID: studentID, Kind: kind})
}

// Entries: snapshot roster hasil editing (urutan tidak dijamin)
func (b *SelectionBuffer) Entries() []StudentGradeEntry {
	out := make([]StudentGradeEntry, 0, len(b.entries))
	for _, entry := range b.entries {
		out = append(out, *entry)
	}
	return out
}

// Entry: satu entry otoritatif by id
func (b *SelectionBuffer) Entry(studentID uuid.UUID) (StudentGradeEntry, bool) {
	entry, ok := b.entries[studentID]
	if !ok {
		return StudentGradeEntry{}, false
	}
	return *entry, true
}
