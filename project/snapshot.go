package project

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"stratigraph/contact"
	"stratigraph/strat"
)

// SnapshotSchema is the current snapshot schema version. Loading bumps it
// through no migrations: an unknown version is a hard error, since a
// snapshot is a cache of a cheap computation, not a system of record.
const SnapshotSchema uint16 = 1

// Snapshot is the persisted result of one pipeline run.
type Snapshot struct {
	SchemaVersion uint16            `msgpack:"schema_version"`
	Column        []string          `msgpack:"column"`
	Sorter        string            `msgpack:"sorter"`
	BasalLength   float64           `msgpack:"basal_length"`
	Contacts      []SnapshotContact `msgpack:"contacts"`
}

// SnapshotContact is one classified basal contact, geometry reduced to its
// length.
type SnapshotContact struct {
	ID        int     `msgpack:"id"`
	BasalUnit string  `msgpack:"basal_unit"`
	Distance  int     `msgpack:"distance"`
	Type      string  `msgpack:"type"`
	Length    float64 `msgpack:"length"`
}

// NewSnapshot assembles a snapshot from a selection and its classified
// contacts.
func NewSnapshot(sel strat.Selection, basal contact.BasalTable) Snapshot {
	rows := make([]SnapshotContact, 0, len(basal))
	for _, r := range basal {
		rows = append(rows, SnapshotContact{
			ID:        r.ID,
			BasalUnit: r.BasalUnit,
			Distance:  r.Distance,
			Type:      r.Type,
			Length:    r.Geometry.Length(),
		})
	}

	return Snapshot{
		SchemaVersion: SnapshotSchema,
		Column:        sel.Order,
		Sorter:        sel.Sorter,
		BasalLength:   sel.BasalLength,
		Contacts:      rows,
	}
}

// Save writes the snapshot to path in msgpack encoding.
func (s Snapshot) Save(path string) error {
	s.SchemaVersion = SnapshotSchema
	raw, err := msgpack.Marshal(s)
	if err != nil {
		return fmt.Errorf("project: encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("project: writing snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot reads a snapshot, rejecting unknown schema versions with
// ErrBadSnapshot.
func LoadSnapshot(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("project: reading snapshot: %w", err)
	}
	var s Snapshot
	if err := msgpack.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, fmt.Errorf("project: decoding snapshot %s: %w", path, err)
	}
	if s.SchemaVersion != SnapshotSchema {
		return Snapshot{}, fmt.Errorf("%w: version %d, want %d",
			ErrBadSnapshot, s.SchemaVersion, SnapshotSchema)
	}

	return s, nil
}
