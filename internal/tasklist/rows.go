package tasklist

// Row is a view descriptor for one rendered task row. The presentation layer
// maps each control to the corresponding Manager operation; a full re-render
// replaces the previous view output entirely (no incremental patching).
type Row struct {
	ID        int
	Text      string
	Completed bool

	// Editing marks the single row rendered as an inline text field
	// (pre-filled, focused) instead of a read-only label.
	Editing bool
}

// Controls names the action set for the row: Edit/Delete while viewing,
// Save/Cancel while editing.
func (r Row) Controls() []string {
	if r.Editing {
		return []string{"save", "cancel"}
	}
	return []string{"edit", "delete"}
}

// Rows produces view descriptors for every task in list order.
func (m *Manager) Rows() []Row {
	rows := make([]Row, 0, len(m.tasks))
	for _, t := range m.tasks {
		rows = append(rows, Row{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Editing:   m.editing && m.editingID == t.ID,
		})
	}
	return rows
}
