// Package edit provides the reversible edit operations on a palette
// document. Every operation mutates the document through the history
// action table and records the matching transaction, so undo and redo
// replay exactly what the operation did.
package edit

import (
	"swatchbook/internal/history"
	"swatchbook/internal/palette"
)

// Editor applies edits to one document and records them.
type Editor struct {
	doc  *palette.Document
	hist *history.History
}

// New creates an editor over the document and its history.
func New(doc *palette.Document, hist *history.History) *Editor {
	return &Editor{doc: doc, hist: hist}
}

// apply executes the redo side of the transaction and records it.
func (e *Editor) apply(tx history.Transaction) {
	for _, a := range tx.Redo {
		history.Execute(e.doc, a)
	}
	e.hist.Add(tx)
}

// AddColor appends a color to the palette.
func (e *Editor) AddColor(entry palette.Entry) {
	e.InsertColor(e.doc.Len(), entry)
}

// InsertColor inserts a color at the given index.
func (e *Editor) InsertColor(index int, entry palette.Entry) {
	e.apply(history.Transaction{
		Undo: []history.Action{{Op: history.OpRemoveColor, Index: index}},
		Redo: []history.Action{{Op: history.OpInsertColor, Index: index, Entry: entry}},
	})
}

// RemoveColor removes the color at the given index. No-op for
// out-of-range indexes.
func (e *Editor) RemoveColor(index int) {
	old, ok := e.doc.At(index)
	if !ok {
		return
	}
	e.apply(history.Transaction{
		Undo: []history.Action{{Op: history.OpInsertColor, Index: index, Entry: old}},
		Redo: []history.Action{{Op: history.OpRemoveColor, Index: index}},
	})
}

// ReplaceColor swaps the color at the given index for a new one.
// No-op for out-of-range indexes.
func (e *Editor) ReplaceColor(index int, entry palette.Entry) {
	old, ok := e.doc.At(index)
	if !ok {
		return
	}
	e.apply(history.Transaction{
		Undo: []history.Action{{Op: history.OpSetColor, Index: index, Entry: old}},
		Redo: []history.Action{{Op: history.OpSetColor, Index: index, Entry: entry}},
	})
}

// RenamePalette changes the palette title.
func (e *Editor) RenamePalette(name string) {
	e.apply(history.Transaction{
		Undo: []history.Action{{Op: history.OpSetName, Name: e.doc.Name}},
		Redo: []history.Action{{Op: history.OpSetName, Name: name}},
	})
}
