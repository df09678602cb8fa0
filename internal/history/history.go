// Package history provides a linear undo/redo transaction log over a
// palette document.
//
// The log is a stack of transactions. Each transaction pairs the
// actions that revert an edit with the actions that replay it. The
// stack starts with a sentinel record, so index 0 always means "empty
// history". Undoing and then making a new edit truncates the redo
// branch; the log never becomes a tree.
package history

import (
	"swatchbook/internal/palette"
)

// Op identifies an invertible document operation.
type Op int

const (
	OpInsertColor Op = iota
	OpRemoveColor
	OpSetColor
	OpSetName
)

// Action is one document operation with its bound arguments. Actions
// are plain values, so the log stays inspectable.
type Action struct {
	Op    Op
	Index int
	Entry palette.Entry
	Name  string
}

// Transaction pairs undo actions with the redo actions that replay
// the same edit.
type Transaction struct {
	Undo []Action
	Redo []Action
}

// Execute applies a single action to the document.
func Execute(doc *palette.Document, a Action) {
	switch a.Op {
	case OpInsertColor:
		doc.Insert(a.Index, a.Entry)
	case OpRemoveColor:
		doc.Remove(a.Index)
	case OpSetColor:
		doc.Set(a.Index, a.Entry)
	case OpSetName:
		doc.Name = a.Name
	}
}

// record is one stack cell: the undo actions of the transaction at
// this position, and the redo actions of the transaction above it.
// Redo actions are filled in lazily when the next transaction lands.
type record struct {
	undo []Action
	redo []Action
}

// History is the undo/redo log for one document.
type History struct {
	doc        *palette.Document
	stack      []record
	index      int
	savedIndex int
	onChange   func()
}

// New creates an empty history for the document. onChange is called
// after every operation that moves the stack index; it may be nil.
func New(doc *palette.Document, onChange func()) *History {
	return &History{
		doc:      doc,
		stack:    []record{{}},
		onChange: onChange,
	}
}

// Add records a completed edit. If earlier undos left the index below
// the tip, the abandoned redo branch is discarded first. A saved
// position on the discarded branch is unreachable from now on, so it
// is invalidated rather than left to alias a future transaction.
func (h *History) Add(tx Transaction) {
	if h.index < len(h.stack)-1 {
		h.stack = h.stack[:h.index+1]
		if h.savedIndex > h.index {
			h.savedIndex = -1
		}
	}
	h.stack[len(h.stack)-1].redo = tx.Redo
	h.stack = append(h.stack, record{undo: tx.Undo})
	h.index++
	h.notify()
}

// Undo reverts the most recent transaction. No-op when the history is
// empty.
func (h *History) Undo() {
	if !h.CanUndo() {
		return
	}
	for _, a := range h.stack[h.index].undo {
		Execute(h.doc, a)
	}
	h.index--
	h.notify()
}

// Redo replays the next transaction. No-op when there is nothing to
// redo.
func (h *History) Redo() {
	if !h.CanRedo() {
		return
	}
	for _, a := range h.stack[h.index].redo {
		Execute(h.doc, a)
	}
	h.index++
	h.notify()
}

// CanUndo reports whether an undoable transaction exists.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo reports whether a redoable transaction exists.
func (h *History) CanRedo() bool {
	return len(h.stack[h.index].redo) > 0
}

// IsSaved reports whether the document state matches the last saved
// position.
func (h *History) IsSaved() bool {
	return h.index == h.savedIndex
}

// SetSaved pins the current position as the saved state. Called after
// a successful save.
func (h *History) SetSaved() {
	h.savedIndex = h.index
	h.notify()
}

// Index returns the position of the most recently applied
// transaction; 0 means empty history.
func (h *History) Index() int {
	return h.index
}

func (h *History) notify() {
	if h.onChange != nil {
		h.onChange()
	}
}
