/*
Package history implements undo and redo for path edits.

A Manager works on snapshots of a path. Callers Save at the end of every
discrete edit (a finished drag, an added or removed point, a loaded file),
not on every intermediate mutation, so history stays coarse grained. Saving
an unchanged path does nothing; changes are detected by a SHA-256 hash of
the path's file encoding.

The manager remembers the last saved state. Save moves that state onto the
undo stack and takes a new one; Undo and Redo exchange the current path with
the top of the respective stack. Both are no-ops on an empty stack.

# BSD License

# Copyright (c) Bryce Tieu

All rights reserved.

Please refer to the license file for more information.
*/
package history

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/BryceTieu/Pedro-Visualzier-18127/trajectory"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pedro.history'
func tracer() tracing.Trace {
	return tracing.Select("pedro.history")
}

// DefaultCapacity is the number of undo steps kept.
const DefaultCapacity = 50

// Hash returns a hex SHA-256 digest of a path. Paths which cannot be encoded
// (non-finite coordinates) hash to the empty string.
func Hash(path *trajectory.Path) string {
	var buf bytes.Buffer
	if err := trajectory.Encode(&buf, trajectory.File{Path: *path}); err != nil {
		tracer().Errorf("cannot hash path: %v", err)
		return ""
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

// Manager keeps undo and redo stacks for a path owned by the caller.
type Manager struct {
	doc      *trajectory.Path
	capacity int
	undo     []trajectory.Path
	redo     []trajectory.Path
	baseline trajectory.Path
	lastHash string
	applying bool

	// OnRestore, if set, is called after Undo or Redo replaced the path.
	// Saves issued from within OnRestore are ignored.
	OnRestore func(*trajectory.Path)
}

// NewManager creates a history for doc, taking its current state as the
// first saved state. A capacity < 1 selects DefaultCapacity.
func NewManager(doc *trajectory.Path, capacity int) *Manager {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Manager{
		doc:      doc,
		capacity: capacity,
		baseline: doc.Clone(),
		lastHash: Hash(doc),
	}
}

// Save records the current path. It reports whether a history entry was
// created; saving an unchanged path, or saving while an undo or redo is
// being applied, creates none.
func (m *Manager) Save() bool {
	if m.applying {
		return false
	}
	h := Hash(m.doc)
	if h == m.lastHash && h != "" {
		return false
	}
	m.push(m.baseline)
	m.redo = nil
	m.baseline = m.doc.Clone()
	m.lastHash = h
	tracer().Debugf("history: saved, %d undo steps", len(m.undo))
	return true
}

// Undo restores the state before the last saved edit. Unsaved changes are
// saved first, so they can be redone. Undo reports whether the path changed.
func (m *Manager) Undo() bool {
	m.Save()
	if len(m.undo) == 0 {
		return false
	}
	m.redo = append(m.redo, m.doc.Clone())
	m.apply(&m.undo)
	return true
}

// Redo re-applies the last undone edit and reports whether the path changed.
func (m *Manager) Redo() bool {
	if len(m.redo) == 0 {
		return false
	}
	m.push(m.doc.Clone())
	m.apply(&m.redo)
	return true
}

// CanUndo is a predicate: is there an edit to undo?
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0 || Hash(m.doc) != m.lastHash
}

// CanRedo is a predicate: is there an undone edit to redo?
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}

// Depth returns the sizes of the undo and redo stacks.
func (m *Manager) Depth() (int, int) {
	return len(m.undo), len(m.redo)
}

// push adds a state to the undo stack, evicting the oldest one past
// capacity.
func (m *Manager) push(state trajectory.Path) {
	m.undo = append(m.undo, state)
	if len(m.undo) > m.capacity {
		m.undo = m.undo[len(m.undo)-m.capacity:]
	}
}

// apply pops the top of stack into the document.
func (m *Manager) apply(stack *[]trajectory.Path) {
	s := *stack
	top := s[len(s)-1]
	*stack = s[:len(s)-1]
	m.applying = true
	defer func() { m.applying = false }()
	*m.doc = top.Clone()
	m.baseline = top
	m.lastHash = Hash(m.doc)
	if m.OnRestore != nil {
		m.OnRestore(m.doc)
	}
	tracer().Debugf("history: restored, %d undo / %d redo", len(m.undo), len(m.redo))
}
