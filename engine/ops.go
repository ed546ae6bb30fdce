package engine

import (
	"fmt"
	"sort"
)

// Set attaches cell under key in attrs. If a cell is already present
// under key, its delete callback runs first (with the lock dropped for
// the duration) and the old cell is discarded only once that callback
// succeeds; a failing delete callback leaves attrs untouched and
// propagates the error. On success, cell becomes the new value and, if
// there was no prior cell, the descriptor gains one more referrer.
func (s *Subsystem) Set(hostKind HostKind, host Host, attrs *AttributeMap, key int, cell *ValueCell, allowPredefined bool) error {
	s.mu.Lock()

	desc, ok := s.lookupLocked(key)
	if !ok || desc.hostKind != hostKind {
		s.mu.Unlock()
		return fmt.Errorf("%w: no such keyval %d for %s", ErrBadParam, key, hostKind)
	}
	if desc.Predefined() && !allowPredefined {
		s.mu.Unlock()
		return fmt.Errorf("%w: keyval %d is predefined", ErrBadParam, key)
	}

	old, hadOld := attrs.lookup(key)
	if hadOld {
		if err := s.invokeDeleteLocked(desc, host, old); err != nil {
			s.mu.Unlock()
			return err
		}
		attrs.remove(key)

		// The delete callback ran with the lock dropped and could in
		// principle have freed this very keyval by reentering
		// FreeKeyval; re-validate before attaching the new cell.
		desc, ok = s.lookupLocked(key)
		if !ok {
			s.mu.Unlock()
			return fmt.Errorf("%w: keyval %d was freed by its own delete callback", ErrIntern, key)
		}
	}

	cell.key = key
	cell.sequence = s.nextSeq
	s.nextSeq++
	attrs.insert(cell)

	if !hadOld {
		desc.refcount++
	}
	s.mu.Unlock()
	return nil
}

// Get returns the cell cached under key in attrs. found is false with a
// nil error when key is a valid, registered keyval with nothing
// currently cached against this particular map — the flag=0 case.
// ErrInvalidKey is returned when key is not a registered keyval at all.
func (s *Subsystem) Get(key int, attrs *AttributeMap) (cell *ValueCell, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookupLocked(key); !ok {
		return nil, false, ErrInvalidKey
	}
	cell, found = attrs.lookup(key)
	return cell, found, nil
}

// Delete removes any cell cached under key in attrs, running the
// delete callback first if one is present, and drops one reference on
// the descriptor whether or not a cell was actually cached (matching
// the registered-but-unset case: the key is still a valid referrer
// slot even with nothing attached).
func (s *Subsystem) Delete(hostKind HostKind, host Host, attrs *AttributeMap, key int, allowPredefined bool) error {
	s.mu.Lock()

	desc, ok := s.lookupLocked(key)
	if !ok || desc.hostKind != hostKind {
		s.mu.Unlock()
		return fmt.Errorf("%w: no such keyval %d for %s", ErrBadParam, key, hostKind)
	}
	if desc.Predefined() && !allowPredefined {
		s.mu.Unlock()
		return fmt.Errorf("%w: keyval %d is predefined", ErrBadParam, key)
	}

	if cell, present := attrs.lookup(key); present {
		if err := s.invokeDeleteLocked(desc, host, cell); err != nil {
			s.mu.Unlock()
			return err
		}
		attrs.remove(key)
	}

	s.dropDescriptorRefLocked(desc)
	s.mu.Unlock()
	return nil
}

// CopyAll duplicates every attribute in oldAttrs onto newAttrs,
// invoking each keyval's copy callback in turn. A callback that
// reports attach=false simply omits that key from newAttrs; a callback
// that returns an error aborts the whole operation immediately,
// leaving newAttrs with whatever subset had already been copied — the
// original engine's behavior, not a design choice made here. Instance
// attributes cannot be duplicated at all, since instances are not
// copied the way communicators, datatypes and windows are.
func (s *Subsystem) CopyAll(hostKind HostKind, oldHost, newHost Host, oldAttrs, newAttrs *AttributeMap) error {
	if hostKind == Instance {
		return fmt.Errorf("%w: instance attributes cannot be duplicated", ErrArg)
	}

	s.mu.Lock()
	cells := oldAttrs.snapshot()
	s.mu.Unlock()

	sort.Slice(cells, func(i, j int) bool { return cells[i].sequence < cells[j].sequence })

	for _, cell := range cells {
		s.mu.Lock()
		desc, ok := s.lookupLocked(cell.key)
		if !ok {
			s.mu.Unlock()
			return fmt.Errorf("%w: keyval %d missing from registry during copy_all", ErrIntern, cell.key)
		}
		newCell, attach, err := s.invokeCopyLocked(desc, oldHost, newHost, cell)
		s.mu.Unlock()

		if err != nil {
			return err
		}
		if !attach {
			continue
		}
		if err := s.Set(hostKind, newHost, newAttrs, cell.key, newCell, true); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAll tears down every attribute in attrs in descending
// attach-sequence order — last attached, first deleted — matching the
// original engine's stack-like teardown. It does not roll back on a
// mid-sweep failure: a delete callback's error is returned immediately,
// leaving any attributes after it in teardown order still cached.
func (s *Subsystem) DeleteAll(hostKind HostKind, host Host, attrs *AttributeMap) error {
	s.mu.Lock()
	cells := attrs.snapshot()
	s.mu.Unlock()

	sort.Slice(cells, func(i, j int) bool { return cells[i].sequence > cells[j].sequence })

	for _, cell := range cells {
		s.mu.Lock()

		// A prior delete callback in this same sweep may have reentered
		// Delete/DeleteAll and already removed this key; skip it rather
		// than re-deleting.
		current, present := attrs.lookup(cell.key)
		if !present || current.sequence != cell.sequence {
			s.mu.Unlock()
			continue
		}

		desc, ok := s.lookupLocked(cell.key)
		if !ok {
			s.mu.Unlock()
			return fmt.Errorf("%w: keyval %d missing from registry during delete_all", ErrIntern, cell.key)
		}

		if err := s.invokeDeleteLocked(desc, host, cell); err != nil {
			s.mu.Unlock()
			return err
		}
		attrs.remove(cell.key)
		s.dropDescriptorRefLocked(desc)
		s.mu.Unlock()
	}
	return nil
}
