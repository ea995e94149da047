// Package querystate owns the current search/filter/sort selection. The
// state itself lives in the navigational address; the store derives it on
// each read, mirrors every change to the persisted snapshot, and restores
// the snapshot once per mount when the address starts out empty.
package querystate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
	"github.com/dmitrijs2005/jobkeeper/internal/client/nav"
	"github.com/dmitrijs2005/jobkeeper/internal/client/repositories/snapshots"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
)

// Store mediates between the navigational address and the persisted
// snapshot. Precedence is strict: the address wins whenever it carries any
// query parameters; the snapshot is consulted exactly once, only when the
// address starts out with no query at all.
//
// Store is driven from the single event-handling goroutine and does not
// lock.
type Store struct {
	nav       nav.Navigator
	snaps     snapshots.Repository
	log       logging.Logger
	restored  bool
	mirrored  *models.QueryState
	listeners []func(models.QueryState)
}

func NewStore(navigator nav.Navigator, snaps snapshots.Repository, log logging.Logger) *Store {
	return &Store{nav: navigator, snaps: snaps, log: log.With("component", "querystate")}
}

// Subscribe registers fn to be called with the new state after every
// derived-state change caused by Update or restoration.
func (s *Store) Subscribe(fn func(models.QueryState)) {
	s.listeners = append(s.listeners, fn)
}

// Current derives the query state from the navigational address, applying
// defaults for absent or unrecognized parameters. The first consultation
// with a completely empty address triggers the one-time snapshot
// restoration; the derived state is mirrored to the snapshot whenever it
// changed.
func (s *Store) Current(ctx context.Context) models.QueryState {
	if !s.restored {
		s.restored = true
		if len(s.nav.Location().Query) == 0 {
			s.restoreOnce(ctx)
		}
	}

	qs := models.QueryStateFromValues(s.nav.Location().Query)
	s.mirror(ctx, qs)
	return qs
}

// Update merges the patch into the current derived state and pushes the
// result onto the navigational address as a new history entry, so back and
// forward navigation can step through filter history. Nil patch fields are
// left unchanged.
func (s *Store) Update(ctx context.Context, patch models.QueryPatch) models.QueryState {
	next := patch.Apply(s.Current(ctx))

	loc := s.nav.Location()
	loc.Query = next.Values()
	s.nav.Push(loc)

	s.mirror(ctx, next)
	s.notify(next)
	return next
}

// restoreOnce reads the persisted query snapshot and replaces the current
// address with it, without creating a history entry. A missing or malformed
// snapshot restores nothing; the corrupt entry is deleted.
func (s *Store) restoreOnce(ctx context.Context) {
	raw, err := s.snaps.Get(ctx, snapshots.KeyQuery)
	if err != nil {
		s.log.Warn(ctx, "reading query snapshot failed", "error", err)
		return
	}
	if raw == nil {
		return
	}

	var qs models.QueryState
	if err := json.Unmarshal(raw, &qs); err != nil {
		s.log.Warn(ctx, "discarding malformed query snapshot")
		if err := s.snaps.Delete(ctx, snapshots.KeyQuery); err != nil {
			s.log.Warn(ctx, "deleting malformed query snapshot failed", "error", err)
		}
		return
	}
	qs = qs.Normalize()

	loc := s.nav.Location()
	loc.Query = qs.Values()
	s.nav.Replace(loc)

	s.log.Debug(ctx, "query state restored", "q", qs.Search, "status", qs.Status, "sort", qs.Sort)
	s.notify(qs)
}

// mirror writes the full query state to the snapshot when it differs from
// the last mirrored value.
func (s *Store) mirror(ctx context.Context, qs models.QueryState) {
	if s.mirrored != nil && *s.mirrored == qs {
		return
	}

	raw, err := json.Marshal(qs)
	if err != nil {
		s.log.Warn(ctx, "encoding query snapshot failed", "error", err)
		return
	}
	if err := s.snaps.Set(ctx, snapshots.KeyQuery, raw); err != nil {
		s.log.Warn(ctx, "writing query snapshot failed", "error", err)
		return
	}
	copied := qs
	s.mirrored = &copied
}

func (s *Store) notify(qs models.QueryState) {
	for _, fn := range s.listeners {
		fn(qs)
	}
}

// Describe renders the state for display, e.g. `q="go" status=All sort=date_desc`.
func Describe(qs models.QueryState) string {
	return fmt.Sprintf("q=%q status=%s sort=%s", qs.Search, qs.Status, qs.Sort)
}
