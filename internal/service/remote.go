package service

import (
	"context"
	"log/slog"
	"sync"

	"aiva/internal/domain"
)

// RemoteTables holds the user-scoped remote table for each collection.
type RemoteTables struct {
	ICPs          UserScoped[domain.ICP]
	Contents      UserScoped[domain.ContentItem]
	Graphics      UserScoped[domain.GraphicItem]
	CalendarItems UserScoped[domain.CalendarItem]
	Campaigns     UserScoped[domain.Campaign]
}

// RemoteDataStore keeps every collection in the remote relational store,
// scoped to the signed-in user. Without a user all collections are empty and
// every operation fails with domain.ErrNoUser.
type RemoteDataStore struct {
	*store

	mu     sync.RWMutex
	userID string
}

// NewRemoteDataStore builds a store with no user. When snapshots is not nil,
// RefreshData reads all collections inside one consistent snapshot.
func NewRemoteDataStore(tables RemoteTables, snapshots SnapshotRunner, notifier Notifier, logger *slog.Logger) *RemoteDataStore {
	r := &RemoteDataStore{}
	repos := Repositories{
		ICPs:          scoped[domain.ICP]{table: tables.ICPs, user: r.UserID},
		Contents:      scoped[domain.ContentItem]{table: tables.Contents, user: r.UserID},
		Graphics:      scoped[domain.GraphicItem]{table: tables.Graphics, user: r.UserID},
		CalendarItems: scoped[domain.CalendarItem]{table: tables.CalendarItems, user: r.UserID},
		Campaigns:     scoped[domain.Campaign]{table: tables.Campaigns, user: r.UserID},
	}
	r.store = newStore(repos, notifier, logger.With("backend", "remote"))
	if snapshots != nil {
		r.snapshot = snapshots.WithSnapshot
	}
	return r
}

func (r *RemoteDataStore) UserID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.userID
}

// SetUser switches the signed-in user. An empty id signs out and clears
// every collection; otherwise the new user's data is loaded.
func (r *RemoteDataStore) SetUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	r.userID = userID
	r.mu.Unlock()

	if userID == "" {
		r.clear()
		r.logger.Info("signed out, collections cleared")
		return nil
	}
	r.logger.Info("user set", "user_id", userID)
	return r.RefreshData(ctx)
}

// RefreshData reloads the user's collections. With no user it clears them.
func (r *RemoteDataStore) RefreshData(ctx context.Context) error {
	if r.UserID() == "" {
		r.clear()
		return nil
	}
	return r.store.RefreshData(ctx)
}
