package store

import (
	"sync"
	"time"

	"pad/internal/loader"
	"pad/internal/models"
	"pad/internal/providers"
	"pad/internal/structures"
)

const (
	sourcePresence = "presence"
	sourceUsers    = "users"
)

// Stats is a point-in-time view of what the store holds.
type Stats struct {
	PresenceUsers int
	ProfileUsers  int
	LastLoad      time.Time
}

type DataStoreInterface interface {
	Presence() (models.PresenceData, error)
	Users() (models.UserDirectory, error)
	Stats() Stats
}

// DataStore is a read-through cache over the source loaders. An entry is
// refreshed when ttl is nonzero and at least ttl has passed since its
// load; ttl == 0 keeps entries for the process lifetime. The mutex spans
// the whole check-and-populate sequence so only one loader invocation is
// in flight per source and readers never observe a torn entry. A load
// failure propagates to the caller and is not retried.
type DataStore struct {
	mu             sync.Mutex
	ttl            time.Duration
	now            func() time.Time
	logger         providers.Logger
	metrics        providers.MetricsProviderInterface
	presenceLoader loader.PresenceLoaderInterface
	usersLoader    loader.UsersLoaderInterface
	presence       entry[models.PresenceData]
	users          entry[models.UserDirectory]
}

type entry[T any] struct {
	value    T
	loadedAt time.Time
	loaded   bool
}

func (e *entry[T]) fresh(now time.Time, ttl time.Duration) bool {
	if !e.loaded {
		return false
	}
	return ttl == 0 || now.Sub(e.loadedAt) < ttl
}

func NewDataStore(
	conf *structures.Config,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	presenceLoader loader.PresenceLoaderInterface,
	usersLoader loader.UsersLoaderInterface,
) DataStoreInterface {
	return &DataStore{
		ttl:            conf.Sources.TTL,
		now:            time.Now,
		logger:         logger,
		metrics:        metrics,
		presenceLoader: presenceLoader,
		usersLoader:    usersLoader,
	}
}

func (s *DataStore) Presence() (models.PresenceData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.presence.fresh(now, s.ttl) {
		return s.presence.value, nil
	}

	data, err := s.presenceLoader.Load()
	if err != nil {
		return nil, err
	}
	s.presence = entry[models.PresenceData]{value: data, loadedAt: now, loaded: true}

	records := 0
	for _, items := range data {
		records += len(items)
	}
	s.metrics.ObserveSourceLoadDuration(sourcePresence, s.now().Sub(now))
	s.metrics.SetDatasetRecords(sourcePresence, records)
	s.logger.Infof(providers.TypeApp, "Loaded presence source: %d users, %d records", len(data), records)

	return data, nil
}

func (s *DataStore) Users() (models.UserDirectory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.users.fresh(now, s.ttl) {
		return s.users.value, nil
	}

	dir, err := s.usersLoader.Load()
	if err != nil {
		return nil, err
	}
	s.users = entry[models.UserDirectory]{value: dir, loadedAt: now, loaded: true}

	s.metrics.ObserveSourceLoadDuration(sourceUsers, s.now().Sub(now))
	s.metrics.SetDatasetRecords(sourceUsers, len(dir))
	s.logger.Infof(providers.TypeApp, "Loaded users source: %d profiles", len(dir))

	return dir, nil
}

func (s *DataStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := s.presence.loadedAt
	if s.users.loadedAt.After(last) {
		last = s.users.loadedAt
	}
	return Stats{
		PresenceUsers: len(s.presence.value),
		ProfileUsers:  len(s.users.value),
		LastLoad:      last,
	}
}
