package dal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"clinicore.io/clinicore/internal/metrics"
	"clinicore.io/clinicore/internal/models"
	"clinicore.io/clinicore/internal/notify"
	"clinicore.io/clinicore/internal/storage"
)

// Collection keys. The storage layer prefixes each with the configured
// namespace; InitializedKey guards the one-time seed.
const (
	PatientsKey       = "patients"
	DoctorsKey        = "doctors"
	AppointmentsKey   = "appointments"
	DepartmentsKey    = "departments"
	MedicalRecordsKey = "medical_records"
	InitializedKey    = "initialized"
)

// Options tunes store-wide behavior shared by every entity model.
type Options struct {
	// MonotonicIDs switches id allocation to a persisted high-water mark
	// so an id freed by deletion is never reused. Default off: the
	// allocator is max(existing)+1 over current contents.
	MonotonicIDs bool
	// Now supplies the clock used for registration stamps and date
	// comparisons. Defaults to time.Now.
	Now func() time.Time
}

// CollectionStore wraps the storage substrate with the collection codec
// and the read/write policies shared by every entity model.
type CollectionStore struct {
	kv      *storage.Store
	advisor notify.Advisor
	opts    Options
}

// NewCollectionStore creates a new collection store over kv.
func NewCollectionStore(kv *storage.Store, advisor notify.Advisor, opts Options) *CollectionStore {
	if advisor == nil {
		advisor = notify.LogAdvisor{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &CollectionStore{kv: kv, advisor: advisor, opts: opts}
}

// Now returns the store clock's current time.
func (cs *CollectionStore) Now() time.Time {
	return cs.opts.Now()
}

// today returns the store clock's current date as a zero-padded ISO string.
func (cs *CollectionStore) today() string {
	return cs.opts.Now().Format("2006-01-02")
}

// loadCollection reads and decodes the full sequence stored under key.
// A missing key is an empty collection, not an error.
func loadCollection[T any](cs *CollectionStore, key string) ([]T, error) {
	raw, ok, err := cs.kv.Get(key)
	if err != nil {
		metrics.RecordStoreRead(key, "read_error")
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		metrics.RecordStoreRead(key, "empty")
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		metrics.RecordDecodeFailure(key)
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	metrics.RecordStoreRead(key, "success")
	return items, nil
}

// listCollection applies the repository read policy: a collection that
// cannot be read or decoded yields an empty sequence plus an advisory,
// never a failure of the caller.
func listCollection[T any](cs *CollectionStore, key, failureMsg string) []T {
	items, err := loadCollection[T](cs, key)
	if err != nil {
		log.Error().
			Err(err).
			Str("collection", key).
			Msg("Failed to load collection")
		cs.advisor.Error(failureMsg)
		return []T{}
	}
	return items
}

// saveCollection serializes items and overwrites the stored value for key.
// Writes are whole-collection replacements.
func saveCollection[T any](cs *CollectionStore, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		metrics.RecordStoreWrite(key, "encode_error")
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := cs.kv.Put(key, data); err != nil {
		metrics.RecordStoreWrite(key, "write_error")
		return fmt.Errorf("save %s: %w", key, err)
	}
	metrics.RecordStoreWrite(key, "success")
	return nil
}

// nextID returns max(existing ids)+1, or 1 for an empty collection. A
// deleted max id is therefore reused by the next insert.
func nextID[T models.Identified](items []T) int {
	next := 1
	for _, item := range items {
		if id := item.EntityID(); id >= next {
			next = id + 1
		}
	}
	return next
}

// allocateID applies the configured allocation strategy. With monotonic
// ids enabled, a per-collection sequence key tracks the highest id ever
// handed out; a failed subsequent save leaves a gap, never a reuse.
func (cs *CollectionStore) allocateID(key string, floor int) (int, error) {
	if !cs.opts.MonotonicIDs {
		return floor, nil
	}
	seqKey := key + "_seq"
	last := 0
	raw, ok, err := cs.kv.Get(seqKey)
	if err != nil {
		return 0, fmt.Errorf("load sequence %s: %w", seqKey, err)
	}
	if ok {
		if n, convErr := strconv.Atoi(string(raw)); convErr == nil {
			last = n
		}
	}
	id := floor
	if last+1 > id {
		id = last + 1
	}
	if err := cs.kv.Put(seqKey, []byte(strconv.Itoa(id))); err != nil {
		return 0, fmt.Errorf("save sequence %s: %w", seqKey, err)
	}
	return id, nil
}
