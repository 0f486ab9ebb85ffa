package utils

import "sync"

// KeyedMutex provides a mutex per string key. It is used to serialize
// external-id assignment and resolution for one (tenant, entity type,
// external id) tuple so that two concurrent operations can never create two
// local entities for the same external id.
//
// Entries are created lazily and kept for the lifetime of the KeyedMutex.
// The expected key cardinality is bounded (active jobs only), so no eviction
// is performed.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedMutex constructs an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use.
func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
}

// Unlock releases the mutex for key. Calling Unlock for a key that was never
// locked is a programming error and panics, same as sync.Mutex.
func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	k.mu.Unlock()

	if !ok {
		panic("utils: unlock of unknown key " + key)
	}
	l.Unlock()
}

// TryLock attempts to acquire the mutex for key without blocking and reports
// whether the lock was taken. Used to reject a second concurrent destructive
// import for the same tenant and entity type.
func (k *KeyedMutex) TryLock(key string) bool {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	return l.TryLock()
}
