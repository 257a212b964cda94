package booking

import "sync"

// providerLocks serializes booking attempts per provider within this
// instance. The mongo transaction in the appointment repository is the
// cross-instance guarantee; the keyed mutex keeps single-instance
// deployments from ever reaching the transaction-conflict path.
type providerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (p *providerLocks) get(providerID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.locks == nil {
		p.locks = make(map[string]*sync.Mutex)
	}
	l, ok := p.locks[providerID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[providerID] = l
	}
	return l
}

// Lock acquires the booking lock for a provider and returns its unlock func.
func (p *providerLocks) Lock(providerID string) func() {
	l := p.get(providerID)
	l.Lock()
	return l.Unlock
}
