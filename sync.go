package taxa

import (
	"sync"

	"github.com/hupe1980/taxa/bitmask"
)

// SyncRegistry serializes access to a Registry.
//
// Structural operations (and RequireTaxon, which may create) take the
// write lock; lookups and split queries take the read lock. The wrapped
// registry must not be used directly while the SyncRegistry is in use.
type SyncRegistry struct {
	mu sync.RWMutex
	r  *Registry
}

// NewSync wraps r.
func NewSync(r *Registry) *SyncRegistry {
	return &SyncRegistry{r: r}
}

// Read runs fn with the read lock held. fn must not mutate the registry.
func (s *SyncRegistry) Read(fn func(r *Registry) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.r)
}

// Write runs fn with the write lock held, for compound updates.
func (s *SyncRegistry) Write(fn func(r *Registry) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.r)
}

func (s *SyncRegistry) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.Len()
}

func (s *SyncRegistry) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.Version()
}

func (s *SyncRegistry) Labels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.Labels()
}

func (s *SyncRegistry) Taxa() []*Taxon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.Taxa()
}

func (s *SyncRegistry) HasTaxon(sels ...Selector) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.HasTaxon(sels...)
}

func (s *SyncRegistry) HasTaxa(q TaxaQuery) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.HasTaxa(q)
}

func (s *SyncRegistry) GetTaxon(sels ...Selector) (*Taxon, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.GetTaxon(sels...)
}

func (s *SyncRegistry) RequireTaxon(sels ...Selector) (*Taxon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.RequireTaxon(sels...)
}

func (s *SyncRegistry) RequireTaxa(labels ...string) ([]*Taxon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.RequireTaxa(labels...)
}

func (s *SyncRegistry) AddTaxon(t *Taxon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.AddTaxon(t)
}

func (s *SyncRegistry) NewTaxon(label string, optFns ...TaxonOption) (*Taxon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.NewTaxon(label, optFns...)
}

func (s *SyncRegistry) RemoveTaxon(t *Taxon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.RemoveTaxon(t)
}

func (s *SyncRegistry) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Clear()
}

func (s *SyncRegistry) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Lock()
}

func (s *SyncRegistry) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Unlock()
}

func (s *SyncRegistry) IsLocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.IsLocked()
}

func (s *SyncRegistry) AllTaxaBitmask() bitmask.Mask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.AllTaxaBitmask()
}

func (s *SyncRegistry) TaxonBitmask(t *Taxon) (bitmask.Mask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.TaxonBitmask(t)
}

func (s *SyncRegistry) SplitBitmask(taxa ...*Taxon) (bitmask.Mask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.SplitBitmask(taxa...)
}

func (s *SyncRegistry) ComplementSplitBitmask(m bitmask.Mask) bitmask.Mask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.ComplementSplitBitmask(m)
}

func (s *SyncRegistry) SplitBitmaskString(m bitmask.Mask) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.SplitBitmaskString(m)
}

func (s *SyncRegistry) SplitTaxa(m bitmask.Mask) []*Taxon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r.SplitTaxa(m)
}

// Clone returns an independently synchronized deep copy.
func (s *SyncRegistry) Clone() *SyncRegistry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NewSync(s.r.Clone())
}
