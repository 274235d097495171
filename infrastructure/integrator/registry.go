package integrator

import (
	"errors"
	"sync"

	"github.com/vfg2006/ads-performance-api/internal/domain"
)

var (
	// ErrAdapterNotFound indica que não há adaptador registrado para a
	// plataforma
	ErrAdapterNotFound = errors.New("adapter not found")

	// ErrAdapterAlreadyRegistered indica tentativa de registrar duas vezes a
	// mesma plataforma
	ErrAdapterAlreadyRegistered = errors.New("adapter already registered")
)

// Registry mantém os adaptadores de plataforma registrados
type Registry struct {
	mu       sync.RWMutex
	adapters map[domain.Platform]Adapter
}

func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[domain.Platform]Adapter),
	}
}

// Register adiciona um adaptador ao registro. Cada plataforma só pode ser
// registrada uma vez
func (r *Registry) Register(adapter Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	platform := adapter.Platform()
	if _, ok := r.adapters[platform]; ok {
		return ErrAdapterAlreadyRegistered
	}

	r.adapters[platform] = adapter

	return nil
}

// Get retorna o adaptador da plataforma informada
func (r *Registry) Get(platform domain.Platform) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[platform]
	if !ok {
		return nil, ErrAdapterNotFound
	}

	return adapter, nil
}

// Platforms lista as plataformas com adaptador registrado
func (r *Registry) Platforms() []domain.Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()

	platforms := make([]domain.Platform, 0, len(r.adapters))
	for platform := range r.adapters {
		platforms = append(platforms, platform)
	}

	return platforms
}
