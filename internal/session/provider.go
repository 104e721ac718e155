package session

import (
	"context"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// provider mints anonymous session identifiers and remembers them in a
// pluggable store. When the store is unreachable it degrades to an
// in-process fallback so minting never fails.
type provider struct {
	store    Store
	fallback Store
}

var _ domain.SessionProvider = (*provider)(nil)

func NewProvider(store Store) *provider {
	fallback, _ := NewStore(StoreTypeMemory)
	return &provider{
		store:    store,
		fallback: fallback,
	}
}

func (p *provider) Ensure(ctx context.Context, id string) (string, error) {
	if id != "" {
		known, err := p.Known(ctx, id)
		if err == nil && known {
			return id, nil
		}
		if err != nil {
			logrus.Warnf("session store lookup failed, reissuing identity: %v", err)
		}
	}

	fresh := uuid.NewString()
	if err := p.store.Add(ctx, fresh); err != nil {
		logrus.Warnf("session store unavailable, keeping %s in memory only: %v", fresh, err)
		_ = p.fallback.Add(ctx, fresh)
	}
	return fresh, nil
}

func (p *provider) Known(ctx context.Context, id string) (bool, error) {
	known, err := p.store.Has(ctx, id)
	if err != nil {
		if ok, ferr := p.fallback.Has(ctx, id); ferr == nil && ok {
			return true, nil
		}
		return false, err
	}
	return known, nil
}
