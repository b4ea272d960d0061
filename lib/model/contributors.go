package model

import (
	"sort"

	"github.com/samber/lo"
)

// Contributors is the full population under evaluation. Contributors are
// created lazily on first attribution and never deleted.
type Contributors struct {
	byKey map[string]*Contributor

	// Entries the parser could not decode. Reported alongside results,
	// never fatal.
	ParseFailures int
}

func NewContributors() *Contributors {
	return &Contributors{
		byKey: map[string]*Contributor{},
	}
}

func (cs *Contributors) Get(key string) *Contributor {
	return cs.byKey[key]
}

// Add registers an already built contributor, replacing any previous one
// with the same key. Used when loading persisted results.
func (cs *Contributors) Add(c *Contributor) {
	cs.byKey[c.Key] = c
}

func (cs *Contributors) GetOrCreate(key string) *Contributor {
	result, ok := cs.byKey[key]
	if !ok {
		result = NewContributor(key)
		cs.byKey[key] = result
	}
	return result
}

func (cs *Contributors) Size() int {
	return len(cs.byKey)
}

// List returns contributors sorted by key so every consumer sees a stable
// order.
func (cs *Contributors) List() []*Contributor {
	result := lo.Values(cs.byKey)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result
}
