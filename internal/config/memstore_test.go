package config

import (
	"context"
	"strings"
)

// memStore is a pure in-memory Store for resolver tests.
type memStore struct {
	scopes map[Scope]map[string][]string
	file   map[string][]string
}

func newMemStore() *memStore {
	return &memStore{
		scopes: map[Scope]map[string][]string{
			ScopeLocal:  {},
			ScopeGlobal: {},
			ScopeSystem: {},
		},
		file: map[string][]string{},
	}
}

func (m *memStore) Get(_ context.Context, key string, scope Scope) (string, bool) {
	if scope == ScopeAuto {
		// Merged view: narrowest scope wins, matching git's merge order.
		for _, s := range []Scope{ScopeLocal, ScopeGlobal, ScopeSystem} {
			if values := m.scopes[s][key]; len(values) > 0 && values[len(values)-1] != "" {
				return values[len(values)-1], true
			}
		}
		return "", false
	}
	values := m.scopes[scope][key]
	if len(values) == 0 || values[len(values)-1] == "" {
		return "", false
	}
	return values[len(values)-1], true
}

func (m *memStore) GetAll(_ context.Context, key string, scope Scope) []string {
	return m.scopes[scope][key]
}

func (m *memStore) FileGetAll(_ context.Context, key string) []string {
	return m.file[key]
}

func (m *memStore) Set(_ context.Context, key, value string, scope Scope) error {
	m.scopes[scope][key] = []string{value}
	return nil
}

func (m *memStore) Add(_ context.Context, key, value string, scope Scope) error {
	m.scopes[scope][key] = append(m.scopes[scope][key], value)
	return nil
}

func (m *memStore) UnsetAll(_ context.Context, key string, scope Scope) error {
	delete(m.scopes[scope], key)
	return nil
}

func (m *memStore) ListByPrefix(_ context.Context, prefix string, scope Scope) []string {
	var out []string
	for key, values := range m.scopes[scope] {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		for _, v := range values {
			out = append(out, key+" "+v)
		}
	}
	return out
}

func (m *memStore) FileListByPrefix(_ context.Context, prefix string) []string {
	var out []string
	for key, values := range m.file {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		for _, v := range values {
			out = append(out, key+" "+v)
		}
	}
	return out
}
