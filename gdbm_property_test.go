package gdbm

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// propPath is set by the enclosing test, the machine reopens it with
// NewDB on every rapid run.
var propPath string

type dbMachine struct {
	db    *DB
	model map[string][]byte
}

func (m *dbMachine) Init(t *rapid.T) {
	db, err := Open(propPath, Options{Flags: NewDB})
	require.NoError(t, err)
	m.db = db
	m.model = map[string][]byte{}
}

func (m *dbMachine) Cleanup() {
	_ = m.db.Close()
}

func propKey(r *rapid.T) []byte {
	return rapid.SliceOfN(rapid.ByteRange('a', 'd'), 1, 4).Draw(r, "key")
}

func propValue(r *rapid.T) []byte {
	return rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(r, "value")
}

func (m *dbMachine) StoreReplace(r *rapid.T) {
	key, value := propKey(r), propValue(r)
	stored, err := m.db.Store(key, value, true)
	require.NoError(r, err)
	require.True(r, stored)
	m.model[string(key)] = value
}

func (m *dbMachine) StoreInsert(r *rapid.T) {
	key, value := propKey(r), propValue(r)
	_, present := m.model[string(key)]
	stored, err := m.db.Store(key, value, false)
	require.NoError(r, err)
	require.Equal(r, !present, stored)
	if stored {
		m.model[string(key)] = value
	}
}

func (m *dbMachine) Fetch(r *rapid.T) {
	key := propKey(r)
	want, present := m.model[string(key)]
	got, err := m.db.Fetch(key)
	if !present {
		require.ErrorIs(r, err, ErrNotFound)
		return
	}
	require.NoError(r, err)
	require.True(r, bytes.Equal(want, got))
}

func (m *dbMachine) Exists(r *rapid.T) {
	key := propKey(r)
	_, present := m.model[string(key)]
	found, err := m.db.Exists(key)
	require.NoError(r, err)
	require.Equal(r, present, found)
}

func (m *dbMachine) Delete(r *rapid.T) {
	key := propKey(r)
	_, present := m.model[string(key)]
	removed, err := m.db.Delete(key)
	require.NoError(r, err)
	require.Equal(r, present, removed)
	delete(m.model, string(key))
}

func (m *dbMachine) Check(t *rapid.T) {
	n, err := m.db.Count()
	require.NoError(t, err)
	require.Equal(t, uint64(len(m.model)), n)
}

func TestStoreModel(t *testing.T) {
	propPath = filepath.Join(t.TempDir(), "prop.db")
	rapid.Check(t, rapid.Run[*dbMachine]())
}
