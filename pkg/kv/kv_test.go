package kv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shalabia/storefront/pkg/kv"
)

func TestMemoryDriverRoundTrip(t *testing.T) {
	store := kv.NewMemoryDriver()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set("k", "v"))
	got, ok, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", got)

	require.NoError(t, store.Remove("k"))
	_, ok, err = store.Get("k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReadJSONDegradesMalformedToAbsent(t *testing.T) {
	store := kv.NewMemoryDriver()
	require.NoError(t, store.Set("list", "{not json"))

	var out []int
	require.False(t, kv.ReadJSON(store, "list", &out))
	require.Nil(t, out)
}

func TestWriteThenReadJSON(t *testing.T) {
	store := kv.NewMemoryDriver()

	require.NoError(t, kv.WriteJSON(store, "list", []int{2, 5}))
	var out []int
	require.True(t, kv.ReadJSON(store, "list", &out))
	require.Equal(t, []int{2, 5}, out)
}
