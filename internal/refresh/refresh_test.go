package refresh

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YangQing-Lin/git-ignore/internal/catalog"
	"github.com/YangQing-Lin/git-ignore/internal/store"
	"github.com/YangQing-Lin/git-ignore/internal/testutil"
)

type fakeFetcher struct {
	body  []byte
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(context.Context) ([]byte, error) {
	f.calls++
	return f.body, f.err
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "cache"))
}

func TestUpdate(t *testing.T) {
	s := newStore(t)
	f := &fakeFetcher{body: []byte(testutil.CatalogJSON(t, map[string]string{"rust": "target/\n"}))}
	var out bytes.Buffer

	require.NoError(t, New(s, f, &out).Update(context.Background()))
	assert.Equal(t, "Info: Update successful\n", out.String())

	templates, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "target/\n", templates["rust"].Contents)
}

func TestUpdateFetchError(t *testing.T) {
	s := newStore(t)
	fetchErr := &catalog.FetchError{URL: catalog.DefaultURL, Status: 503, Err: errors.New("unavailable")}
	f := &fakeFetcher{err: fetchErr}
	var out bytes.Buffer

	err := New(s, f, &out).Update(context.Background())
	require.Error(t, err)
	var ferr *catalog.FetchError
	assert.ErrorAs(t, err, &ferr)
	assert.Empty(t, out.String())
	assert.Equal(t, 1, f.calls, "no retry at this layer")

	// directory is created before the fetch
	assert.True(t, s.Exists())
	_, err = s.Load()
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateMalformedKeepsPreviousCache(t *testing.T) {
	s := newStore(t)
	good := testutil.CatalogJSON(t, map[string]string{"rust": "target/\n"})
	require.NoError(t, s.Replace([]byte(good)))

	f := &fakeFetcher{body: []byte("<html>maintenance</html>")}
	err := New(s, f, nil).Update(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrMalformed)

	testutil.AssertFileContent(t, s.Path(), good)
}

func TestUpdateWriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := testutil.CreateTempFile(t, dir, "blocker", "x")
	s := store.New(filepath.Join(blocker, "cache"))
	f := &fakeFetcher{body: []byte("{}")}

	err := New(s, f, nil).Update(context.Background())
	var werr *store.WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, 0, f.calls)
}

func TestEnsure(t *testing.T) {
	catalogJSON := func(t *testing.T) []byte {
		return []byte(testutil.CatalogJSON(t, map[string]string{"rust": "target/\n"}))
	}

	cases := []struct {
		name        string
		seed        bool
		force       bool
		wantState   State
		wantFetches int
		wantOut     string
	}{
		{
			name:        "missing_cache_forces_update_with_warning",
			wantState:   StateRecovered,
			wantFetches: 1,
			wantOut:     "Warning: Cache directory or ignore file not found, attempting update.\nInfo: Update successful\n",
		},
		{
			name:        "existing_cache_used",
			seed:        true,
			wantState:   StateCached,
			wantFetches: 0,
			wantOut:     "Info: You are using cached results, pass '-u' to update the cache\n\n",
		},
		{
			name:        "explicit_update",
			seed:        true,
			force:       true,
			wantState:   StateUpdated,
			wantFetches: 1,
			wantOut:     "Info: Update successful\n",
		},
		{
			name:        "explicit_update_without_cache",
			force:       true,
			wantState:   StateUpdated,
			wantFetches: 1,
			wantOut:     "Info: Update successful\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore(t)
			if tc.seed {
				require.NoError(t, s.Replace(catalogJSON(t)))
			}
			f := &fakeFetcher{body: catalogJSON(t)}
			var out bytes.Buffer

			state, err := New(s, f, &out).Ensure(context.Background(), tc.force)
			require.NoError(t, err)
			assert.Equal(t, tc.wantState, state)
			assert.Equal(t, tc.wantFetches, f.calls)
			assert.Equal(t, tc.wantOut, out.String())

			_, err = s.Load()
			assert.NoError(t, err)
		})
	}
}

func TestEnsureMissingCacheFetchFails(t *testing.T) {
	s := newStore(t)
	f := &fakeFetcher{err: errors.New("dial tcp: no route to host")}
	var out bytes.Buffer

	state, err := New(s, f, &out).Ensure(context.Background(), false)
	require.Error(t, err)
	assert.Equal(t, StateRecovered, state)
	assert.Contains(t, out.String(), "Warning: Cache directory or ignore file not found")
	assert.NotContains(t, out.String(), "Update successful")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "cached", StateCached.String())
	assert.Equal(t, "updated", StateUpdated.String())
	assert.Equal(t, "recovered", StateRecovered.String())
	assert.Equal(t, "unknown", State(42).String())
}
