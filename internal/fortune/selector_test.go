package fortune

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/fortuna/internal/apperr"
	"github.com/starford/fortuna/internal/storage"
	"github.com/starford/fortuna/internal/testutil"
)

// sequence returns an IndexFunc replaying idx in order.
func sequence(t *testing.T, idx ...int) IndexFunc {
	t.Helper()
	calls := 0
	return func(n int) int {
		if calls >= len(idx) {
			t.Fatalf("unexpected index call #%d (n=%d)", calls+1, n)
		}
		v := idx[calls]
		calls++
		if v >= n {
			t.Fatalf("index %d out of range [0,%d)", v, n)
		}
		return v
	}
}

func TestPickEntry_BackwardScanFromTail(t *testing.T) {
	entries := []string{"a", "", "b", ""}
	assert.Equal(t, "b", pickEntry(entries, 3))
	assert.Equal(t, "b", pickEntry(entries, 1))
	assert.Equal(t, "b", pickEntry(entries, 2))
}

func TestPickEntry_ClosestToEndWins(t *testing.T) {
	entries := []string{"first", "middle", "last", "\n"}
	assert.Equal(t, "last", pickEntry(entries, 3))
}

func TestPickEntry_OnlyFirstHasContent(t *testing.T) {
	entries := []string{"the only quote", "", "\n", ""}
	assert.Equal(t, "the only quote", pickEntry(entries, 2))
}

func TestPickEntry_AllDegenerateReturnsFirst(t *testing.T) {
	assert.Equal(t, "x", pickEntry([]string{"x", "", "\n"}, 1))
	assert.Equal(t, "", pickEntry([]string{""}, 0))
}

func TestPickFromOneFile(t *testing.T) {
	_, store := testutil.Corpus(t,
		testutil.File{Name: "a", Content: "A1\n%\nA2\n%\n"},
		testutil.File{Name: "b", Content: "B1\n%\nB2\n%\nB3"},
	)
	svc := NewService(store, WithIndexFunc(sequence(t, 1, 2)))

	got, err := svc.PickFromOneFile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "B3", got)
}

func TestPickFromOneFile_TrailingDelimiterFallsBack(t *testing.T) {
	_, store := testutil.Corpus(t,
		testutil.File{Name: "a", Content: "A1\n%\nA2\n%\n"},
	)
	svc := NewService(store, WithIndexFunc(sequence(t, 0, 2)))

	got, err := svc.PickFromOneFile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A2", got)
}

func TestPickFromOneFile_EmptyFile(t *testing.T) {
	_, store := testutil.Corpus(t, testutil.File{Name: "empty", Content: ""})
	svc := NewService(store)

	got, err := svc.PickFromOneFile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestPickFromOneFile_AlwaysReturnsWithRealRandomness(t *testing.T) {
	_, store := testutil.Corpus(t,
		testutil.File{Name: "a", Content: "one\n%\ntwo\n%\n"},
		testutil.File{Name: "b", Content: "\n%\n\n%\n"},
		testutil.File{Name: "c", Content: "single"},
		testutil.File{Name: "d", Content: ""},
	)
	svc := NewService(store)
	for i := 0; i < 200; i++ {
		_, err := svc.PickFromOneFile(context.Background())
		require.NoError(t, err)
	}
}

func TestPickFromOneFile_MissingDirectory(t *testing.T) {
	svc := NewService(storage.NewFS(filepath.Join(t.TempDir(), "nope")))
	_, err := svc.PickFromOneFile(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrNoDirectory))
}

func TestPickFromOneFile_EmptyDirectory(t *testing.T) {
	svc := NewService(storage.NewFS(t.TempDir()))
	_, err := svc.PickFromOneFile(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrEmptyCorpus))
}

func TestPickFromAllFiles_FlattensInFileOrder(t *testing.T) {
	_, store := testutil.Corpus(t,
		testutil.File{Name: "a", Content: "A1\n%\nA2"},
		testutil.File{Name: "sub/b", Content: "B1\n%\n"},
	)
	// Entries: A1, A2, B1, "".
	svc := NewService(store, WithIndexFunc(sequence(t, 2)))
	got, err := svc.PickFromAllFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "B1", got)
}

func TestPickFromAllFiles_FallbackReturnsWholeFile(t *testing.T) {
	_, store := testutil.Corpus(t,
		testutil.File{Name: "a", Content: "A1\n%\nA2"},
		testutil.File{Name: "sub/b", Content: "B1\n%\n"},
	)
	svc := NewService(store, WithIndexFunc(sequence(t, 3)))
	got, err := svc.PickFromAllFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "B1\n%\n", got)
}

func TestPickFromAllFiles_FallbackToFirstFile(t *testing.T) {
	_, store := testutil.Corpus(t,
		testutil.File{Name: "a", Content: "Quote\n%\n"},
		testutil.File{Name: "b", Content: ""},
	)
	// Entries: "Quote", "", "".
	svc := NewService(store, WithIndexFunc(sequence(t, 2)))
	got, err := svc.PickFromAllFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Quote\n%\n", got)
}

func TestPickFromAllFiles_NothingAvailable(t *testing.T) {
	_, store := testutil.Corpus(t,
		testutil.File{Name: "a", Content: ""},
		testutil.File{Name: "b", Content: "\n"},
	)
	svc := NewService(store, WithIndexFunc(sequence(t, 1)))
	got, err := svc.PickFromAllFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, NoQuoteMessage, got)
}

func TestPickFromAllFiles_Errors(t *testing.T) {
	svc := NewService(storage.NewFS(filepath.Join(t.TempDir(), "nope")))
	_, err := svc.PickFromAllFiles(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrNoDirectory))

	svc = NewService(storage.NewFS(t.TempDir()))
	_, err = svc.PickFromAllFiles(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrEmptyCorpus))
}
