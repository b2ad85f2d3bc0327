package util

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBaseHref(t *testing.T) {
	tests := map[string]string{
		"index.html":           "",
		"kategorie/holz.html":  "../",
		"produkt/a/index.html": "../../",
		"a/b/c/d.html":         "../../../",
	}
	for in, want := range tests {
		assert.Equal(t, want, ComputeBaseHref(in), in)
	}
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "kategorie", "holz.html")

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = EnsureParentDir(file)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	require.NoError(t, EnsureParentDir(file))

	info, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
