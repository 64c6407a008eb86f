package devenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	plain, err := ResolvePath("some/dir")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "some/dir", plain)

	root, err := GetWorkspaceRoot()
	if err != nil {
		t.Fatal(err)
	}

	resolved, err := ResolvePath("<dev_state>/resty/mvic")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, filepath.Join(root, "dev", ".state", "resty", "mvic"), resolved)
}
