package git

import (
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testTimeout = 10 * time.Second

// checkout is a scratch git repository with no commits.
type checkout struct {
	t   *testing.T
	dir string
}

func newCheckout(t *testing.T, remotes map[string]string) *checkout {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping test that shells out to git")
	}

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	c := &checkout{t: t, dir: dir}
	c.git("init", "-q", "-b", "main")
	for name, url := range remotes {
		c.git("remote", "add", name, url)
	}
	return c
}

func (c *checkout) git(args ...string) {
	c.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = c.dir
	out, err := cmd.CombinedOutput()
	require.NoError(c.t, err, "git %v: %s", args, out)
}

func (c *checkout) client(subdir ...string) Git {
	return New(filepath.Join(append([]string{c.dir}, subdir...)...), testTimeout)
}
