package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name"`
	Stack int    `json:"stack"`
}

func TestValidateSnapshot(t *testing.T) {
	a := assert.New(t)

	orig := dir
	dir = t.TempDir()
	defer func() {
		dir = orig
	}()

	ValidateSnapshot(t, sample{Name: "Alice", Stack: 500}, 0)

	b, err := os.ReadFile(filepath.Join(dir, "snapshot.TestValidateSnapshot-0.json"))
	a.NoError(err)
	a.JSONEq(`{"name":"Alice","stack":500}`, string(b))

	// a second call in the same test gets its own file
	ValidateSnapshot(t, sample{Name: "Bob"}, 0)
	_, err = os.Stat(filepath.Join(dir, "snapshot.TestValidateSnapshot-1.json"))
	a.NoError(err)

	// replaying the first snapshot compares against the stored file
	funcCount["snapshot.TestValidateSnapshot"] = 0
	ValidateSnapshot(t, sample{Name: "Alice", Stack: 500}, 0)
}
