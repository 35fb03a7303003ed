package decorators

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_MatchesSpecNames(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"classmethod"}, r.ClassMethodDecorators())
	assert.Contains(t, r.ClassPropertyDecorators(), "util.classproperty")
	assert.Contains(t, r.InstancePropertyDecorators(), "property")
}

func TestLoadRegistry_OverridesOnlyGivenKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decorators.yaml")
	contents := "class_method_decorators: [classmethod, util.mockable_classmethod]\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	r, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"classmethod", "util.mockable_classmethod"}, r.ClassMethodDecorators())
	assert.Equal(t, DefaultRegistry().InstancePropertyDecorators(), r.InstancePropertyDecorators())
}

func TestLoadRegistry_ErrorsOnMissingFile(t *testing.T) {
	_, err := LoadRegistry("/nonexistent/decorators.yaml")
	assert.Error(t, err)
}
