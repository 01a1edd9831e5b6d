package console

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEval(t *testing.T) {
	s := NewSession(nil)

	ok, msg := s.Eval("create_line -name l1 -coord_1 {0,0} -coord_2 {5,2}")
	assert.True(t, ok)
	assert.Equal(t, "Line 'l1' created from (0,0) to (5,2).", msg)

	ok, msg = s.Eval("create_line -name")
	assert.False(t, ok)
	assert.Equal(t, "Expected value after flag '-name'.", msg)

	ok, msg = s.Eval("nonsense -a b")
	assert.False(t, ok)
	assert.Equal(t, "Unknown command 'nonsense'.", msg)
}

func TestSessionStatePersistsAcrossEvals(t *testing.T) {
	s := NewSession(nil)
	ok, _ := s.Eval("create_square -name sq -coord_1 {0,0} -coord_2 {2,2}")
	require.True(t, ok)

	ok, msg := s.Eval("create_triangle -name sq -coord_1 {0,0} -coord_2 {3,0} -coord_3 {0,4}")
	assert.False(t, ok)
	assert.Equal(t, "An object named 'sq' already exists. Choose a unique name.", msg)

	assert.Equal(t, []string{"sq"}, s.ObjectNames())
	assert.Equal(t, 1, s.ObjectCount())
}

func TestSessionRunScript(t *testing.T) {
	s := NewSession(nil)
	path := filepath.Join(t.TempDir(), "scene.od")
	script := "# build a small scene\n" +
		"create_line -name l1 -coord_1 {0,0} -coord_2 {4,0}\n" +
		"create_square -name s1 -coord_1 {1,1} -coord_2 {3,3}\n" +
		"connect -object_name_1 l1 -object_name_2 s1\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	ok, msg := s.RunScript(path)
	assert.True(t, ok, msg)
	assert.Equal(t, "Script executed: 3 successes, 0 failures.", msg)
	assert.Equal(t, []string{"l1", "s1"}, s.ObjectNames())
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("# comment"))
	assert.True(t, IsBlank("   # indented"))
	assert.False(t, IsBlank("create_line -name l"))
}
