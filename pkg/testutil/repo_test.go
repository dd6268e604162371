package testutil

import (
	"testing"

	"github.com/arthur-debert/zat/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestRepo(t *testing.T) {
	repo := NewMemoryRepo(t, "/repo").
		WithVariableList(t,
			ValueVar("project", "Project name", Filter{Name: "python", Filter: "Snake"}).WithDefault("app"),
			ChoiceVar("readme", "README", Choice{Display: "Long", Value: "long"}),
			ValueVar("summary", "Summary").WithScopes(ScopeJS{Choice: "readme", Value: "long"}),
		).
		WithFile(t, "src/$project$.py.tmpl", "x").
		WithDir(t, "empty")

	vars, err := templates.NewVariableProviderWithFS(repo.FS, "").Load(repo.Root)
	require.NoError(t, err)
	require.Len(t, vars, 3)

	assert.Equal(t, templates.FilterSnake, vars[0].Filters[0].Filter)
	def, ok := vars[0].Default()
	assert.True(t, ok)
	assert.Equal(t, "app", def)
	assert.Equal(t, templates.ChoiceVariable, vars[1].Kind())
	assert.Equal(t, templates.IncludeChoiceValue{Choice: "readme", Value: "long"}, vars[2].Scopes[0])

	AssertFileContent(t, repo.FS, "/repo/template/src/$project$.py.tmpl", "x")
	AssertDirExists(t, repo.FS, "/repo/template/empty")
	AssertMissing(t, repo.FS, "/repo/shell-hook.zat-exec")
}
