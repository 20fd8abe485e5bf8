package di

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"tabsearch.dev/cli/internal/application/services"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		ConfigPath:  filepath.Join(t.TempDir(), "config.toml"),
		Interactive: true,
	}
}

func TestNewContainer_BuiltinInventory(t *testing.T) {
	c, err := NewContainer(context.Background(), testOptions(t))
	require.NoError(t, err)
	defer c.Shutdown()

	assert.Nil(t, c.FileRegistry)
	assert.Nil(t, c.Watcher)
	assert.Nil(t, c.Reloads())
	assert.NotEmpty(t, c.Registry.Descriptors())
	assert.False(t, c.Host.SidebarVisible(), "sidebar starts hidden by default")

	view := c.Switcher.View("")
	assert.Equal(t, services.ModeBrowse, view.Mode)
	assert.NotEmpty(t, view.Items)
}

func TestNewContainer_FlagOverrides(t *testing.T) {
	opts := testOptions(t)
	opts.Mode = "SCULPT"
	opts.ObjectType = "ARMATURE"
	opts.Addons = []string{"rigify"}
	opts.AddonsSet = true
	opts.LogLevel = "warn"

	c, err := NewContainer(context.Background(), opts)
	require.NoError(t, err)
	defer c.Shutdown()

	ctx := c.Context.Current()
	assert.Equal(t, "SCULPT", ctx.Mode)
	assert.Equal(t, "ARMATURE", ctx.ObjectType)
	assert.Equal(t, []string{"rigify"}, ctx.Addons)
	assert.Equal(t, "warn", c.Config.Log.Level)
}

func TestNewContainer_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	inventoryPath := filepath.Join(dir, "inventory.yaml")
	require.NoError(t, os.WriteFile(inventoryPath, []byte("panels:\n  - id: PT_A\n    category: Rigging\n"), 0o644))

	configPath := filepath.Join(dir, "config.toml")
	config := "[inventory]\npath = \"" + filepath.ToSlash(inventoryPath) + "\"\n\n[sidebar]\nstart_hidden = false\n"
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	c, err := NewContainer(context.Background(), Options{ConfigPath: configPath, Interactive: true})
	require.NoError(t, err)
	defer c.Shutdown()

	require.NotNil(t, c.FileRegistry)
	assert.True(t, c.Host.SidebarVisible())
	assert.Equal(t, "Rigging", c.Switcher.View("").Items[0].Text)
}

func TestNewContainer_WatchStartsWatcher(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	inventoryPath := filepath.Join(dir, "inventory.yaml")
	require.NoError(t, os.WriteFile(inventoryPath, []byte("panels:\n  - id: PT_A\n    category: Item\n"), 0o644))

	opts := testOptions(t)
	opts.Inventory = inventoryPath
	opts.Watch = true

	c, err := NewContainer(context.Background(), opts)
	require.NoError(t, err)

	assert.NotNil(t, c.Watcher)
	assert.NotNil(t, c.Reloads())
	require.NoError(t, c.Shutdown())
}

func TestNewContainer_WatchWithoutInventoryFails(t *testing.T) {
	opts := testOptions(t)
	opts.Watch = true

	_, err := NewContainer(context.Background(), opts)

	assert.Error(t, err)
}

func TestNewContainer_InvalidInventory(t *testing.T) {
	inventoryPath := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(inventoryPath, []byte("panels: [\n"), 0o644))

	opts := testOptions(t)
	opts.Inventory = inventoryPath

	_, err := NewContainer(context.Background(), opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize components")
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TABSEARCH_MODE", "EDIT_MESH")
	t.Setenv("TABSEARCH_OBJECT_TYPE", "CURVE")

	opts := testOptions(t)
	opts.Mode = "SCULPT"

	cfg, err := LoadConfig(opts)
	require.NoError(t, err)

	assert.Equal(t, "SCULPT", cfg.Context.Mode)
	assert.Equal(t, "CURVE", cfg.Context.ObjectType)
}

func TestLoadConfig_ExplicitEmptyAddons(t *testing.T) {
	t.Setenv("TABSEARCH_ADDONS", "rigify,measureit")

	opts := testOptions(t)
	opts.AddonsSet = true

	cfg, err := LoadConfig(opts)
	require.NoError(t, err)

	assert.Empty(t, cfg.Context.Addons)
}

func TestLoadConfig_InvalidEnvironmentLevel(t *testing.T) {
	t.Setenv("TABSEARCH_LOG_LEVEL", "loud")

	_, err := LoadConfig(testOptions(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
