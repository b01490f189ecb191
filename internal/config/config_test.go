package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("INVENTORY_FILE", "")
	t.Setenv("REORDER_QUANTITY", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("APP_ENV", "")

	cfg, envLoaded := Load()

	assert.False(t, envLoaded)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultInventoryFile, cfg.InventoryFile)
	assert.Equal(t, DefaultReorderQuantity, cfg.ReorderQuantity)
	assert.Equal(t, DefaultCORSOrigins, cfg.CORSOrigins)
	assert.Equal(t, "production", cfg.Env)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("INVENTORY_FILE", "/data/stock.json")
	t.Setenv("REORDER_QUANTITY", "25")

	cfg, _ := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/data/stock.json", cfg.InventoryFile)
	assert.Equal(t, 25, cfg.ReorderQuantity)
}

func TestLoad_InvalidReorderQuantityFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, v := range []string{"abc", "0", "-5"} {
		t.Setenv("REORDER_QUANTITY", v)
		cfg, _ := Load()
		assert.Equal(t, DefaultReorderQuantity, cfg.ReorderQuantity, "REORDER_QUANTITY=%s", v)
	}
}
