package cmd

import (
	"fmt"

	"github.com/mvidal/launchbox/internal/config"
	"github.com/mvidal/launchbox/internal/desktop"
	"github.com/mvidal/launchbox/internal/reconcile"
)

// configPath returns the config file location, honoring --config.
func configPath() string {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return path
}

// openStore loads the config store at the effective config path.
func openStore() *config.Store {
	return config.NewStore(configPath())
}

// newReconciler wires a reconciler over the default scanner and the store.
func newReconciler(store *config.Store) *reconcile.Reconciler {
	return reconcile.New(desktop.NewScanner(), store)
}

// resolveAppCommand looks up a configured application's launch command by
// name, within one category or across all of them.
func resolveAppCommand(store *config.Store, name, category string) (string, error) {
	if category != "" {
		apps, ok := store.Category(category)
		if !ok {
			return "", fmt.Errorf("category %q not found", category)
		}
		for _, app := range apps {
			if app.Name == name {
				return app.Cmd, nil
			}
		}
		return "", fmt.Errorf("application %q not found in category %q", name, category)
	}
	for _, apps := range store.Applications() {
		for _, app := range apps {
			if app.Name == name {
				return app.Cmd, nil
			}
		}
	}
	return "", fmt.Errorf("application %q not found", name)
}

// Parameter extraction helpers for MCP tool arguments.

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}
