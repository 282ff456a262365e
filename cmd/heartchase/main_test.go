package main

import "testing"

func TestGlobalFlagsRegistered(t *testing.T) {
	for _, name := range []string{"fps", "seed", "db", "config", "difficulty"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s not registered", name)
		}
	}
}

func TestServeInheritsConfigFlags(t *testing.T) {
	// serve must accept --config and --difficulty so SSH sessions can run a
	// custom tuning, not just the embedded defaults.
	for _, name := range []string{"config", "difficulty"} {
		if serveCmd.InheritedFlags().Lookup(name) == nil {
			t.Errorf("serve does not inherit --%s", name)
		}
	}
	if playCmd.Flags().Lookup("no-sound") == nil {
		t.Error("play is missing --no-sound")
	}
}
