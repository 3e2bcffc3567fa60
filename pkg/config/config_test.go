package config_test

import (
	"testing"

	"shipscout/pkg/config"
	"shipscout/pkg/detector"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Targets) != 0 {
		t.Fatalf("fresh config should have no targets: %v", cfg.Targets)
	}

	cfg.SetTarget("/srv/app", config.TargetConfig{
		ProjectPath: "/srv/app",
		Detection: &detector.Detection{
			Runtime:        "node",
			Frameworks:     []string{"Next.js", "React"},
			InstallCommand: "npm install",
		},
	})
	if err := cfg.SaveConfig(); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	reloaded, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig after save: %v", err)
	}
	target, ok := reloaded.GetTarget("/srv/app")
	if !ok {
		t.Fatal("saved target not found")
	}
	if target.Detection == nil || target.Detection.Runtime != "node" {
		t.Errorf("reloaded detection = %+v", target.Detection)
	}
	if got := target.Detection.Frameworks; len(got) != 2 || got[0] != "Next.js" {
		t.Errorf("reloaded frameworks = %v", got)
	}
}

func TestApplyOverrides(t *testing.T) {
	target := config.TargetConfig{
		Overrides: &config.CommandOverrides{
			BuildCommand: "make build",
		},
	}
	in := detector.Detection{
		InstallCommand: "npm install",
		BuildCommand:   "npm run build",
		DevCommand:     "npm run dev",
	}

	out := target.Apply(in)
	if out.BuildCommand != "make build" {
		t.Errorf("BuildCommand = %q", out.BuildCommand)
	}
	if out.InstallCommand != "npm install" || out.DevCommand != "npm run dev" {
		t.Errorf("untouched commands changed: %+v", out)
	}
}
