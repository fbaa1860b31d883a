package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/gift-sleigh/internal/application"
	"github.com/eugenenazirov/gift-sleigh/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestIntegrationFlow(t *testing.T) {
	for _, key := range []string{"SLEIGH_CAPACITY", "SLEIGH_POLICY", "SLEIGH_SCENARIO_FILE", "SLEIGH_SANTA_NAME"} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	scenarioPath := writeFile(t, dir, "scenario.yaml", `gifts:
  - name: puzzle
    weight: 2
    min_age: 3
    category: toy
  - name: scooter
    weight: 5
    min_age: 1
    category: outdoor
  - name: piano
    weight: 50
    min_age: 6
    category: music
recipients:
  - name: Ana
    age: 4
    behavior: good
  - name: Bo
    age: 9
    behavior: bad
  - name: Cy
    age: 0
    behavior: good
`)
	configPath := writeFile(t, dir, "sleigh.yaml", "santa_name: Father Christmas\ncapacity: 10\nscenario_file: "+scenarioPath+"\n")

	cfg, err := config.Load(&config.CLIOverrides{ConfigFile: configPath})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	var out bytes.Buffer
	app, err := application.New(cfg, zaptest.NewLogger(t), &out)
	if err != nil {
		t.Fatalf("new application: %v", err)
	}

	summary, err := app.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if summary.Loaded != 2 || summary.LoadRejected != 1 {
		t.Fatalf("unexpected load results %+v", summary)
	}
	if summary.Awarded != 1 || summary.Rejected != 1 || summary.NoGift != 1 {
		t.Fatalf("unexpected visit results %+v", summary)
	}
	if app.Bag().TotalWeight() != 5 {
		t.Fatalf("expected remaining weight 5, got %v", app.Bag().TotalWeight())
	}
	if !strings.Contains(out.String(), "Father Christmas gives Ana a puzzle") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
