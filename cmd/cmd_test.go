package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/detector"
	"github.com/ThatOtherAndrew/Handcloud/internal/gesture"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute %v: %v", args, err)
	}
	return out.String()
}

func TestClassifyScenario(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "frames.ndjson")

	var buf bytes.Buffer
	for _, step := range []struct {
		at time.Duration
		g  gesture.Gesture
	}{
		{0, gesture.None},
		{100 * time.Millisecond, gesture.OpenPalm},
		{150 * time.Millisecond, gesture.OpenPalm},
		{700 * time.Millisecond, gesture.ThumbsUp},
	} {
		line, err := detector.Encode(detector.Frame{At: step.at, Stamped: true, Skeleton: gesture.Synthesize(step.g)})
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(input, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out := execute(t, "classify", "--config", filepath.Join(dir, "settings.json"), "--input", input)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 2 actions and a summary, got:\n%s", out)
	}
	want := []string{
		"100ms  open_palm      -> pulse",
		"700ms  thumbs_up      -> reset",
	}
	for i, w := range want {
		if strings.TrimSpace(lines[i]) != w {
			t.Errorf("Line %d: expected %q, got %q", i, w, strings.TrimSpace(lines[i]))
		}
	}
	if !strings.HasPrefix(lines[2], "2 action(s); template galaxy") {
		t.Errorf("Unexpected summary %q", lines[2])
	}
}

func TestTemplatesListing(t *testing.T) {
	out := execute(t, "templates")
	for _, want := range []string{"galaxy", "phoenix", "fireworks (animated)", "aurora", "#00ff87", "thumbs_up"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected listing to mention %q", want)
		}
	}
}

func TestCompleteTemplates(t *testing.T) {
	names, _ := completeTemplates(rootCmd, nil, "s")
	want := []string{"saturn", "spiral", "sphere"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, names)
	}
}
