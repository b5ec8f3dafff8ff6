package specset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KromDaniel/lexgen/generator"
)

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.yaml")
	yamlDoc := "tokens:\n" +
		"  - name: KEYWORD_IF\n" +
		"    pattern: \"if\"\n" +
		"  - name: PLUS\n" +
		"    pattern: \"+\"\n"
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	specs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("got %d specs, want 2", len(specs))
	}
	if specs[0].Name != "KEYWORD_IF" || specs[1].Name != "PLUS" {
		t.Errorf("declaration order not preserved: %+v", specs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCLikePredefinedBuildsSuccessfully(t *testing.T) {
	g := generator.New()
	for _, sp := range CLikePredefined() {
		g.AddToken(sp.Name, sp.Pattern)
	}
	if err := g.Build(nil); err != nil {
		t.Fatalf("Build() on predefined set: %v", err)
	}
	if !g.Accepts("if x1 = 3;", nil) {
		t.Error("expected predefined set to accept a simple C-like statement")
	}
}

func TestIdentifierPatternAcceptsMixedCase(t *testing.T) {
	g := generator.New()
	g.AddToken("ID", identifierPattern())
	if err := g.Build(nil); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !g.Accepts("myVar1", nil) {
		t.Error("expected identifier pattern to accept \"myVar1\"")
	}
	if g.Accepts("1myVar", nil) {
		t.Error("expected identifier pattern to reject a leading digit")
	}
}
