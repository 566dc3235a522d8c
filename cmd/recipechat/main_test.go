package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recipechat/internal/api"
	"recipechat/internal/recipe"
	"recipechat/internal/scrape"
	"recipechat/internal/testsupport"
)

type cliTestEnv struct {
	configPath string
	stateDir   string
	page       *testsupport.RecipeServer
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("RECIPECHAT_API_TOKEN", "")

	stateDir := filepath.Join(base, "state")
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, stateDir, filepath.Join(base, "logs"))

	return &cliTestEnv{
		configPath: configPath,
		stateDir:   stateDir,
		page:       testsupport.ServeRecipePage(t, testsupport.PancakePage),
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path, stateDir, logDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nstate_dir = %q\nlog_dir = %q\napi_bind = \"127.0.0.1:0\"\n\n[fetch]\ntimeout_seconds = 5\n\n[logging]\nlevel = \"error\"\n",
		stateDir,
		logDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "LLM provider: none")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestParseCommandPrintsTables(t *testing.T) {
	env := setupCLITestEnv(t)
	url := env.page.URL + "/pancakes"

	out, _, err := runCLI(t, []string{"parse", url}, env.configPath)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	requireContains(t, out, "Pancakes")
	requireContains(t, out, "Ingredient")
	requireContains(t, out, "flour")
	requireContains(t, out, "Whisk the flour and sugar.")

	out, _, err = runCLI(t, []string{"parse", "--json", url}, env.configPath)
	if err != nil {
		t.Fatalf("parse --json: %v", err)
	}
	var r recipe.Recipe
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, out)
	}
	if r.SourceURL != url || len(r.Ingredients) != 4 || len(r.Steps) != 3 {
		t.Fatalf("unexpected recipe %+v", r)
	}
	if hits := env.page.Hits(); hits != 1 {
		t.Fatalf("expected second parse to come from cache, page hits = %d", hits)
	}
}

func TestAskCommandKeepsCursorBetweenQueries(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"ask", env.page.URL, "start", "next", "how much milk?"}, env.configPath)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	requireContains(t, out, "Step 1: Whisk the flour and sugar.")
	requireContains(t, out, "Step 2: Add the milk and eggs and stir until smooth.")
	requireContains(t, out, "You need 1 cup of milk.")
}

func TestAskCommandReportsParseFailure(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"ask", env.page.URL + "/missing", "next"}, env.configPath)
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if !strings.HasPrefix(err.Error(), "Error parsing recipe: ") {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestCacheCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	url := env.page.URL + "/pancakes"

	out, _, err := runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, "Recipe cache is empty")

	if _, _, err := runCLI(t, []string{"parse", url}, env.configPath); err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, _, err = runCLI(t, []string{"cache", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	requireContains(t, out, url)
	requireContains(t, out, "Pancakes")

	out, _, err = runCLI(t, []string{"cache", "remove", url}, env.configPath)
	if err != nil {
		t.Fatalf("cache remove: %v", err)
	}
	requireContains(t, out, "Removed "+url)

	out, _, err = runCLI(t, []string{"cache", "remove", url}, env.configPath)
	if err != nil {
		t.Fatalf("cache remove again: %v", err)
	}
	requireContains(t, out, "No cached recipe")

	out, _, err = runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed 0 cached recipe(s)")
}

func TestRunChatStopsOnQuitWord(t *testing.T) {
	page := testsupport.ServeRecipePage(t, testsupport.PancakePage)
	service := api.NewService(scrape.New(scrape.Options{}), nil, nil, nil)

	in := strings.NewReader(page.URL + "\nnext\n\nQUIT\nnext\n")
	var out bytes.Buffer
	if err := runChat(context.Background(), service, in, &out, "", false); err != nil {
		t.Fatalf("runChat: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "Step 2: ") {
		t.Fatalf("expected a single step 2 answer, got %q", out.String())
	}
}

func TestRunChatRequiresRecipe(t *testing.T) {
	page := testsupport.ServeRecipePage(t, `<html><body>nothing here</body></html>`)
	service := api.NewService(scrape.New(scrape.Options{}), nil, nil, nil)

	var out bytes.Buffer
	err := runChat(context.Background(), service, strings.NewReader("next\n"), &out, page.URL, false)
	if err == nil || !strings.HasPrefix(err.Error(), "Error parsing recipe: ") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
