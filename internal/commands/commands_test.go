package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"shnippet/internal/catalog"
	"shnippet/internal/config"
	"shnippet/internal/runner"
	"shnippet/internal/ui"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func newTestCommands(t *testing.T) (*Commands, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := New(catalog.NewStore(t.TempDir()), config.Config{})
	c.Streams = runner.Streams{Stdout: &out, Stderr: &out}
	c.Prompt = func(ui.NameValidator) (ui.Result, error) {
		t.Fatal("unexpected prompt")
		return ui.Result{}, nil
	}
	c.Editor = func(context.Context, string) error {
		t.Fatal("unexpected editor")
		return nil
	}
	return c, &out
}

// writingEditor returns an editor stub that replaces the file with content.
func writingEditor(content string) func(context.Context, string) error {
	return func(_ context.Context, path string) error {
		return os.WriteFile(path, []byte(content), 0600)
	}
}

func load(t *testing.T, c *Commands) catalog.Catalog {
	t.Helper()
	cat, err := c.Store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cat
}

func TestListEmpty(t *testing.T) {
	c, out := newTestCommands(t)
	if err := c.List(context.Background(), catalog.New()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if !strings.Contains(out.String(), "No shnippets found") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestListAlignsNames(t *testing.T) {
	c, out := newTestCommands(t)
	cat := catalog.New(
		catalog.Entry{Name: "build", Description: "Builds the project"},
		catalog.Entry{Name: "t", Description: ""},
	)
	if err := c.List(context.Background(), cat); err != nil {
		t.Fatalf("List: %v", err)
	}
	want := "build  Builds the project\nt      (no description)\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestNewCreatesShnippet(t *testing.T) {
	c, out := newTestCommands(t)
	_ = c.Store.Create(catalog.Entry{Name: "existing"}, []byte("true\n"))
	cat := load(t, c)

	var validate ui.NameValidator
	c.Prompt = func(v ui.NameValidator) (ui.Result, error) {
		validate = v
		return ui.Result{Name: "build", Description: "Builds the project"}, nil
	}
	var seeded string
	c.Editor = func(_ context.Context, path string) error {
		data, _ := os.ReadFile(path)
		seeded = string(data)
		return os.WriteFile(path, []byte("#!/bin/sh\nmake\n"), 0600)
	}

	if err := c.New(context.Background(), cat); err != nil {
		t.Fatalf("New: %v", err)
	}
	if !strings.Contains(seeded, "# Builds the project") {
		t.Errorf("editor was seeded with %q", seeded)
	}
	if !errors.Is(validate("existing"), catalog.ErrExists) {
		t.Error("validator accepted an existing name")
	}
	if !errors.Is(validate("list"), catalog.ErrInvalidName) {
		t.Error("validator accepted a reserved name")
	}
	if validate("fresh") != nil {
		t.Error("validator rejected a valid name")
	}

	content, err := c.Store.Content("build")
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if string(content) != "#!/bin/sh\nmake\n" {
		t.Fatalf("content = %q", content)
	}
	if e, _ := load(t, c).Lookup("build"); e.Description != "Builds the project" {
		t.Fatalf("description = %q", e.Description)
	}
	if !strings.Contains(out.String(), "Created shnippet 'build'") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestNewAbortedByForm(t *testing.T) {
	c, _ := newTestCommands(t)
	c.Prompt = func(ui.NameValidator) (ui.Result, error) { return ui.Result{}, ui.ErrAborted }
	if err := c.New(context.Background(), catalog.New()); !errors.Is(err, ui.ErrAborted) {
		t.Fatalf("New error = %v, want ErrAborted", err)
	}
}

func TestNewUnchangedTemplateIsAbort(t *testing.T) {
	c, _ := newTestCommands(t)
	c.Prompt = func(ui.NameValidator) (ui.Result, error) { return ui.Result{Name: "x"}, nil }
	c.Editor = func(context.Context, string) error { return nil }

	if err := c.New(context.Background(), catalog.New()); !errors.Is(err, ui.ErrAborted) {
		t.Fatalf("New error = %v, want ErrAborted", err)
	}
	if load(t, c).Len() != 0 {
		t.Fatal("aborted shnippet was saved")
	}
}

func TestNewEditorFailure(t *testing.T) {
	c, _ := newTestCommands(t)
	c.Prompt = func(ui.NameValidator) (ui.Result, error) { return ui.Result{Name: "x"}, nil }
	c.Editor = func(context.Context, string) error {
		return &runner.ExitError{Desc: "editor", Code: 3}
	}
	err := c.New(context.Background(), catalog.New())
	if err == nil {
		t.Fatal("expected error")
	}
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		t.Fatal("editor exit status leaked into the returned error chain")
	}
}

func TestEdit(t *testing.T) {
	c, out := newTestCommands(t)
	_ = c.Store.Create(catalog.Entry{Name: "build", Description: "Builds"}, []byte("make\n"))
	cat := load(t, c)

	c.Editor = writingEditor("make all\n")
	if err := c.Edit(context.Background(), cat, "build"); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	content, _ := c.Store.Content("build")
	if string(content) != "make all\n" {
		t.Fatalf("content = %q", content)
	}
	if e, _ := load(t, c).Lookup("build"); e.Description != "Builds" {
		t.Fatalf("description changed to %q", e.Description)
	}

	out.Reset()
	c.Editor = func(context.Context, string) error { return nil }
	if err := c.Edit(context.Background(), load(t, c), "build"); err != nil {
		t.Fatalf("Edit without changes: %v", err)
	}
	if !strings.Contains(out.String(), "No changes") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestEditUnknown(t *testing.T) {
	c, _ := newTestCommands(t)
	if err := c.Edit(context.Background(), catalog.New(), "ghost"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Edit error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	c, out := newTestCommands(t)
	_ = c.Store.Create(catalog.Entry{Name: "build"}, []byte("make\n"))
	_ = c.Store.Create(catalog.Entry{Name: "test"}, []byte("go test\n"))

	if err := c.Delete(context.Background(), load(t, c), "build"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := load(t, c).Names(); !reflect.DeepEqual(got, []string{"test"}) {
		t.Fatalf("names = %v", got)
	}
	if !strings.Contains(out.String(), "Deleted shnippet 'build'") {
		t.Fatalf("output = %q", out.String())
	}
	if err := c.Delete(context.Background(), load(t, c), "build"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("second Delete error = %v", err)
	}
}

func TestExec(t *testing.T) {
	c, _ := newTestCommands(t)
	_ = c.Store.Create(catalog.Entry{Name: "build"}, []byte("make\n"))

	var gotPath string
	var gotArgs []string
	c.Script = func(_ context.Context, path string, args []string) error {
		gotPath, gotArgs = path, args
		return &runner.ExitError{Desc: "shnippet", Code: 5}
	}

	err := c.Exec(context.Background(), "build", []string{"-j", "4"})
	var exitErr *runner.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 5 {
		t.Fatalf("Exec error = %v, want exit status 5", err)
	}
	want, _ := c.Store.ScriptPath("build")
	if gotPath != want || !reflect.DeepEqual(gotArgs, []string{"-j", "4"}) {
		t.Fatalf("script called with %q %v", gotPath, gotArgs)
	}

	if err := c.Exec(context.Background(), "ghost", nil); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Exec unknown error = %v", err)
	}
}
