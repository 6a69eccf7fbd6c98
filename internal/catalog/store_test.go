package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingStoreIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nowhere"))
	cat, err := s.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cat.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d entries", cat.Len())
	}
}

func TestCreateLoadKeepsOrder(t *testing.T) {
	s := NewStore(t.TempDir())
	entries := []Entry{
		{Name: "build", Description: "Builds the project"},
		{Name: "test", Description: "Runs tests"},
		{Name: "deploy"},
	}
	for _, e := range entries {
		if err := s.Create(e, []byte("echo "+e.Name+"\n")); err != nil {
			t.Fatalf("Create(%s): %v", e.Name, err)
		}
	}

	cat, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cat.Entries(); !reflect.DeepEqual(got, entries) {
		t.Fatalf("entries = %#v, want %#v", got, entries)
	}

	content, err := s.Content("test")
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if string(content) != "echo test\n" {
		t.Fatalf("content = %q", content)
	}
}

func TestCreateDuplicateFails(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Create(Entry{Name: "build"}, nil); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := s.Create(Entry{Name: "build"}, nil)
	if !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Update(Entry{Name: "ghost"}, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating missing shnippet, got %v", err)
	}

	_ = s.Create(Entry{Name: "a", Description: "first"}, []byte("one"))
	_ = s.Create(Entry{Name: "b", Description: "second"}, []byte("two"))
	if err := s.Update(Entry{Name: "a", Description: "changed"}, []byte("uno")); err != nil {
		t.Fatalf("Update: %v", err)
	}

	cat, _ := s.Load()
	want := []Entry{{Name: "a", Description: "changed"}, {Name: "b", Description: "second"}}
	if got := cat.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %#v, want %#v", got, want)
	}
	content, _ := s.Content("a")
	if string(content) != "uno" {
		t.Fatalf("content = %q, want uno", content)
	}
}

func TestRemove(t *testing.T) {
	s := NewStore(t.TempDir())
	_ = s.Create(Entry{Name: "a"}, []byte("x"))
	_ = s.Create(Entry{Name: "b"}, []byte("y"))

	if err := s.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	cat, _ := s.Load()
	if got := cat.Names(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("names = %v, want [b]", got)
	}
	if _, err := s.ScriptPath("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected script to be gone, got %v", err)
	}
	if err := s.Remove("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"build", false},
		{"deploy-prod", false},
		{"v1.2_x", false},
		{"", true},
		{"list", true},
		{"new", true},
		{"exec", true},
		{"__complete", true},
		{"-rf", true},
		{".hidden", true},
		{"has space", true},
		{"a/b", true},
		{"{name}", true},
	}
	for _, tt := range tests {
		err := ValidateName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidName) {
			t.Errorf("ValidateName(%q) error %v does not wrap ErrInvalidName", tt.name, err)
		}
	}
}

func TestLoadSkipsInvalidAndDuplicateEntries(t *testing.T) {
	dir := t.TempDir()
	index := `snippets:
  - name: build
    description: Builds
  - name: list
    description: reserved
  - name: build
    description: again
  - name: "bad name"
  - name: test
`
	if err := os.WriteFile(filepath.Join(dir, indexFileName), []byte(index), 0600); err != nil {
		t.Fatal(err)
	}

	cat, err := NewStore(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []Entry{{Name: "build", Description: "Builds"}, {Name: "test"}}
	if got := cat.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %#v, want %#v", got, want)
	}
}

func TestLoadCorruptIndex(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, indexFileName), []byte("snippets: [\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(dir).Load(); err == nil {
		t.Fatal("expected parse error")
	}
}
