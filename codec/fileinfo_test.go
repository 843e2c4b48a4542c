package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/karoljaro/yaml-xml-json-converter/format"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileInfoJSON(t *testing.T) {
	content := `{"a": 1, "b": [1, 2], "c": null}`
	path := writeFile(t, "doc.json", content)
	info, err := FileInfo(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.Valid {
		t.Fatalf("valid file reported invalid: %s", info.Error)
	}
	if info.Format != format.JSONFormat {
		t.Errorf("format = %v", info.Format)
	}
	if info.KeyCount != 3 {
		t.Errorf("key count = %d, want 3", info.KeyCount)
	}
	if info.SizeBytes != int64(len(content)) {
		t.Errorf("size = %d, want %d", info.SizeBytes, len(content))
	}
	if info.Encoding != "utf-8" {
		t.Errorf("encoding = %q", info.Encoding)
	}
}

func TestFileInfoScalarRoot(t *testing.T) {
	// A scalar root normalizes to {"data": ...}, one top-level key.
	path := writeFile(t, "doc.yaml", "just a scalar\n")
	info, err := FileInfo(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.Valid || info.KeyCount != 1 {
		t.Errorf("info = %+v, want valid with 1 key", info)
	}
}

func TestFileInfoXML(t *testing.T) {
	path := writeFile(t, "doc.xml", `<a><b>x</b><b>y</b></a>`)
	info, err := FileInfo(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.Valid {
		t.Fatalf("valid file reported invalid: %s", info.Error)
	}
	if info.ElementCount == 0 {
		t.Errorf("element count not recorded: %+v", info)
	}
	if info.KeyCount != 0 {
		t.Errorf("xml info should report elements, not keys: %+v", info)
	}
}

func TestFileInfoInvalidDocument(t *testing.T) {
	path := writeFile(t, "bad.json", `{"a": `)
	info, err := FileInfo(path)
	if err != nil {
		t.Fatalf("decode failure must not be an environment error: %v", err)
	}
	if info.Valid {
		t.Errorf("truncated document reported valid")
	}
	if info.Error == "" {
		t.Errorf("decode failure message missing")
	}
}

func TestFileInfoEnvErrors(t *testing.T) {
	if _, err := FileInfo(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Errorf("missing file should be an error")
	}
	if _, err := FileInfo(writeFile(t, "doc.txt", "x")); err == nil {
		t.Errorf("unrecognized extension should be an error")
	}
}

func TestValidFile(t *testing.T) {
	ok, err := ValidFile(writeFile(t, "ok.yaml", "a: 1\n"))
	if err != nil || !ok {
		t.Errorf("ValidFile(ok.yaml) = %v, %v", ok, err)
	}
	ok, err = ValidFile(writeFile(t, "bad.yaml", "\ta: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("tab-indented yaml reported valid")
	}
	if _, err := ValidFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Errorf("missing file should be an error")
	}
}
