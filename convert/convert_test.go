package convert

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/karoljaro/yaml-xml-json-converter/format"
	"github.com/karoljaro/yaml-xml-json-converter/ir"
	"github.com/karoljaro/yaml-xml-json-converter/parse"
)

func TestConvertJSONToYAML(t *testing.T) {
	out, err := Convert([]byte(`{"name": "svc", "replicas": 3, "ports": [80, 443]}`),
		format.JSONFormat, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := "name: svc\nreplicas: 3\nports:\n- 80\n- 443\n"
	if d := cmp.Diff(want, string(out)); d != "" {
		t.Errorf("yaml output (-want +got):\n%s", d)
	}
}

func TestConvertYAMLToJSON(t *testing.T) {
	out, err := Convert([]byte("a: 1\nb:\n- x\n- y\n"), format.YAMLFormat, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    \"x\",\n    \"y\"\n  ]\n}\n"
	if d := cmp.Diff(want, string(out)); d != "" {
		t.Errorf("json output (-want +got):\n%s", d)
	}
}

func TestConvertScalarRootWraps(t *testing.T) {
	out, err := Convert([]byte(`[1, 2]`), format.JSONFormat, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := "data:\n- 1\n- 2\n"
	if d := cmp.Diff(want, string(out)); d != "" {
		t.Errorf("wrapped output (-want +got):\n%s", d)
	}

	// Converting back keeps the wrapper; wrapping does not stack.
	back, err := Convert(out, format.YAMLFormat, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	wantBack := "{\n  \"data\": [\n    1,\n    2\n  ]\n}\n"
	if d := cmp.Diff(wantBack, string(back)); d != "" {
		t.Errorf("round trip of wrapped value (-want +got):\n%s", d)
	}
}

func TestConvertAttributeText(t *testing.T) {
	src := []byte(`<price currency="USD">29.99</price>`)
	asJSON, err := Convert(src, format.XMLFormat, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	wantJSON := "{\n  \"price\": {\n    \"@currency\": \"USD\",\n    \"#text\": \"29.99\"\n  }\n}\n"
	if d := cmp.Diff(wantJSON, string(asJSON)); d != "" {
		t.Errorf("json output (-want +got):\n%s", d)
	}
	backToXML, err := Convert(asJSON, format.JSONFormat, format.XMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff("<price currency=\"USD\">29.99</price>\n", string(backToXML)); d != "" {
		t.Errorf("xml output (-want +got):\n%s", d)
	}
}

func TestConvertMultiKeyRootToXML(t *testing.T) {
	out, err := Convert([]byte(`{"a": 1, "b": 2}`), format.JSONFormat, format.XMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := "<root>\n  <a>1</a>\n  <b>2</b>\n</root>\n"
	if d := cmp.Diff(want, string(out)); d != "" {
		t.Errorf("xml output (-want +got):\n%s", d)
	}
}

func TestConvertXMLChain(t *testing.T) {
	src := []byte(`<config env="dev"><host>localhost</host><port>8080</port><tag>a</tag><tag>b</tag></config>`)

	asJSON, err := Convert(src, format.XMLFormat, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	asYAML, err := Convert(asJSON, format.JSONFormat, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	backToXML, err := Convert(asYAML, format.YAMLFormat, format.XMLFormat)
	if err != nil {
		t.Fatal(err)
	}

	orig, err := parse.Parse(src, parse.ParseFormat(format.XMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	final, err := parse.Parse(backToXML, parse.ParseFormat(format.XMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(orig, final) {
		t.Errorf("xml -> json -> yaml -> xml changed the document:\n%s", backToXML)
	}
}

func TestConvertStages(t *testing.T) {
	c := &Conversion{From: format.JSONFormat, To: format.YAMLFormat}
	if _, err := c.Run([]byte(`{"a": 1}`)); err != nil {
		t.Fatal(err)
	}
	if c.Stage != Done {
		t.Errorf("stage = %v, want %v", c.Stage, Done)
	}

	c = &Conversion{From: format.JSONFormat, To: format.YAMLFormat}
	_, err := c.Run([]byte(`{"a":`))
	if err == nil {
		t.Fatal("expected decode failure")
	}
	if c.Stage != Failed {
		t.Errorf("stage = %v, want %v", c.Stage, Failed)
	}
	if !strings.HasPrefix(err.Error(), "load:") {
		t.Errorf("failure should name the load stage: %v", err)
	}
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("decode failure should wrap parse.ErrParse: %v", err)
	}
}

func TestStageString(t *testing.T) {
	for s, want := range map[Stage]string{
		Loading:     "load",
		Normalizing: "normalize",
		Saving:      "save",
		Done:        "done",
		Failed:      "failed",
	} {
		if s.String() != want {
			t.Errorf("Stage(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.yaml")
	if err := os.WriteFile(in, []byte(`{"a": 1}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ConvertFile(in, out, format.YAMLFormat); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "a: 1\n" {
		t.Errorf("out.yaml = %q", d)
	}
}

func TestConvertFileNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.yaml")
	if err := os.WriteFile(in, []byte(`{"broken": `), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ConvertFile(in, out, format.YAMLFormat); err == nil {
		t.Fatal("expected decode failure")
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("target file must not exist after a failed conversion")
	}
}

func TestConvertFileBadExtension(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.conf")
	if err := os.WriteFile(in, []byte(`x`), 0644); err != nil {
		t.Fatal(err)
	}
	err := ConvertFile(in, filepath.Join(dir, "out.yaml"), format.YAMLFormat)
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("unrecognized extension = %v, want ErrBadFormat", err)
	}
}
