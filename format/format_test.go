package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"json": JSONFormat,
		"JSON": JSONFormat,
		"j":    JSONFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"y":    YAMLFormat,
		"xml":  XMLFormat,
		"x":    XMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "toml", "jsonl"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("ParseFormat(%q) = %v, want ErrBadFormat", in, err)
		}
	}
}

func TestFromPath(t *testing.T) {
	for in, want := range map[string]Format{
		"a.json":         JSONFormat,
		"dir/b.YAML":     YAMLFormat,
		"c.yml":          YAMLFormat,
		"/tmp/d.xml":     XMLFormat,
		"weird.name.XML": XMLFormat,
	} {
		got, err := FromPath(in)
		if err != nil {
			t.Errorf("FromPath(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("FromPath(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"noext", "a.txt", "a.json.bak"} {
		if _, err := FromPath(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("FromPath(%q) = %v, want ErrBadFormat", in, err)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("round trip %v -> %s -> %v", f, d, back)
		}
		if f.Suffix() == "" {
			t.Errorf("%v has no suffix", f)
		}
	}
}
