package theme

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2/styles"
)

func TestStyleIsRegistered(t *testing.T) {
	if styles.Get(Name) != Style {
		t.Fatalf("style %q is not registered with chroma", Name)
	}
}

func TestCSSOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := CSS(&buf); err != nil {
		t.Fatalf("CSS failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, ".hl-chroma") {
		t.Errorf("stylesheet should use the hl- class prefix: %q", out)
	}
	if !strings.Contains(out, "#011627") {
		t.Errorf("stylesheet should carry the background color: %q", out)
	}
}

func TestCSSDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := CSS(&a); err != nil {
		t.Fatal(err)
	}
	if err := CSS(&b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("generated stylesheet differs between runs")
	}
}
