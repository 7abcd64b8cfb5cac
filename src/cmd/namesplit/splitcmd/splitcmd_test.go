package splitcmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"namesplit/src/internal/names"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NAMESPLIT_CONFIG", "")
	cmd := New()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSplitText(t *testing.T) {
	out, err := run(t, "Juan", "Martín", "de", "la", "Cruz", "Gómez")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	want := "honorific: -\nfirst_name: Juan Martín\nlast_name: de la Cruz Gómez\n"
	if out != want {
		t.Fatalf("want %q, got %q", want, out)
	}
}

func TestSplitCommaAndAPA(t *testing.T) {
	out, err := run(t, "--format", "apa", "Ludwig Mies, van der Rohe")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if out != "van der Rohe, L. M.\n" {
		t.Fatalf("apa: got %q", out)
	}
}

func TestSplitRequiresName(t *testing.T) {
	if _, err := run(t); err == nil {
		t.Fatalf("expected error without a name")
	}
	if _, err := run(t, "-f", "xml", "John"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestPrintFormats(t *testing.T) {
	r := names.Result{Honorific: "Dr", FirstName: "Jane", LastName: "Doe"}
	var b bytes.Buffer
	if err := Print(&b, r, "yaml"); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if b.String() != "honorific: Dr\nfirst_name: Jane\nlast_name: Doe\n" {
		t.Fatalf("yaml: got %q", b.String())
	}
	b.Reset()
	if err := Print(&b, names.Result{LastName: "O'Connor"}, "json"); err != nil {
		t.Fatalf("json: %v", err)
	}
	if strings.TrimSpace(b.String()) != `{"last_name":"O'Connor"}` {
		t.Fatalf("json: got %q", b.String())
	}
}
