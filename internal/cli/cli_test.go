// internal/cli/cli_test.go
package cli

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the command tree against buffers and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errBuf bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errBuf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncryptText(t *testing.T) {
	out, err := execute(t, "", "encrypt", "--text", "AAAAA")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != "BDZGO" {
		t.Errorf("output = %q, want BDZGO", out)
	}
}

func TestDecryptIsReciprocal(t *testing.T) {
	ct, err := execute(t, "", "encrypt", "--text", "HELLO WORLD", "--position", "KDO")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	pt, err := execute(t, "", "decrypt", "--text", strings.TrimSpace(ct), "--position", "KDO")
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if strings.TrimSpace(pt) != "HELLO WORLD" {
		t.Errorf("round trip = %q", pt)
	}
}

func TestStdinInput(t *testing.T) {
	out, err := execute(t, "AAAAA\n", "encrypt")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != "BDZGO" {
		t.Errorf("output = %q, want BDZGO", out)
	}
}

func TestStripNonAlpha(t *testing.T) {
	out, err := execute(t, "", "encrypt", "--text", "HEIL HITLER", "--plugboard", "AB CD EF GH IJ KL", "--strip-non-alpha")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != "XLCGEGGZAX" {
		t.Errorf("output = %q, want XLCGEGGZAX", out)
	}
}

func TestJSONFormat(t *testing.T) {
	out, err := execute(t, "", "encrypt", "--text", "A", "--format", "json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{`"ciphertext": "B"`, `"final_position": "AAB"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}

func TestBadFlagValues(t *testing.T) {
	cases := [][]string{
		{"encrypt", "--text", "A", "--rings", "0,1,1"},
		{"encrypt", "--text", "A", "--rings", "1,1"},
		{"encrypt", "--text", "A", "--rotors", "I,II"},
		{"encrypt", "--text", "A", "--rotors", "I,II,IX"},
		{"encrypt", "--text", "A", "--reflector", "D"},
		{"encrypt", "--text", "A", "--position", "A1B"},
		{"encrypt", "--text", "A", "--plugboard", "AB AC"},
		{"encrypt", "--text", "A", "--format", "xml"},
		{"encrypt", "--text", "A", "--file", "also.txt"},
	}
	for _, args := range cases {
		if _, err := execute(t, "", args...); err == nil {
			t.Errorf("args %v: expected error", args)
		}
	}
}

func TestComponentsLists(t *testing.T) {
	out, err := execute(t, "", "components")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"VIII", "notch Z M", "B-Thin"} {
		if !strings.Contains(out, want) {
			t.Errorf("components output missing %q:\n%s", want, out)
		}
	}
}

func TestSplitList(t *testing.T) {
	if got := splitList("I, II , III"); len(got) != 3 || got[2] != "III" {
		t.Errorf("splitList = %v", got)
	}
	if got := splitPairs("AB CD,EF"); len(got) != 3 {
		t.Errorf("splitPairs = %v", got)
	}
}
