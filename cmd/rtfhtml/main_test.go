// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/mdhender/rtfhtml"
	"github.com/spf13/afero"
)

const helloRTF = "{\\rtf1\\ansi\\ansicpg1252\\deff0\\nouicompat\\deflang1031{\\fonttbl{\\f0\\fnil\\fcharset0 Calibri;}}\r\n" +
	"{\\*\\generator Riched20 6.3.9600}\\viewkind4\\uc1 \r\n" +
	"\\pard\\sa200\\sl276\\slmult1\\f0\\fs22\\lang7 Hello World\\par\r\n" +
	"}\r\n"

func run(fs afero.Fs, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	a := newApp()
	a.SetFS(fs)
	a.stdout, a.stderr = &stdout, &stderr
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func newFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, data := range files {
		if err := afero.WriteFile(fs, name, []byte(data), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return fs
}

func TestConvert_Stdout(t *testing.T) {
	fs := newFS(t, map[string]string{"hello.rtf": helloRTF})
	stdout, _, err := run(fs, "convert", "hello.rtf")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if want := `<p><span style="font-size:15px;">Hello World</span></p><p>`; stdout != want {
		t.Errorf("got %q, want %q", stdout, want)
	}
}

func TestConvert_OutputFile(t *testing.T) {
	fs := newFS(t, map[string]string{"hello.rtf": helloRTF})
	stdout, _, err := run(fs, "convert", "hello.rtf", "--page", "-o", "hello.html")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	data, err := afero.ReadFile(fs, "hello.html")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") || !strings.Contains(string(data), "Hello World") {
		t.Errorf("output = %q, want a page with the text", data)
	}
}

func TestConvert_ConfigFile(t *testing.T) {
	fs := newFS(t, map[string]string{
		"euro.rtf": `{\rtf1 <\'80>}`,
		"page.toml": "page = true\n" +
			"charset = 1252\n" +
			"escape-text = false\n" +
			"output = \"euro.html\"\n",
		"bad.toml": "pages = true\n",
	})

	if _, _, err := run(fs, "convert", "euro.rtf", "-c", "page.toml"); err != nil {
		t.Fatalf("convert: %v", err)
	}
	data, err := afero.ReadFile(fs, "euro.html")
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := string(data); !strings.HasPrefix(got, "<?xml") || !strings.Contains(got, `<p><span style=""><&#8364;>`) {
		t.Errorf("output = %q, want an unescaped page with &#8364;", got)
	}

	// flags override the file
	stdout, _, err := run(fs, "convert", "euro.rtf", "-c", "page.toml", "--page=false", "-o", "", "--charset", "0")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if want := `<p><span style=""><&#128;>`; stdout != want {
		t.Errorf("got %q, want %q", stdout, want)
	}

	if _, _, err := run(fs, "convert", "euro.rtf", "-c", "bad.toml"); err == nil {
		t.Errorf("convert with unknown config key: want error")
	}
	if _, _, err := run(fs, "convert", "euro.rtf", "-c", "missing.toml"); err == nil {
		t.Errorf("convert with missing config file: want error")
	}
}

func TestConvert_Errors(t *testing.T) {
	fs := newFS(t, map[string]string{
		"plain.txt": "This text is not a valid RTF string.",
		"hello.rtf": helloRTF,
	})

	_, stderr, err := run(fs, "convert", "plain.txt")
	if err == nil {
		t.Fatalf("convert plain text: want error")
	}
	if want := "plain.txt:1:1: error: missing rtf signature"; !strings.Contains(stderr, want) {
		t.Errorf("stderr = %q, want it to contain %q", stderr, want)
	}

	if _, _, err := run(fs, "convert", "missing.rtf"); err == nil {
		t.Errorf("convert missing file: want error")
	}
	if _, _, err := run(fs, "convert", "hello.rtf", "--charset", "12345"); err == nil {
		t.Errorf("convert with unsupported charset: want error")
	}
}

func TestConvert_VerboseWarnings(t *testing.T) {
	fs := newFS(t, map[string]string{"junk.rtf": "{\\rtf1 x}\njunk"})
	_, stderr, err := run(fs, "convert", "junk.rtf", "--verbose")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if want := "junk.rtf:2:1: warn: ignoring content after end of document"; !strings.Contains(stderr, want) {
		t.Errorf("stderr = %q, want it to contain %q", stderr, want)
	}
}

func TestDump(t *testing.T) {
	fs := newFS(t, map[string]string{"hello.rtf": helloRTF})

	stdout, _, err := run(fs, "dump", "hello.rtf", "--html")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.HasPrefix(stdout, "<div>\n{\n</div>\n<div style='color:green'>\n&nbsp;\n&nbsp;\nWORD rtf (1)\n</div>\n") {
		t.Errorf("got %q, want the html listing", stdout)
	}

	stdout, _, err = run(fs, "dump", "hello.rtf", "--no-color")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.HasPrefix(stdout, "{\n  WORD rtf (1)\n  WORD ansi (1)\n") {
		t.Errorf("got %q, want the plain listing", stdout)
	}
	if !strings.Contains(stdout, "  TEXT Hello World\n") {
		t.Errorf("got %q, want the text", stdout)
	}
}

func TestLex(t *testing.T) {
	fs := newFS(t, map[string]string{"tail.rtf": `{\rtf1 x}\`})

	stdout, _, err := run(fs, "lex", "tail.rtf")
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	if got, want := strings.Count(stdout, "\n"), 6; got != want {
		t.Errorf("got %d lines, want %d:\n%s", got, want, stdout)
	}

	stdout, _, err = run(fs, "lex", "tail.rtf", "--unknown-only")
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	if got, want := strings.Count(stdout, "\n"), 1; got != want || !strings.Contains(stdout, "UNKNOWN") {
		t.Errorf("got %q, want one UNKNOWN token", stdout)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(afero.NewMemMapFs(), "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if want := fmt.Sprintln(rtfhtml.Version().Core()); stdout != want {
		t.Errorf("got %q, want %q", stdout, want)
	}
}
