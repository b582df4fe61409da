package client

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leynos/crockford/pkg/crockford"
	"github.com/leynos/crockford/pkg/cuuid"
)

func TestMintCommand(t *testing.T) {
	cmd := NewMintCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-n", "3", "--ordered"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Fields(buf.String())
	if len(lines) != 3 {
		t.Fatalf("lines: %v", lines)
	}
	prev := ""
	for _, line := range lines {
		u, err := cuuid.Parse(line)
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		if u.Version() != 7 {
			t.Fatalf("version: %d", u.Version())
		}
		if !(prev < line) {
			t.Fatalf("not ordered: %q then %q", prev, line)
		}
		prev = line
	}
}

func TestEncodeDecodeCommands(t *testing.T) {
	id := cuuid.Must(cuuid.New())

	enc := NewEncodeCommand()
	var out bytes.Buffer
	enc.SetOut(&out)
	enc.SetArgs([]string{id.UUID().String()})
	if err := enc.Execute(); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := strings.TrimSpace(out.String())
	if got != id.String() {
		t.Fatalf("encode: %q, want %q", got, id.String())
	}
	if len(got) != crockford.EncodedLen {
		t.Fatalf("encode length: %d", len(got))
	}

	dec := NewDecodeCommand()
	out.Reset()
	dec.SetOut(&out)
	dec.SetArgs([]string{strings.ToLower(got)})
	if err := dec.Execute(); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out.String(), id.String()) || !strings.Contains(out.String(), id.UUID().String()) {
		t.Fatalf("decode output: %s", out.String())
	}
}

func TestLookupCommand(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/ids/lookup" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"id":"` + r.URL.Query().Get("id") + `","version":7}`))
	}))
	defer ts.Close()

	cmd := NewLookupCommand(func() string { return ts.URL })
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"0000000000000000000000000W"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !strings.Contains(buf.String(), `"version":7`) {
		t.Fatalf("lookup output: %s", buf.String())
	}
}

func TestDecodeCommandRejectsBadInput(t *testing.T) {
	dec := NewDecodeCommand()
	dec.SetOut(&bytes.Buffer{})
	dec.SetErr(&bytes.Buffer{})
	dec.SetArgs([]string{"!!"})
	if err := dec.Execute(); err == nil {
		t.Fatalf("expected error")
	}
}
