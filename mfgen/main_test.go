package main

import (
	"bytes"
	"fmt"
	"testing"
)

func TestGeneratedFileIsCurrent(t *testing.T) {
	got, err := fileChecksum("../extensions/generated_int.go")
	if err != nil {
		t.Fatalf("reading checksum: %v", err)
	}
	if want := fmt.Sprintf("%08x", Checksum(ops)); got != want {
		t.Errorf("generated_int.go checksum %s, table is %s: run go generate ./extensions", got, want)
	}
}

func TestChecksumChangesWithTable(t *testing.T) {
	changed := append([]Op(nil), ops...)
	changed[0].Impl = "somethingElse"
	if Checksum(changed) == Checksum(ops) {
		t.Errorf("checksum didn't change with the table")
	}
}

func TestOpNames(t *testing.T) {
	tests := []struct {
		op       Op
		goName   string
		sig      string
		narrowed int
	}{
		{Op{"count_ones", []string{"u64"}, "u32", "countOnes"}, "genCountOnes", "`count_ones(u64) -> u32`", 0},
		{Op{"checked_pow", []string{"u64", "u32"}, "option", "checkedPow"}, "genCheckedPow",
			"`checked_pow(u64, u32) -> Option<u64>`", 1},
		{Op{"overflowing_add", []string{"u64", "u64"}, "carry", "overflowingAdd"}, "genOverflowingAdd",
			"`overflowing_add(u64, u64) -> (u64, bool)`", 0},
	}
	for _, tt := range tests {
		if got := tt.op.GoName(); got != tt.goName {
			t.Errorf("GoName(%s) = %q, want %q", tt.op.Name, got, tt.goName)
		}
		if got := tt.op.Signature(); got != tt.sig {
			t.Errorf("Signature(%s) = %q, want %q", tt.op.Name, got, tt.sig)
		}
		if got := len(tt.op.Narrowed()); got != tt.narrowed {
			t.Errorf("Narrowed(%s) has %d entries, want %d", tt.op.Name, got, tt.narrowed)
		}
	}
}

func TestGenerate(t *testing.T) {
	src, err := Generate(ops)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"// Code generated by mfgen; DO NOT EDIT.",
		"func genCheckedAdd(e object.Engine) error {",
		"a1, err := toU32(a[1])",
		"pushCarry(e, r, overflow)",
		`{"saturating_pow", "` + "`saturating_pow(u64, u32) -> u64`" + `", genSaturatingPow},`,
	} {
		if !bytes.Contains(src, []byte(want)) {
			t.Errorf("generated source is missing %q", want)
		}
	}
}

func TestUnknownReturnKindPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic")
		}
	}()
	_ = Op{"bad", []string{"u64"}, "float", "bad"}.Push()
}
