// internal/cli/options_test.go
package cli

import (
	"testing"

	"ringron/internal/config"
	"ringron/internal/engine"
)

func TestParseExtentArgsOK(t *testing.T) {
	name, id, err := ParseExtentArgs([]string{" Plain Bob Minor ", "3"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if name != "Plain Bob Minor" || id != 3 {
		t.Errorf("got %q %d", name, id)
	}
}

func TestParseExtentArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"Plain Bob Minor"},
		{"Plain Bob Minor", "0"},
		{"Plain Bob Minor", "two"},
		{"", "1"},
		{"a", "1", "extra"},
	} {
		_, _, err := ParseExtentArgs(args)
		if err == nil {
			t.Errorf("%q: expected error", args)
			continue
		}
		if !IsUsage(err) {
			t.Errorf("%q: want usage error, got %T", args, err)
		}
	}
}

func TestParseAssigned(t *testing.T) {
	got, err := ParseAssigned(" 1, 3 ,6")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 6 {
		t.Errorf("got %v", got)
	}
	if got, err := ParseAssigned(""); err != nil || got != nil {
		t.Errorf("empty list: %v %v", got, err)
	}
	for _, bad := range []string{"1,,2", "0", "x", "-2"} {
		if _, err := ParseAssigned(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestMergeKeepsChangedFlags(t *testing.T) {
	o := ExtentOptions{Cover: false, Intros: 3, Courses: 1}
	changed := map[string]bool{"intros": true, "seed": true}
	o.Merge(config.ExtentConfig{Cover: true, Intros: 0, Courses: 2}, func(f string) bool { return changed[f] })

	want := engine.Options{Cover: true, Intros: 3, Courses: 2}
	if o.EngineOptions() != want {
		t.Errorf("merged %+v, want %+v", o.EngineOptions(), want)
	}
	if !o.Seeded || o.Shuffler() == nil {
		t.Error("--seed given but shuffler not seeded")
	}
}

func TestShufflerUnseeded(t *testing.T) {
	var o ExtentOptions
	if o.Shuffler() != nil {
		t.Error("no --seed should leave the engine to pick a random shuffler")
	}
}

func TestValidate(t *testing.T) {
	ok := ExtentOptions{Intros: 0, Courses: 1, Output: "jsonl"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid options rejected: %v", err)
	}
	for _, o := range []ExtentOptions{
		{Intros: -1, Courses: 1},
		{Intros: 1, Courses: 0},
		{Intros: 1, Courses: 1, Output: "fasta"},
	} {
		err := o.Validate()
		if err == nil || !IsUsage(err) {
			t.Errorf("%+v: want usage error, got %v", o, err)
		}
	}
}
