package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleFile(t *testing.T) string {
	t.Helper()
	return writeTreeFile(t, treeFile{
		Values:  []string{"root", "child1", "child2", "grand0", "grand1", "grand2", "grand3", "grand4"},
		Parents: []int{0, 0, 0, 1, 1, 1, 2, 2},
	})
}

func TestDumpCommand(t *testing.T) {
	tests := []struct {
		name        string
		groups      bool
		json        bool
		wantContain []string
		wantErr     bool
	}{
		{
			name: "flat dump",
			wantContain: []string{
				"root {0}",
				"child1 {0}",
				"grand2 {1}",
				"grand4 {2}",
			},
		},
		{
			name:   "grouped dump",
			groups: true,
			wantContain: []string{
				"root: child1,child2",
				"child1: grand0,grand1,grand2",
				"child2: grand3,grand4",
			},
		},
		{
			name:        "json dump",
			json:        true,
			wantContain: []string{`"values"`, `"parents"`, `"grand3"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := sampleFile(t)
			dumpGroups = tt.groups
			jsonOut = tt.json
			defer func() { dumpGroups, jsonOut = false, false }()

			out, err := captureOutput(t, func() error { return runDump(path) })
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("runDump: %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			if tt.json {
				var tf treeFile
				if err := json.Unmarshal([]byte(out), &tf); err != nil {
					t.Fatalf("json output does not parse: %v", err)
				}
				if len(tf.Values) != 8 || len(tf.Parents) != 8 {
					t.Errorf("json round trip lost nodes: %+v", tf)
				}
			}
		})
	}
}

func TestDumpCommand_BadFile(t *testing.T) {
	path := writeTreeFile(t, treeFile{
		Values:  []string{"root", "oops"},
		Parents: []int{0},
	})

	_, err := captureOutput(t, func() error { return runDump(path) })
	if err == nil {
		t.Fatal("expected mismatched sequences to fail")
	}
}

func TestTreeCommand(t *testing.T) {
	path := sampleFile(t)

	out, err := captureOutput(t, func() error { return runTree(path) })
	if err != nil {
		t.Fatalf("runTree: %v", err)
	}
	for _, want := range []string{"root", "child1", "child2", "grand0", "grand4"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree rendering missing %q:\n%s", want, out)
		}
	}
}

func TestStatsCommand(t *testing.T) {
	path := sampleFile(t)

	out, err := captureOutput(t, func() error { return runStats(path) })
	if err != nil {
		t.Fatalf("runStats: %v", err)
	}
	for _, want := range []string{"Nodes:      8", "Leaves:     5", "Max depth:  2"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestStatsCommand_JSON(t *testing.T) {
	path := sampleFile(t)
	jsonOut = true
	defer func() { jsonOut = false }()

	out, err := captureOutput(t, func() error { return runStats(path) })
	if err != nil {
		t.Fatalf("runStats: %v", err)
	}

	var st treeStats
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatalf("stats json does not parse: %v", err)
	}
	if st.Nodes != 8 || st.Leaves != 5 || st.MaxDepth != 2 || st.WidestCount != 3 {
		t.Errorf("unexpected stats: %+v", st)
	}
}
