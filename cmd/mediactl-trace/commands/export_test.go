package commands

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestExportToJSONL(t *testing.T) {
	path := createTestTraceFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var m map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", scanner.Text(), err)
		}
		lines = append(lines, m)
	}

	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d", len(lines))
	}

	first := lines[0]
	if first["direction"] != "IN" || first["stream"] != "CONTENT" || first["key"] != "KEY" {
		t.Errorf("unexpected first line: %v", first)
	}
	content, ok := first["content"].(map[string]any)
	if !ok || content["title"] != "TITLE" {
		t.Errorf("unexpected content: %v", first["content"])
	}

	if lines[3]["old_key"] != "KEY" {
		t.Errorf("expected old_key on migration, got %v", lines[3])
	}
}

func TestExportToCSV(t *testing.T) {
	path := createTestTraceFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 9 {
		t.Fatalf("expected header + 8 rows, got %d", len(records))
	}
	if records[0][0] != "timestamp" {
		t.Errorf("unexpected header: %v", records[0])
	}

	merged := records[3]
	if merged[3] != "MERGED" || merged[7] != "TITLE" || merged[8] != "DEVICE_NAME" || merged[9] != "true" {
		t.Errorf("unexpected merged row: %v", merged)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestTraceFile(t, sampleEvents())
	if err := RunExport(path, "xml", filepath.Join(t.TempDir(), "out")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
