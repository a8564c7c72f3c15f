package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = "🦊=== Initial version of main.py ===\n" +
	"import os\n" +
	"print(\"hello\")\n" +
	"🦊=== Code changes at 2024-03-01 10:00:00 ===\n" +
	"--- previous version\n" +
	"+++ current version\n" +
	"@@ -2,1 +2,1 @@\n" +
	"-print(\"hello\")\n" +
	"+print(\"world\")\n" +
	"🦊=== Code changes at 2024-03-01 10:05:00 ===\n" +
	"--- previous version\n" +
	"+++ current version\n" +
	"@@ -1,1 +1,2 @@\n" +
	" import os\n" +
	"+import sys\n"

func TestScanSplitsInitialAndDiffBlocks(t *testing.T) {
	initial, blocks, err := Scan(sampleLog)
	require.NoError(t, err)

	assert.Equal(t, "main.py", initial.Filename)
	assert.Equal(t, []string{"import os", "print(\"hello\")"}, initial.Lines)

	require.Len(t, blocks, 2)
	assert.Equal(t, 1, blocks[0].Index)
	assert.Equal(t, 2, blocks[1].Index)
	assert.Equal(t,
		"--- previous version\n+++ current version\n@@ -2,1 +2,1 @@\n-print(\"hello\")\n+print(\"world\")",
		blocks[0].Text)
	assert.Contains(t, blocks[1].Text, "+import sys")
}

func TestScanMissingInitialBlock(t *testing.T) {
	_, _, err := Scan("--- previous version\n+++ current version\n@@ -1,1 +1,1 @@\n x\n")
	assert.ErrorIs(t, err, ErrMissingInitialBlock)
}

func TestScanZeroDiffBlocks(t *testing.T) {
	initial, blocks, err := Scan("🦊=== Initial version of a.go ===\npackage main\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"package main"}, initial.Lines)
	assert.Empty(t, blocks)
}

func TestScanEmptyInitialContent(t *testing.T) {
	initial, blocks, err := Scan("🦊=== Initial version of a.go ===\n" +
		"🦊=== Code changes at t1 ===\n" +
		"--- previous version\n+++ current version\n@@ -1,0 +1,1 @@\n+package main\n")
	require.NoError(t, err)
	assert.Empty(t, initial.Lines)
	require.Len(t, blocks, 1)
}

func TestScanTrimsLeadingBlankLines(t *testing.T) {
	initial, _, err := Scan("🦊=== Initial version of a.py ===\n\n\nx = 1\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"x = 1"}, initial.Lines)
}

func TestScanNormalizesCRLF(t *testing.T) {
	initial, blocks, err := Scan("🦊=== Initial version of a.py ===\r\nx = 1\r\ny = 2\r\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"x = 1", "y = 2"}, initial.Lines)
	assert.Empty(t, blocks)
}

func TestScanToleratesTrailingSpacesOnDiffHeaders(t *testing.T) {
	_, blocks, err := Scan("🦊=== Initial version of a.py ===\nx\n" +
		"--- previous version \n+++ current version\t\n@@ -1,1 +1,1 @@\n x\n")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
}

func TestScanInitialEndsAtDiffHeaderPairWithoutNarration(t *testing.T) {
	initial, blocks, err := Scan("🦊=== Initial version of a.py ===\nx\ny\n" +
		"--- previous version\n+++ current version\n@@ -1,1 +1,1 @@\n x\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, initial.Lines)
	require.Len(t, blocks, 1)
}
