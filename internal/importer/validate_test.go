package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLedgerCSV(t *testing.T) {
	input := "Entry Date MS,Time Spent MS,Description\n" +
		"1700000000000,60000,writing docs\n" +
		"1700000100000,30000,\"review, round 2\"\n"

	rows, err := ReadLedgerCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, LedgerRow{Line: 2, EnteredAtMs: "1700000000000", SpentMs: "60000", Description: "writing docs"}, rows[0])
	assert.Equal(t, "review, round 2", rows[1].Description)
	assert.Equal(t, 3, rows[1].Line)
}

func TestReadLedgerCSV_HeaderErrors(t *testing.T) {
	_, err := ReadLedgerCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")

	_, err = ReadLedgerCSV(strings.NewReader("Date,Spent,Description\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column 1")

	_, err = ReadLedgerCSV(strings.NewReader("Entry Date MS,Time Spent MS,Description\n1,2\n"))
	assert.Error(t, err, "wrong field count")
}

func TestReadLedgerCSV_AcceptsBOM(t *testing.T) {
	rows, err := ReadLedgerCSV(strings.NewReader("\ufeffEntry Date MS,Time Spent MS,Description\n1,2,x\n"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestValidateLedgerRows(t *testing.T) {
	rows := []LedgerRow{
		{Line: 2, EnteredAtMs: "1", SpentMs: "2", Description: "ok"},
		{Line: 3, EnteredAtMs: "x", SpentMs: "-5", Description: "  "},
		{Line: 4, EnteredAtMs: "9223372036854775808", SpentMs: "1", Description: "too big"},
	}

	errs := ValidateLedgerRows(rows)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "line 3: entry date")
	assert.Contains(t, errs[1].Error(), "line 3: time spent")
	assert.Contains(t, errs[2].Error(), "line 3: description is required")
	assert.Contains(t, errs[3].Error(), "line 4: entry date")
	assert.Contains(t, errs[3].Error(), "out of range")
}

func TestValidateLedgerRows_Valid(t *testing.T) {
	errs := ValidateLedgerRows([]LedgerRow{{Line: 2, EnteredAtMs: " 10 ", SpentMs: "0", Description: "idle"}})
	assert.Empty(t, errs)
}
