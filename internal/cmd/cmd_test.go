package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/rhnis-control-center/internal/filter"
	"github.com/Dallionking/rhnis-control-center/internal/record"
	"github.com/Dallionking/rhnis-control-center/internal/tui/styles"
)

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)

	out := buf.String()
	assert.Contains(t, out, styles.CompactLogo)
	assert.Contains(t, out, Version)
	assert.Contains(t, out, "OS/ARCH")
}

func leadView(search string) (record.Schema, filter.View) {
	schema := record.SchemaFor(record.KindLead)
	recs := record.SeedKind(record.KindLead, time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC))
	return schema, filter.Compute(recs, schema, filter.State{Search: search, Status: filter.All})
}

func TestWriteRecordsJSON(t *testing.T) {
	_, v := leadView("mar")

	var buf bytes.Buffer
	require.NoError(t, writeRecordsJSON(&buf, v))

	var out struct {
		Total   int `json:"total"`
		Shown   int `json:"shown"`
		Records []struct {
			Kind   string         `json:"kind"`
			Fields map[string]any `json:"fields"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.Shown)
	require.Len(t, out.Records, 1)
	assert.Equal(t, "lead", out.Records[0].Kind)
	assert.Equal(t, "Maria Garcia", out.Records[0].Fields["name"])
}

func TestWriteRecordsTableEmpty(t *testing.T) {
	schema, v := leadView("nobody")

	var buf bytes.Buffer
	writeRecordsTable(&buf, schema, v)
	assert.Contains(t, buf.String(), "No records found")
	assert.Contains(t, buf.String(), "0 of 3 lead records")
}
