package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/citizenlabsgr/elections-api/lib/scrapers/mvic"

	"github.com/stretchr/testify/require"
)

func TestWriteResultTable(t *testing.T) {
	var out bytes.Buffer
	writeResultTable(&out, mvic.RegistrationResult{
		Registered: true,
		Fields: map[string]string{
			"precinct": "12",
			"county":   "Wayne",
		},
	})

	rendered := out.String()
	require.Contains(t, rendered, "registered")
	require.Contains(t, rendered, "true")
	require.Less(t, strings.Index(rendered, "county"), strings.Index(rendered, "precinct"))
	require.Contains(t, rendered, "Wayne")
}

func TestWriteResultJson(t *testing.T) {
	var out bytes.Buffer
	err := writeResultJson(&out, mvic.RegistrationResult{Registered: false})
	if err != nil {
		t.Fatal(err)
	}
	require.JSONEq(t, `{"registered": false}`, out.String())
}
