package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal capture: one alias, one zone, one online F-Port.
const miniCapture = `
alias: Host1
	10:00:00:00:c9:11:22:33
Defined configuration:
 zone:  Zone1
	Host1
Index Port Address  Media Speed State     Proto
   3   3   010300   id    N16   Online      FC  F-Port  10:00:00:00:c9:11:22:33
sw1:admin>
`

func TestPipelineMiniCapture(t *testing.T) {
	aliases := parseAliases(strings.NewReader(miniCapture))
	zones := parseZones(strings.NewReader(miniCapture))
	records, err := parseSwitchshow(strings.NewReader(miniCapture), aliases, zones)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, PortRecord{PortIndex: "3", Alias: "Host1", WWPN: "10:00:00:00:c9:11:22:33", ZoneName: "Zone1"}, records[0])

	commands := generateAliasCommands(records)
	commands = append(commands, generateZoneCommands(records)...)
	assert.Equal(t, []string{
		`alicreate "Host1", "10:00:00:00:c9:11:22:33"`,
		`zonecreate "Zone1", "Host1"`,
	}, commands)
}

func TestLoadRecordsFromCaptureFile(t *testing.T) {
	config := &Config{SourceMode: "txt", SourceFile: "testdata/switch_info.txt"}
	records, err := loadRecords(config)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, PortRecord{PortIndex: "0", Alias: "Host1", WWPN: "10:00:00:00:c9:11:22:33", ZoneName: "Zone1"}, records[0])
	assert.Equal(t, PortRecord{PortIndex: "1", Alias: "Stor1", WWPN: "20:00:00:25:b5:aa:bb:01", ZoneName: "Zone1"}, records[1])
	// The capture defines alias Host2 but no zone contains it. Also checks
	// that its uppercase WWPN is normalized.
	assert.Equal(t, PortRecord{PortIndex: "3", Alias: "Host2", WWPN: "10:00:00:00:c9:44:55:66", ZoneName: ""}, records[2])

	commands := generateAliasCommands(records)
	commands = append(commands, generateZoneCommands(records)...)
	assert.Equal(t, []string{
		`alicreate "Host1", "10:00:00:00:c9:11:22:33"`,
		`alicreate "Stor1", "20:00:00:25:b5:aa:bb:01"`,
		`alicreate "Host2", "10:00:00:00:c9:44:55:66"`,
		`zonecreate "Zone1", "Host1;Stor1"`,
	}, commands)
}

func TestLoadRecordsNoPortRows(t *testing.T) {
	config := &Config{SourceMode: "txt", SourceFile: "testdata/empty_switch_info.txt"}
	_, err := loadRecords(config)
	assert.ErrorIs(t, err, errNoData)
}

func TestLoadRecordsUnsupportedMode(t *testing.T) {
	config := &Config{SourceMode: "csv", SourceFile: "whatever.csv"}
	_, err := loadRecords(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported source mode")
}
