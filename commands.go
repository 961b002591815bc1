package main

import (
	"fmt"
	"os"
	"strings"
)

// ============================================================================
// BROCADE COMMAND GENERATION
// ============================================================================

// generateAliasCommands produces one alicreate per record. Records missing
// an alias or WWPN are skipped with a warning naming the row.
func generateAliasCommands(records []PortRecord) []string {
	var commands []string
	for i, rec := range records {
		alias := strings.TrimSpace(rec.Alias)
		wwpn := strings.TrimSpace(rec.WWPN)
		if alias == "" || wwpn == "" {
			log.Warnf("row %d is incomplete, skipped (alias=%q wwpn=%q)", i+1, alias, wwpn)
			continue
		}
		commands = append(commands, fmt.Sprintf("alicreate \"%s\", \"%s\"", alias, wwpn))
	}
	return commands
}

// generateZoneCommands groups records by zone name and produces one
// zonecreate per zone. Zone order and member order follow first appearance
// in the record list so reruns over the same capture emit identical output.
// Unzoned records are left out entirely.
func generateZoneCommands(records []PortRecord) []string {
	var zoneOrder []string
	members := make(map[string][]string)

	for _, rec := range records {
		zone := strings.TrimSpace(rec.ZoneName)
		if zone == "" {
			continue
		}
		if _, seen := members[zone]; !seen {
			zoneOrder = append(zoneOrder, zone)
		}
		members[zone] = append(members[zone], rec.Alias)
	}

	var commands []string
	for _, zone := range zoneOrder {
		commands = append(commands, fmt.Sprintf("zonecreate \"%s\", \"%s\"", zone, strings.Join(members[zone], ";")))
	}
	return commands
}

// writeCommands saves the generated commands one per line.
func writeCommands(path string, commands []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, cmd := range commands {
		if _, err := fmt.Fprintln(file, cmd); err != nil {
			return err
		}
	}
	return nil
}
