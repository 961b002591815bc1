package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// ============================================================================
// DATA STRUCTURES
// ============================================================================

// PortRecord is one online F-Port from the switchshow output, already
// correlated against the alias and zone listings.
type PortRecord struct {
	PortIndex string
	Alias     string
	WWPN      string
	ZoneName  string
}

// errNoData marks a parse that succeeded but produced no port records.
// Callers must treat it as "nothing to report", not as a failure.
var errNoData = errors.New("no port data found")

// WWPN format: 8 colon-separated pairs of hex digits, e.g.
// 10:00:00:00:c9:aa:bb:cc. Switches print lowercase but captures pasted
// through terminals sometimes arrive uppercased.
var wwpnRegex = regexp.MustCompile(`(?i)([0-9a-f]{2}:){7}[0-9a-f]{2}`)

// matchWWPN returns the first WWPN on the line, lowercased.
func matchWWPN(line string) (string, bool) {
	m := wwpnRegex.FindString(line)
	if m == "" {
		return "", false
	}
	return strings.ToLower(m), true
}

// ============================================================================
// ZONESHOW PARSERS (alias and zone listings)
// ============================================================================

// parseAliases scans zoneshow output for alias definitions. Each "alias:"
// line names an alias; the very next line is taken as its WWPN line, matched
// or not (single-shot lookahead). A WWPN seen twice keeps the later alias.
func parseAliases(r io.Reader) map[string]string {
	aliases := make(map[string]string)
	pending := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "alias:") {
			parts := strings.SplitN(line, ":", 2)
			pending = strings.TrimSpace(parts[1])
			continue
		}

		if pending != "" {
			if wwpn, ok := matchWWPN(line); ok {
				aliases[wwpn] = pending
			}
			pending = ""
		}
	}
	return aliases
}

// parseAliasesFromFile reads alias definitions from a capture file. Failure
// to read is not fatal: the caller falls back to synthesized port names.
func parseAliasesFromFile(path string) map[string]string {
	file, err := os.Open(path)
	if err != nil {
		log.WithField("file", path).Warnf("cannot read alias definitions: %v", err)
		return map[string]string{}
	}
	defer file.Close()
	return parseAliases(file)
}

// parseZones scans the "Defined configuration:" block of zoneshow output.
// Each "zone:" line names a zone; the next non-blank line is its
// semicolon-separated member list (single-shot, same policy as aliases).
// A member listed under two zones keeps the later zone.
func parseZones(r io.Reader) map[string]string {
	zones := make(map[string]string)
	pending := ""
	inDefinedConfig := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "Defined configuration:") {
			inDefinedConfig = true
			continue
		}
		if !inDefinedConfig || line == "" {
			continue
		}

		if strings.HasPrefix(line, "zone:") {
			parts := strings.SplitN(line, ":", 2)
			pending = strings.TrimSpace(parts[1])
			continue
		}

		if pending != "" {
			for _, member := range strings.Split(line, ";") {
				member = strings.TrimSpace(member)
				if member != "" {
					zones[member] = pending
				}
			}
			pending = ""
		}
	}
	return zones
}

// parseZonesFromFile reads zone membership from a capture file. Failure to
// read is not fatal: ports simply end up unzoned.
func parseZonesFromFile(path string) map[string]string {
	file, err := os.Open(path)
	if err != nil {
		log.WithField("file", path).Warnf("cannot read zone definitions: %v", err)
		return map[string]string{}
	}
	defer file.Close()
	return parseZones(file)
}

// ============================================================================
// SWITCHSHOW PARSER (port table)
// ============================================================================

// parseSwitchshow scans the switchshow port table, which starts at the
// "Index Port Address" header and ends at the next CLI prompt. Only online
// F-Ports with a numeric index and a WWPN become records; everything else in
// the table (trunks, E-Ports, dark ports, separators) is skipped. Each WWPN
// is resolved against the alias map (default Port_<index>) and each alias
// against the zone map (default empty).
func parseSwitchshow(r io.Reader, aliases, zones map[string]string) ([]PortRecord, error) {
	var records []PortRecord
	inSection := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "Index Port Address") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}

		// Next prompt means the switchshow block is over.
		if strings.Contains(line, "admin>") {
			break
		}

		wwpn, ok := matchWWPN(line)
		if !ok || !strings.Contains(line, "F-Port") || !strings.Contains(line, "Online") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || !isDigits(fields[0]) {
			continue
		}
		portIndex := fields[0]

		alias, found := aliases[wwpn]
		if !found {
			alias = "Port_" + portIndex
		}

		records = append(records, PortRecord{
			PortIndex: portIndex,
			Alias:     alias,
			WWPN:      wwpn,
			ZoneName:  zones[alias],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read switchshow output: %w", err)
	}

	if len(records) == 0 {
		return nil, errNoData
	}
	return records, nil
}

// parseSwitchshowFromFile reads the port table from a capture file. Unlike
// the alias/zone passes, a read failure here is fatal: there is nothing to
// generate without the port table.
func parseSwitchshowFromFile(path string, aliases, zones map[string]string) ([]PortRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open switchshow output: %w", err)
	}
	defer file.Close()
	return parseSwitchshow(file, aliases, zones)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
