/*
================================================================================
SAN Switch Tools
Turns Brocade zoneshow/switchshow captures (or a planning workbook) into
alicreate/zonecreate commands and an xlsx port report.
================================================================================
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	Version = "1.0.0"
	Banner  = `
================================================================================
  SAN Switch Tools v%s
  Brocade alias/zone command generator
================================================================================
`
)

const (
	defaultSourceMode = "txt"
	defaultSourceFile = "bq_3F_switch_info.txt"
	defaultSheetName  = "Sheet1"
	defaultReportFile = "san_port_report.xlsx"
	defaultOutputFile = "switch_commands.txt"
)

var log = logrus.New()

type Config struct {
	SourceMode string // "txt" (switch capture) or "excel" (planning workbook)
	SourceFile string
	SheetName  string
	ReportFile string
	OutputFile string
	Verbose    bool
}

func main() {
	config := loadConfig()
	if config.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	fmt.Printf(Banner, Version)

	records, err := loadRecords(config)
	if err != nil {
		if errors.Is(err, errNoData) {
			fmt.Println("No port data found in source. Nothing to report.")
			return
		}
		log.WithField("source", config.SourceFile).Errorf("cannot load switch data: %v", err)
		os.Exit(1)
	}
	log.Debugf("loaded %d port records from %s", len(records), config.SourceFile)

	commands := generateAliasCommands(records)
	commands = append(commands, generateZoneCommands(records)...)

	if len(commands) > 0 {
		fmt.Println("--- Generated switch commands ---")
		for _, cmd := range commands {
			fmt.Println(cmd)
		}
		fmt.Println("---------------------------------")

		if err := writeCommands(config.OutputFile, commands); err != nil {
			log.WithField("file", config.OutputFile).Errorf("cannot write command file: %v", err)
		} else {
			fmt.Printf("\nCommands saved to '%s'\n", config.OutputFile)
		}
	} else {
		fmt.Println("No commands generated. Check the source data.")
	}

	printPortTable(os.Stdout, records)

	// Report export is a side effect on its own: a failure here must not
	// invalidate the command output already written.
	if err := exportReport(config.ReportFile, records); err != nil {
		log.WithField("file", config.ReportFile).Errorf("cannot export report: %v", err)
	} else {
		fmt.Printf("Report saved to '%s'\n", config.ReportFile)
	}
}

// loadRecords builds the unified port table from the configured source. In
// txt mode the alias and zone passes are best-effort (a failure just means
// synthesized names and empty zones) while the port-table pass is required.
func loadRecords(config *Config) ([]PortRecord, error) {
	switch config.SourceMode {
	case "txt":
		aliases := parseAliasesFromFile(config.SourceFile)
		zones := parseZonesFromFile(config.SourceFile)
		return parseSwitchshowFromFile(config.SourceFile, aliases, zones)
	case "excel":
		return readSwitchConfigFromExcel(config.SourceFile, config.SheetName)
	default:
		return nil, fmt.Errorf("unsupported source mode %q", config.SourceMode)
	}
}

// loadConfig merges defaults, an optional config file, SANSW_* environment
// variables and command-line flags (highest priority last).
func loadConfig() *Config {
	configName := flag.String("config", "sanswtools", "Config file name (without extension)")
	mode := flag.String("mode", defaultSourceMode, "Source mode: txt or excel")
	src := flag.String("src", defaultSourceFile, "Source file (capture txt or workbook xlsx)")
	sheet := flag.String("sheet", defaultSheetName, "Worksheet name (excel mode)")
	report := flag.String("report", defaultReportFile, "Report output file")
	out := flag.String("out", defaultOutputFile, "Command output file")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	viper.SetDefault("source_mode", defaultSourceMode)
	viper.SetDefault("source_file", defaultSourceFile)
	viper.SetDefault("sheet_name", defaultSheetName)
	viper.SetDefault("report_file", defaultReportFile)
	viper.SetDefault("output_file", defaultOutputFile)

	viper.SetConfigName(*configName)
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("sansw")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warnf("cannot read config file: %v", err)
		}
	}

	// Explicit flags beat config file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			viper.Set("source_mode", *mode)
		case "src":
			viper.Set("source_file", *src)
		case "sheet":
			viper.Set("sheet_name", *sheet)
		case "report":
			viper.Set("report_file", *report)
		case "out":
			viper.Set("output_file", *out)
		}
	})

	return &Config{
		SourceMode: viper.GetString("source_mode"),
		SourceFile: viper.GetString("source_file"),
		SheetName:  viper.GetString("sheet_name"),
		ReportFile: viper.GetString("report_file"),
		OutputFile: viper.GetString("output_file"),
		Verbose:    *verbose,
	}
}
