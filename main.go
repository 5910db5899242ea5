package main

import (
	"flag"
	"fmt"
	"os"

	"txt_to_excel/internal/app"
	"txt_to_excel/internal/processing"
	"txt_to_excel/internal/sheets"
	"txt_to_excel/internal/tui"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Load configuration before flag parsing so environment values become
	// the flag defaults and explicit flags win
	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	txtPath := flag.String("txt", "", "Path to the TXT copy document to convert")
	templatePath := flag.String("template", config.TemplatePath, "Path to the Excel template (default: bundled template)")
	outputPath := flag.String("output", "", "Path for the generated Excel file")
	startRow := flag.Int("start-row", config.StartRow, "First row of column 1 to write text units into")
	interactive := flag.Bool("interactive", false, "Launch the interactive terminal form instead of converting directly")
	flag.Parse()

	converter := processing.NewConverter(sheets.NewClient())

	// A user-chosen template must exist; only the bundled default is
	// materialized on demand
	template := *templatePath
	if template == "" {
		template, err = sheets.EnsureDefaultTemplate("")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare default template")
		}
	}

	// No arguments at all drops into the interactive form, matching how
	// most users run the tool
	if *interactive || flag.NFlag() == 0 {
		if err := tui.Run(converter, template); err != nil {
			log.Fatal().Err(err).Msg("Interactive mode failed")
		}
		return
	}

	if *txtPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "both -txt and -output are required, or run with -interactive")
		flag.Usage()
		os.Exit(2)
	}

	count, err := converter.Convert(*txtPath, template, *outputPath, *startRow)
	if err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}

	fmt.Printf("Wrote %d text units to %s\n", count, *outputPath)
}
