package runner

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	RunModeHarvest = iota + 1
	RunModeDirectory
	RunModeMerge
)

var (
	ErrInvalidRunMode = errors.New("invalid run mode")
)

type Runner interface {
	Run(context.Context) error
	Close(context.Context) error
}

type Config struct {
	RunMode     int
	APIKey      string
	InputFile   string
	RulesFile   string
	OutDir      string
	Delay       time.Duration
	MaxPages    int
	EnrichLimit int
}

// Output file names, fixed so each stage finds the previous stage's
// handoff without extra wiring.
const (
	HarvestJSONFile   = "companies_house_truck_tyres.json"
	HarvestCSVFile    = "companies_house_truck_tyres.csv"
	DirectoryJSONFile = "uk_truck_tyre_companies.json"
	MasterJSONFile    = "MASTER_UK_TRUCK_TYRE_COMPANIES.json"
	MasterCSVFile     = "MASTER_UK_TRUCK_TYRE_COMPANIES.csv"
	WorkbookFile      = "UK_TRUCK_TYRE_COMPANIES.xlsx"
)

func ParseConfig() *Config {
	cfg := Config{}

	var mode string

	flag.StringVar(&mode, "mode", "merge", "run mode: harvest, directory or merge [default: merge]")
	flag.StringVar(&cfg.InputFile, "input", "", "path to a file with search phrases (one per line) [default: built-in phrase list]")
	flag.StringVar(&cfg.RulesFile, "rules", "", "path to a YAML file with classification rules [default: built-in rules]")
	flag.StringVar(&cfg.OutDir, "out", ".", "directory for output files [default: current directory]")
	flag.DurationVar(&cfg.Delay, "delay", 600*time.Millisecond, "cool-down pause after each API call [default: 600ms]")
	flag.IntVar(&cfg.MaxPages, "max-pages", 5, "maximum result pages fetched per search phrase [default: 5]")
	flag.IntVar(&cfg.EnrichLimit, "enrich", 50, "number of harvested companies to enrich with profile details [default: 50]")

	flag.Parse()

	switch mode {
	case "harvest":
		cfg.RunMode = RunModeHarvest
	case "directory":
		cfg.RunMode = RunModeDirectory
	case "merge":
		cfg.RunMode = RunModeMerge
	default:
		panic(fmt.Sprintf("unknown mode %q (want harvest, directory or merge)", mode))
	}

	if cfg.MaxPages < 1 {
		panic("max-pages must be greater than 0")
	}

	if cfg.EnrichLimit < 0 {
		panic("enrich must not be negative")
	}

	if cfg.Delay < 0 {
		panic("delay must not be negative")
	}

	cfg.APIKey = getEnvOrDefault("COMPANIES_HOUSE_API_KEY", "")

	if cfg.RunMode == RunModeHarvest && cfg.APIKey == "" {
		panic("COMPANIES_HOUSE_API_KEY must be set for harvest mode")
	}

	return &cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func wrapText(text string, width int) []string {
	var lines []string

	currentLine := ""
	currentWidth := 0

	for _, r := range text {
		runeWidth := runewidth.RuneWidth(r)
		if currentWidth+runeWidth > width {
			lines = append(lines, currentLine)
			currentLine = string(r)
			currentWidth = runeWidth
		} else {
			currentLine += string(r)
			currentWidth += runeWidth
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

func banner(messages []string, width int) string {
	if width <= 0 {
		var err error

		width, _, err = term.GetSize(0)
		if err != nil {
			width = 80
		}
	}

	if width < 20 {
		width = 20
	}

	contentWidth := width - 4

	var wrappedLines []string
	for _, message := range messages {
		wrappedLines = append(wrappedLines, wrapText(message, contentWidth)...)
	}

	var builder strings.Builder

	builder.WriteString("╔" + strings.Repeat("═", width-2) + "╗\n")

	for _, line := range wrappedLines {
		lineWidth := runewidth.StringWidth(line)
		paddingRight := contentWidth - lineWidth

		if paddingRight < 0 {
			paddingRight = 0
		}

		builder.WriteString(fmt.Sprintf("║ %s%s ║\n", line, strings.Repeat(" ", paddingRight)))
	}

	builder.WriteString("╚" + strings.Repeat("═", width-2) + "╝\n")

	return builder.String()
}

func Banner() {
	message1 := "🚚 UK Truck Tyre Company Scraper"
	message2 := "Harvests Companies House, merges the industry dataset and exports the master directory"

	fmt.Fprintln(os.Stderr, banner([]string{message1, message2}, 0))
}
