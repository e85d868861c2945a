package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/gubarz/actguide/internal/config"
	"github.com/gubarz/actguide/internal/guide"
	"github.com/gubarz/actguide/internal/logging"
	"github.com/gubarz/actguide/internal/output"
	"github.com/gubarz/actguide/internal/parser"
	"github.com/gubarz/actguide/internal/route"
	"github.com/gubarz/actguide/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var (
	cfgFile    string
	logCleanup = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "actguide [path]",
	Short: "Campaign zone layout browser",
	Long: `Browse the zone layouts of a campaign guide written in Markdown.

Act guides hold one table per act: a row of zone names followed by
a row of layout images. Pick a zone to print or copy its layout.`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: prepare,
	RunE:              runBrowse,
}

var parseCmd = &cobra.Command{
	Use:   "parse [path]",
	Short: "Dump the parsed layout data",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <area-id> [path]",
	Short: "Print the layout of one zone by its route ID",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runLookup,
}

var guideCmd = &cobra.Command{
	Use:   "guide <act> [path]",
	Short: "Render an act guide",
	Long: `Render a whole act guide document.

Act 0, or a section name mentioning the introduction or disclaimer,
shows the disclaimer document instead.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGuide,
}

var routeCmd = &cobra.Command{
	Use:   "route <route-file> [path]",
	Short: "List the zones each route section visits",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runRoute,
}

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Report known zones without a parsed layout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(parseCmd, lookupCmd, guideCmd, routeCmd, checkCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.config/actguide/actguide.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output mode: print, copy")
	rootCmd.PersistentFlags().Bool("copy", false, "Copy to clipboard (shorthand for -o copy)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format: text, json, yaml, html")
	rootCmd.PersistentFlags().String("image-base", "", "URL prefix for layout images")
	rootCmd.PersistentFlags().String("zone-names", "", "YAML file overriding zone ID names")
	rootCmd.PersistentFlags().String("log-file", "", "Write debug logs to this file")

	rootCmd.Flags().StringP("query", "q", "", "Initial search query")

	parseCmd.Flags().BoolP("benchmark", "b", false, "Benchmark load time and exit")
	lookupCmd.Flags().Int("act", 0, "Only search this act")
	guideCmd.Flags().String("section", "", "Route section name")
	guideCmd.Flags().Bool("html", false, "Render HTML with inline images")

	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("image_base", rootCmd.PersistentFlags().Lookup("image-base"))
	viper.BindPFlag("zone_names", rootCmd.PersistentFlags().Lookup("zone-names"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	if err := config.Init(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// prepare applies flag shorthands to the config and sets up logging
func prepare(cmd *cobra.Command, args []string) error {
	if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput("copy")
	}

	cleanup, err := logging.Init(config.GetLogLevel(), config.GetLogFile())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	logCleanup = cleanup
	slog.Debug("starting", "command", cmd.Name(), "version", version)
	return nil
}

// newPrinter builds the printer for the configured output mode and format
func newPrinter() (*output.Printer, error) {
	mode, err := output.ParseMode(config.GetOutput())
	if err != nil {
		return nil, err
	}
	format, err := output.ParseFormat(config.GetFormat())
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(mode, format), nil
}

// pathArg records args[i] as the guide path when present and returns the
// effective path
func pathArg(args []string, i int) string {
	if len(args) > i {
		config.SetPath(args[i])
	}
	return config.GetPath()
}

func runBrowse(cmd *cobra.Command, args []string) error {
	path := pathArg(args, 0)
	data, err := loadLayout(path)
	if err != nil {
		return err
	}
	if data.ZoneCount() == 0 {
		return fmt.Errorf("no zones found in %s", path)
	}

	printer, err := newPrinter()
	if err != nil {
		return err
	}

	query, _ := cmd.Flags().GetString("query")
	return ui.RunTUI(data, guideLoader(path), printer, ui.Options{
		InitialQuery: query,
		GuideStyle:   config.GetGuideStyle(),
		WordWrap:     config.GetWordWrap(),
	})
}

func runParse(cmd *cobra.Command, args []string) error {
	start := time.Now()
	data, err := loadLayout(pathArg(args, 0))
	if err != nil {
		return err
	}

	if benchmark, _ := cmd.Flags().GetBool("benchmark"); benchmark {
		elapsed := time.Since(start)
		runtime.GC()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		fmt.Printf("Loaded %d zones in %d acts in %v\n", data.ZoneCount(), len(data), elapsed)
		fmt.Printf("Memory: Alloc=%dMB, TotalAlloc=%dMB, Sys=%dMB, HeapObjects=%d\n",
			m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024, m.HeapObjects)
		return nil
	}

	printer, err := newPrinter()
	if err != nil {
		return err
	}
	return printer.Layout(data)
}

func runLookup(cmd *cobra.Command, args []string) error {
	areaID := args[0]
	act, _ := cmd.Flags().GetInt("act")

	data, err := loadLayout(pathArg(args, 1))
	if err != nil {
		return err
	}
	table, err := zoneTable()
	if err != nil {
		return err
	}

	zone, ok := parser.LookupIn(table, areaID, act, data)
	if !ok {
		if act > 0 {
			return fmt.Errorf("no layout for zone %s in act %d", areaID, act)
		}
		return fmt.Errorf("no layout for zone %s", areaID)
	}

	printer, err := newPrinter()
	if err != nil {
		return err
	}
	return printer.Zone(zone)
}

func runGuide(cmd *cobra.Command, args []string) error {
	act, err := strconv.Atoi(args[0])
	if err != nil || act < 0 {
		return fmt.Errorf("invalid act %q", args[0])
	}
	section, _ := cmd.Flags().GetString("section")
	if asHTML, _ := cmd.Flags().GetBool("html"); asHTML {
		config.SetFormat(string(output.FormatHTML))
	}

	g, err := guideLoader(pathArg(args, 1)).Load(act, section)
	if err != nil {
		return err
	}

	printer, err := newPrinter()
	if err != nil {
		return err
	}

	var rendered string
	if printer.Format() == output.FormatHTML {
		rendered, err = guide.HTML(g)
	} else {
		rendered, err = guide.Terminal(g, config.GetWordWrap(), config.GetGuideStyle())
	}
	if err != nil {
		return err
	}
	return printer.Raw(rendered)
}

func runRoute(cmd *cobra.Command, args []string) error {
	r, err := route.Load(args[0])
	if err != nil {
		return err
	}

	path := pathArg(args, 1)
	data, err := loadLayout(path)
	if err != nil {
		return err
	}
	table, err := zoneTable()
	if err != nil {
		return err
	}

	report := routeReport(r, data, table, guideLoader(path))

	printer, err := newPrinter()
	if err != nil {
		return err
	}
	return printer.Value(report, routeText(report))
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := loadLayout(pathArg(args, 0))
	if err != nil {
		return err
	}
	table, err := zoneTable()
	if err != nil {
		return err
	}

	missing := parser.MissingZones(table, data)
	if len(missing) > 0 {
		slog.Warn("zones without layout", "count", len(missing))
	}

	printer, err := newPrinter()
	if err != nil {
		return err
	}
	return printer.Value(missing, checkText(missing))
}

func main() {
	rootCmd.Version = version
	err := rootCmd.Execute()
	logCleanup()
	if err != nil {
		os.Exit(1)
	}
}
