package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/tampere-gigs/internal/calendar"
	"github.com/pfrederiksen/tampere-gigs/internal/concert"
	"github.com/pfrederiksen/tampere-gigs/internal/logger"
	"github.com/pfrederiksen/tampere-gigs/internal/render"
	"github.com/pfrederiksen/tampere-gigs/internal/scraper"
	"github.com/pfrederiksen/tampere-gigs/internal/site"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagURL      string
	flagVerbose  bool
	flagTemplate string
	flagOut      string
	flagIcons    string
	flagFormat   string
	flagSort     string
	flagAll      bool
)

// now is the reference instant for date resolution and past-gig filtering
var now = time.Now

// NewRootCmd creates the root command. Running it without a subcommand builds the page.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tampere-gigs",
		Short: "Build a static page of upcoming Tampere concerts",
		Long: `Fetches the Tampere concert listing, resolves the day.month. dates of every
gig, and writes the upcoming ones into an HTML page built from a template.`,
		PersistentPreRunE: setupLogging,
		RunE:              runBuild,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cmd.PersistentFlags().StringVar(&flagURL, "url", scraper.ConcertsURL, "Concert listing page to scrape")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.Flags().StringVar(&flagTemplate, "template", site.DefaultTemplatePath, "Page template with {{CONTENT}} and {{UPDATED_AT}} markers")
	cmd.Flags().StringVar(&flagOut, "out", site.DefaultOutputPath, "Output file for the generated page")
	cmd.Flags().StringVar(&flagIcons, "icons", "", "YAML venue icon table (default: bundled table)")

	cmd.AddCommand(newListCmd(), newICSCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the parsed concerts",
		RunE:  runList,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSort, "sort", "date", "Sort order: date, venue, or artist")
	cmd.Flags().BoolVar(&flagAll, "all", false, "Include concerts that have already happened")

	return cmd
}

func newICSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Print the upcoming concerts as an iCalendar feed",
		RunE:  runICS,
	}

	cmd.Flags().BoolVar(&flagAll, "all", false, "Include concerts that have already happened")

	return cmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
	return nil
}

// runBuild fetches, parses, renders, and publishes the page.
// Nothing is written unless every step before the write succeeds.
func runBuild(cmd *cobra.Command, args []string) error {
	start := now()

	icons, err := render.LoadIcons(flagIcons)
	if err != nil {
		return fmt.Errorf("loading venue icons: %w", err)
	}

	concerts, err := fetchConcerts(cmd.Context(), start)
	if err != nil {
		return err
	}

	logger.Info("Generating HTML...", nil)
	logger.SetGauge("concerts.upcoming", float64(len(concert.Upcoming(concerts, start))))
	content := render.Gigs(concerts, start, icons)

	publisher := site.New(flagTemplate, flagOut)
	if err := publisher.Publish(content, now()); err != nil {
		return fmt.Errorf("publishing page: %w", err)
	}

	logger.RecordTiming("build", now().Sub(start))
	logger.Info("Build complete", logger.Fields{"path": publisher.OutputPath()})
	logger.Debug("Run metrics", logger.DefaultMetrics().Snapshot())

	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	format := OutputFormat(flagFormat)
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	order := SortOrder(flagSort)
	if order != SortByDate && order != SortByVenue && order != SortByArtist {
		return fmt.Errorf("invalid sort order: %s (must be 'date', 'venue', or 'artist')", flagSort)
	}

	checkedAt := now()
	concerts, err := fetchConcerts(cmd.Context(), checkedAt)
	if err != nil {
		return err
	}
	if !flagAll {
		concerts = concert.Upcoming(concerts, checkedAt)
	}
	sortConcerts(concerts, order)

	result := &OutputResult{
		CheckedAt:    checkedAt.UTC(),
		Source:       flagURL,
		Concerts:     concerts,
		ConcertCount: len(concerts),
		ShowAll:      flagAll,
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func runICS(cmd *cobra.Command, args []string) error {
	generatedAt := now()
	concerts, err := fetchConcerts(cmd.Context(), generatedAt)
	if err != nil {
		return err
	}
	if !flagAll {
		concerts = concert.Upcoming(concerts, generatedAt)
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), calendar.GenerateICS(concerts, generatedAt)); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// fetchConcerts downloads the listing and extracts its concerts relative to ref
func fetchConcerts(ctx context.Context, ref time.Time) ([]concert.Concert, error) {
	sc := scraper.NewWithURL(flagURL)

	logger.Info("Fetching data...", logger.Fields{"url": sc.URL()})
	page, err := sc.FetchHTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching concerts: %w", err)
	}

	logger.Info("Parsing concerts...", nil)
	concerts, err := scraper.ParseConcerts(strings.NewReader(page), ref)
	if err != nil {
		return nil, fmt.Errorf("parsing concerts: %w", err)
	}
	logger.Info("Found concerts", logger.Fields{"count": len(concerts)})

	return concerts, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.Error("Build failed", nil, err)
		os.Exit(ExitError)
	}
}
