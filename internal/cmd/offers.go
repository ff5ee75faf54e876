package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/catalog"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/config"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/filter"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/logging"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/pricing"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the catalog requests in flight for one
// invocation of the offers command.
const maxConcurrentFetches = 4

var offersCmd = &cobra.Command{
	Use:   "offers [postcode:area...]",
	Short: "List the skip offers for one or more locations",
	Long: `List the skip offers available at one or more locations without
opening the selector.

Each location is given as postcode:area, e.g. NR32:Lowestoft. Without
arguments the configured location is used. Locations are fetched
concurrently; the command fails if any fetch fails.

Examples:
  skipselect offers
  skipselect offers NR32:Lowestoft --road
  skipselect offers NR32:Lowestoft LS1:Leeds --json`,
	RunE: runOffers,
}

var (
	offersJSON  bool
	offersRoad  bool
	offersHeavy bool
)

func init() {
	offersCmd.Flags().BoolVar(&offersJSON, "json", false, "print the offers as JSON")
	offersCmd.Flags().BoolVar(&offersRoad, "road", false, "only show skips allowed on the road")
	offersCmd.Flags().BoolVar(&offersHeavy, "heavy", false, "only show skips that allow heavy waste")
	rootCmd.AddCommand(offersCmd)
}

// location is a postcode and area pair.
type location struct {
	Postcode string `json:"postcode"`
	Area     string `json:"area"`
}

// parseLocation parses a postcode:area argument.
func parseLocation(arg string) (location, error) {
	postcode, area, ok := strings.Cut(arg, ":")
	postcode, area = strings.TrimSpace(postcode), strings.TrimSpace(area)
	if !ok || postcode == "" || area == "" {
		return location{}, fmt.Errorf("%w: location %q must be postcode:area", errors.ErrInvalidInput, arg)
	}
	return location{Postcode: postcode, Area: area}, nil
}

// offerRow is the printed form of one offer.
type offerRow struct {
	ID               int64   `json:"id"`
	Size             int     `json:"size"`
	HirePeriodDays   int     `json:"hire_period_days"`
	AllowedOnRoad    bool    `json:"allowed_on_road"`
	AllowsHeavyWaste bool    `json:"allows_heavy_waste"`
	Forbidden        bool    `json:"forbidden"`
	PriceBeforeVAT   float64 `json:"price_before_vat"`
	VATAmount        float64 `json:"vat_amount"`
	Total            float64 `json:"total"`
}

// locationOffers is the result for one location.
type locationOffers struct {
	location
	Count  int        `json:"count"`
	Offers []offerRow `json:"offers"`
}

func newOfferRow(o skip.Offer) offerRow {
	return offerRow{
		ID:               o.ID,
		Size:             o.Size,
		HirePeriodDays:   o.HirePeriodDays,
		AllowedOnRoad:    o.AllowedOnRoad,
		AllowsHeavyWaste: o.AllowsHeavyWaste,
		Forbidden:        o.Forbidden,
		PriceBeforeVAT:   o.PriceBeforeVAT,
		VATAmount:        pricing.VATAmount(o),
		Total:            pricing.TotalPrice(o),
	}
}

func runOffers(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	locations := []location{{Postcode: cfg.Catalog.Postcode, Area: cfg.Catalog.Area}}
	if len(args) > 0 {
		locations = locations[:0]
		for _, arg := range args {
			loc, err := parseLocation(arg)
			if err != nil {
				return err
			}
			locations = append(locations, loc)
		}
	}

	filters := filter.State{AllowedOnRoad: offersRoad, AllowsHeavyWaste: offersHeavy}
	offers, err := fetchLocations(cmd.Context(), newFetcher(cfg, logging.NopLogger()), locations)
	if err != nil {
		return err
	}

	results := make([]locationOffers, len(locations))
	visible := make([][]skip.Offer, len(locations))
	for i, loc := range locations {
		visible[i] = filters.Apply(offers[i])
		rows := make([]offerRow, len(visible[i]))
		for j, o := range visible[i] {
			rows[j] = newOfferRow(o)
		}
		results[i] = locationOffers{location: loc, Count: len(rows), Offers: rows}
	}

	out := cmd.OutOrStdout()
	if offersJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printLocationOffers(out, res, visible[i])
	}
	return nil
}

// fetchLocations fetches every location concurrently. The result is in the
// order of locations; the first failure cancels the remaining fetches.
func fetchLocations(ctx context.Context, f catalog.Fetcher, locations []location) ([][]skip.Offer, error) {
	results := make([][]skip.Offer, len(locations))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, loc := range locations {
		i, loc := i, loc
		g.Go(func() error {
			offers, err := f.FetchOffers(ctx, loc.Postcode, loc.Area)
			if err != nil {
				return errors.Wrapf(err, "fetch offers for %s, %s", loc.Postcode, loc.Area)
			}
			results[i] = offers
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printLocationOffers(w io.Writer, res locationOffers, offers []skip.Offer) {
	fmt.Fprintln(w, styles.Title.Render(res.Postcode+", "+res.Area))
	if len(res.Offers) == 0 {
		fmt.Fprintln(w, "No skips match the selected filters.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderColor)).
		Headers("ID", "Size", "Hire", "Road", "Heavy", "Before VAT", "VAT", "Total")
	for _, r := range res.Offers {
		t.Row(
			strconv.FormatInt(r.ID, 10),
			strconv.Itoa(r.Size)+" yd",
			strconv.Itoa(r.HirePeriodDays)+" days",
			styles.Check(r.AllowedOnRoad),
			styles.Check(r.AllowsHeavyWaste),
			pricing.FormatCurrency(r.PriceBeforeVAT),
			pricing.FormatCurrency(r.VATAmount),
			pricing.FormatCurrency(r.Total),
		)
	}
	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, pricing.Summarize(offers).String())
}
