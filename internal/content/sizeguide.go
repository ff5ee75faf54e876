// Package content holds the static reference text shown alongside the skip
// offers: the size guide, the FAQ and per-size descriptions.
package content

import "slices"

// SizeGuideEntry describes one skip size in the size guide.
type SizeGuideEntry struct {
	Size           int
	Title          string
	Dimensions     string
	Volume         string
	Capacity       string
	SuitableFor    string
	NotSuitableFor string
}

var sizeGuide = []SizeGuideEntry{
	{
		Size:           4,
		Title:          "4 Yard Skip",
		Dimensions:     "1.8m x 1.5m x 1.2m (L x W x H)",
		Volume:         "4 cubic yards / 3.1 cubic meters",
		Capacity:       "Approx. 40 black bags",
		SuitableFor:    "Small garden waste, kitchen/bathroom renovation, small home clear-outs",
		NotSuitableFor: "Large amounts of heavy materials, large house renovations",
	},
	{
		Size:           6,
		Title:          "6 Yard Skip",
		Dimensions:     "2.4m x 1.5m x 1.4m (L x W x H)",
		Volume:         "6 cubic yards / 4.6 cubic meters",
		Capacity:       "Approx. 60-70 black bags",
		SuitableFor:    "Home renovations, medium garden projects, house clearances",
		NotSuitableFor: "Very heavy materials in large quantities",
	},
	{
		Size:           8,
		Title:          "8 Yard Skip",
		Dimensions:     "3.2m x 1.7m x 1.5m (L x W x H)",
		Volume:         "8 cubic yards / 6.1 cubic meters",
		Capacity:       "Approx. 80-90 black bags",
		SuitableFor:    "Medium-large renovations, commercial projects, larger clearances",
		NotSuitableFor: "Restricted spaces with limited access",
	},
	{
		Size:           10,
		Title:          "10 Yard Skip",
		Dimensions:     "3.6m x 1.8m x 1.6m (L x W x H)",
		Volume:         "10 cubic yards / 7.6 cubic meters",
		Capacity:       "Approx. 100 black bags",
		SuitableFor:    "Large building projects, commercial waste, large clearances",
		NotSuitableFor: "Small residential spaces, areas with restricted access",
	},
	{
		Size:           12,
		Title:          "12 Yard Skip",
		Dimensions:     "3.8m x 1.8m x 1.8m (L x W x H)",
		Volume:         "12 cubic yards / 9.2 cubic meters",
		Capacity:       "Approx. 120 black bags",
		SuitableFor:    "Large commercial projects, construction waste, warehouse clearances",
		NotSuitableFor: "Residential areas with space constraints, heavy soil or concrete",
	},
	{
		Size:           14,
		Title:          "14 Yard Skip",
		Dimensions:     "4.0m x 1.8m x 2.0m (L x W x H)",
		Volume:         "14 cubic yards / 10.7 cubic meters",
		Capacity:       "Approx. 140 black bags",
		SuitableFor:    "Major construction projects, large property renovations, industrial clearances",
		NotSuitableFor: "Small sites, residential streets with limited access",
	},
	{
		Size:           16,
		Title:          "16 Yard Skip",
		Dimensions:     "4.2m x 1.8m x 2.1m (L x W x H)",
		Volume:         "16 cubic yards / 12.2 cubic meters",
		Capacity:       "Approx. 160 black bags",
		SuitableFor:    "Factory clearances, large commercial waste, major construction sites",
		NotSuitableFor: "Urban residential areas, heavy inert materials",
	},
	{
		Size:           20,
		Title:          "20 Yard Skip",
		Dimensions:     "5.0m x 2.3m x 1.8m (L x W x H)",
		Volume:         "20 cubic yards / 15.3 cubic meters",
		Capacity:       "Approx. 200 black bags",
		SuitableFor:    "Major commercial developments, industrial waste, large site clearances",
		NotSuitableFor: "Residential areas, heavy waste materials, limited access sites",
	},
	{
		Size:           40,
		Title:          "40 Yard RORO Skip",
		Dimensions:     "6.1m x 2.5m x 2.7m (L x W x H)",
		Volume:         "40 cubic yards / 30.6 cubic meters",
		Capacity:       "Approx. 400 black bags",
		SuitableFor:    "Major industrial waste, large demolition projects, construction site waste",
		NotSuitableFor: "Any residential area, sites without heavy machinery access",
	},
}

// SizeGuideIntro is shown above the size guide entries.
const SizeGuideIntro = "Use this guide to help choose the right skip size for your project. " +
	"The right size depends on the amount and type of waste you have."

// SizeGuideHelp closes the size guide.
const SizeGuideHelp = "Still unsure? Our customer service team can help you make the best choice."

// SizeGuide returns the size guide entries, smallest first.
func SizeGuide() []SizeGuideEntry {
	return slices.Clone(sizeGuide)
}

// GuideFor returns the size guide entry for size, if there is one.
func GuideFor(size int) (SizeGuideEntry, bool) {
	i := slices.IndexFunc(sizeGuide, func(e SizeGuideEntry) bool { return e.Size == size })
	if i < 0 {
		return SizeGuideEntry{}, false
	}
	return sizeGuide[i], true
}

var descriptions = map[int]string{
	4:  "Ideal for small garden cleanups and minor renovations.",
	5:  "Perfect for medium-sized household waste and small construction projects.",
	6:  "Great for house renovations and garden landscaping projects.",
	8:  "Suitable for larger renovation projects and construction waste.",
	10: "Best for major construction or commercial projects.",
}

// DefaultDescription is used for sizes without a specific description.
const DefaultDescription = "Custom sized skip for your specific needs"

// Description returns the one-line description shown on an offer card.
func Description(size int) string {
	if d, ok := descriptions[size]; ok {
		return d
	}
	return DefaultDescription
}

var binBags = map[int]int{4: 40, 5: 50, 6: 60, 8: 80, 10: 100}

// EstimatedBinBags returns the rough number of standard bin bags a skip of
// the given size holds. Sizes without a table entry use ten bags per yard.
func EstimatedBinBags(size int) int {
	if n, ok := binBags[size]; ok {
		return n
	}
	return size * 10
}
