package content

import "slices"

// FAQItem is one question and answer.
type FAQItem struct {
	Question string
	Answer   string
}

var faq = []FAQItem{
	{
		Question: "How do I choose the right skip size?",
		Answer: "Consider the amount and type of waste you have. Small skips (4 yards) are good for minor home projects, " +
			"medium skips (5-6 yards) for home renovations, and larger skips (8-10 yards) for major construction or clearance projects.",
	},
	{
		Question: "Do I need a permit for placing a skip?",
		Answer: "If the skip will be placed on a public road, you will need a permit. " +
			"Skips placed on private property (like your driveway) don't require permits.",
	},
	{
		Question: `What does "allows heavy waste" mean?`,
		Answer: "Skips that allow heavy waste are designed to handle materials like soil, rubble, concrete, and bricks. " +
			"If your waste includes these materials, make sure to select a skip that allows heavy waste.",
	},
	{
		Question: "How long can I keep the skip?",
		Answer: "Our standard hire period is 14 days, but this can be extended for an additional fee if needed. " +
			"Please contact our customer service team to arrange an extension.",
	},
	{
		Question: "What types of waste are prohibited in skips?",
		Answer: "Prohibited items include hazardous waste, electronics, batteries, tires, liquids, gas cylinders, asbestos, " +
			"plasterboard (in some cases), and certain types of chemicals. Check with us before disposing of any questionable items.",
	},
}

// FAQ returns the frequently asked questions in display order.
func FAQ() []FAQItem {
	return slices.Clone(faq)
}

// Step is one stage of the hire flow shown in the progress indicator.
type Step struct {
	Icon  string
	Label string
}

var steps = []Step{
	{Icon: "📍", Label: "Postcode"},
	{Icon: "🗑", Label: "Waste Type"},
	{Icon: "📦", Label: "Select Skip"},
	{Icon: "🔍", Label: "Permit Check"},
	{Icon: "📅", Label: "Choose Date"},
	{Icon: "💳", Label: "Payment"},
}

// SelectSkipStep is the index of the skip selection step in Steps.
const SelectSkipStep = 2

// Steps returns the hire flow steps in order.
func Steps() []Step {
	return slices.Clone(steps)
}
