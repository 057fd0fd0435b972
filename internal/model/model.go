package model

// Package model contains the landing page content types.
// Values are defined once in package content and never mutated.

// Icon names a pictogram rendered next to a title. The view maps it to markup.
type Icon string

const (
	IconShieldCheck Icon = "shield-check"
	IconScanLine    Icon = "scan-line"
	IconServerCog   Icon = "server-cog"
	IconFileCheck   Icon = "file-check"
	IconArrowRight  Icon = "arrow-right"
	IconCheckCircle Icon = "check-circle"
	IconGlobe       Icon = "globe"
	IconLayers      Icon = "layers"
	IconMail        Icon = "mail"
)

// Feature is a card in the feature grid.
type Feature struct {
	Icon        Icon   `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SellingPoint is a badge shown under the hero copy.
type SellingPoint struct {
	Label string `json:"label"`
}

// ApproachStep is one of the steps in the hero "approach" card.
type ApproachStep struct {
	Icon        Icon   `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Package is an offering in the package grid. Bullets keep their order.
type Package struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

// FAQEntry is one accordion item. ID is stable and used in URLs.
type FAQEntry struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   RichText `json:"answer"`
}

// SampleArtifact is an inert block of sample text rendered verbatim.
type SampleArtifact struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NavLink is an anchor in the header or footer.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}
