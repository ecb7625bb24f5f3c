package models

// CarouselLayout selects the visual arrangement of carousel slides.
type CarouselLayout string

const (
	CarouselSingle    CarouselLayout = "single"
	CarouselMulti     CarouselLayout = "multi"
	CarouselCentered  CarouselLayout = "centered"
	CarouselFullWidth CarouselLayout = "full-width"
	CarouselThumbnail CarouselLayout = "thumbnail"
)

// IndicatorStyle selects how slide position is shown.
type IndicatorStyle string

const (
	IndicatorDots     IndicatorStyle = "dots"
	IndicatorProgress IndicatorStyle = "progress"
	IndicatorNumbered IndicatorStyle = "numbered"
	IndicatorArrows   IndicatorStyle = "arrows-only"
)

// CarouselConfig controls the sliding widget used by CAROUSEL layouts.
type CarouselConfig struct {
	LayoutType    CarouselLayout `json:"layout_type"`
	IndicatorType IndicatorStyle `json:"indicator_type"`

	ItemsPerView       int `json:"items_per_view"`
	ItemsPerViewTablet int `json:"items_per_view_tablet"`
	ItemsPerViewMobile int `json:"items_per_view_mobile"`

	AutoPlay     bool `json:"auto_play"`
	IntervalMS   int  `json:"interval_ms"`
	PauseOnHover bool `json:"pause_on_hover"`
	Loop         bool `json:"loop"`

	ShowArrows     bool `json:"show_arrows"`
	ShowIndicators bool `json:"show_indicators"`

	TransitionDurationMS int `json:"transition_duration_ms"`
	GapPX                int `json:"gap_px"`

	CenteredSlides bool `json:"centered_slides"`
	PartialVisible bool `json:"partial_visible"`
}

// DefaultCarouselConfig returns the configuration used when a section's
// metadata carries no carousel overrides.
func DefaultCarouselConfig() CarouselConfig {
	return CarouselConfig{
		LayoutType:           CarouselMulti,
		IndicatorType:        IndicatorDots,
		ItemsPerView:         3,
		ItemsPerViewTablet:   2,
		ItemsPerViewMobile:   1,
		AutoPlay:             false,
		IntervalMS:           5000,
		PauseOnHover:         true,
		Loop:                 true,
		ShowArrows:           true,
		ShowIndicators:       true,
		TransitionDurationMS: 400,
		GapPX:                16,
	}
}
