package poetry

// Page identifies which of the three screens is showing.
type Page string

const (
	PagePortal      Page = "portal"
	PageJourney     Page = "journey"
	PageEnchantment Page = "enchantment"
)

// ThemeKey selects a visual palette.
type ThemeKey string

const (
	ThemeMystical  ThemeKey = "mystical"
	ThemeSunset    ThemeKey = "sunset"
	ThemeMoonlight ThemeKey = "moonlight"
)

// StyleKey selects the poetic style requested from the generator. The zero
// value means no style has been chosen yet.
type StyleKey string

const (
	StyleUnselected StyleKey = ""
	StyleClassical  StyleKey = "classical"
	StyleModern     StyleKey = "modern"
	StyleRomantic   StyleKey = "romantic"
	StyleSpiritual  StyleKey = "spiritual"
	StyleCelebrate  StyleKey = "celebrate"
)

// DefaultTheme is the theme a new session starts with.
const DefaultTheme = ThemeMystical

// Request is the input to a single poem generation.
type Request struct {
	Mood  string   `json:"mood" validate:"required"`
	Style StyleKey `json:"style" validate:"required,poetry_style"`
}

// Result is the outcome of one generation attempt: either a poem or an error.
type Result struct {
	Poem string
	Err  error
}

// OK reports whether the result carries a poem.
func (r Result) OK() bool {
	return r.Err == nil
}

// Succeeded builds a successful Result.
func Succeeded(poem string) Result {
	return Result{Poem: poem}
}

// Failed builds a failed Result.
func Failed(err error) Result {
	return Result{Err: err}
}
