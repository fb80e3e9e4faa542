package model

// SkinTone is the undertone of a user's skin.
type SkinTone string

// Skin tone constants.
const (
	SkinToneWarm    SkinTone = "warm"
	SkinToneCool    SkinTone = "cool"
	SkinToneNeutral SkinTone = "neutral"
)

// AllSkinTones returns every skin tone.
func AllSkinTones() []SkinTone {
	return []SkinTone{SkinToneWarm, SkinToneCool, SkinToneNeutral}
}

func (s SkinTone) String() string { return string(s) }

// Valid reports whether s is a known skin tone.
func (s SkinTone) Valid() bool { return isMember(s, AllSkinTones()) }

// ParseSkinTone converts user input into a SkinTone.
func ParseSkinTone(s string) (SkinTone, error) {
	return parseEnum("skin tone", s, AllSkinTones())
}

// StylePreference is the overall aesthetic a user gravitates toward.
type StylePreference string

// Style preference constants.
const (
	StyleCasual     StylePreference = "casual"
	StyleFormal     StylePreference = "formal"
	StyleTrendy     StylePreference = "trendy"
	StyleMinimalist StylePreference = "minimalist"
	StyleBohemian   StylePreference = "bohemian"
	StyleClassic    StylePreference = "classic"
)

// AllStylePreferences returns every style preference.
func AllStylePreferences() []StylePreference {
	return []StylePreference{StyleCasual, StyleFormal, StyleTrendy, StyleMinimalist, StyleBohemian, StyleClassic}
}

func (s StylePreference) String() string { return string(s) }

// Valid reports whether s is a known style preference.
func (s StylePreference) Valid() bool { return isMember(s, AllStylePreferences()) }

// ParseStylePreference converts user input into a StylePreference.
func ParseStylePreference(s string) (StylePreference, error) {
	return parseEnum("style preference", s, AllStylePreferences())
}

// BudgetRange is the per-item price band a user shops in.
type BudgetRange string

// Budget range constants.
const (
	BudgetLow  BudgetRange = "low"  // under $50 per item
	BudgetMid  BudgetRange = "mid"  // $50-150 per item
	BudgetHigh BudgetRange = "high" // $150+ per item
)

// AllBudgetRanges returns every budget range.
func AllBudgetRanges() []BudgetRange {
	return []BudgetRange{BudgetLow, BudgetMid, BudgetHigh}
}

func (b BudgetRange) String() string { return string(b) }

// Valid reports whether b is a known budget range.
func (b BudgetRange) Valid() bool { return isMember(b, AllBudgetRanges()) }

// ParseBudgetRange converts user input into a BudgetRange.
func ParseBudgetRange(s string) (BudgetRange, error) {
	return parseEnum("budget range", s, AllBudgetRanges())
}

// Occasion is the context an outfit is chosen for.
type Occasion string

// Occasion constants.
const (
	OccasionEveryday    Occasion = "everyday"
	OccasionWork        Occasion = "work"
	OccasionDate        Occasion = "date"
	OccasionParty       Occasion = "party"
	OccasionFormalEvent Occasion = "formal_event"
	OccasionWorkout     Occasion = "workout"
)

// AllOccasions returns every occasion.
func AllOccasions() []Occasion {
	return []Occasion{
		OccasionEveryday,
		OccasionWork,
		OccasionDate,
		OccasionParty,
		OccasionFormalEvent,
		OccasionWorkout,
	}
}

func (o Occasion) String() string { return string(o) }

// Valid reports whether o is a known occasion.
func (o Occasion) Valid() bool { return isMember(o, AllOccasions()) }

// ParseOccasion converts user input into an Occasion.
func ParseOccasion(s string) (Occasion, error) {
	return parseEnum("occasion", s, AllOccasions())
}

// UserProfile holds semi-permanent user attributes.
type UserProfile struct {
	Measurements *BodyMeasurements `json:"measurements,omitempty"`
	SkinTone     *SkinTone         `json:"skin_tone,omitempty"`
	BodyType     BodyType          `json:"body_type"`
	AgeRange     string            `json:"age_range,omitempty"`    // "18-25", "26-35", ...
	GenderStyle  string            `json:"gender_style,omitempty"` // feminine, masculine, neutral
}

// UserPreferences holds changeable user choices and context.
type UserPreferences struct {
	FavoriteColors  []string        `json:"favorite_colors"`
	DislikedColors  []string        `json:"disliked_colors,omitempty"`
	PreferredBrands []string        `json:"preferred_brands,omitempty"`
	AvoidedBrands   []string        `json:"avoided_brands,omitempty"`
	StylePreference StylePreference `json:"style_preference"`
	BudgetRange     BudgetRange     `json:"budget_range"`
	Occasion        Occasion        `json:"occasion"`
}

// DefaultPreferences returns the preferences used when a caller supplies none.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		FavoriteColors:  []string{"blue", "black", "white"},
		StylePreference: StyleCasual,
		BudgetRange:     BudgetMid,
		Occasion:        OccasionEveryday,
	}
}

// Validate checks that every enum field holds a known member.
func (p UserPreferences) Validate() error {
	if !p.StylePreference.Valid() {
		return invalid("style preference", string(p.StylePreference))
	}
	if !p.BudgetRange.Valid() {
		return invalid("budget range", string(p.BudgetRange))
	}
	if !p.Occasion.Valid() {
		return invalid("occasion", string(p.Occasion))
	}
	return nil
}
