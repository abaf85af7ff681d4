package calendarview

import (
	"time"

	"golang.org/x/text/language"
)

// Regions whose weeks do not start on Monday. Everything else is Monday-first.
var (
	sundayFirstRegions = map[string]bool{
		"AG": true, "AS": true, "AU": true, "BD": true, "BR": true, "BS": true, "BT": true,
		"BW": true, "BZ": true, "CA": true, "CN": true, "CO": true, "DM": true, "DO": true,
		"ET": true, "GT": true, "GU": true, "HK": true, "HN": true, "ID": true, "IL": true,
		"IN": true, "JM": true, "JP": true, "KE": true, "KH": true, "KR": true, "LA": true,
		"MH": true, "MM": true, "MO": true, "MT": true, "MX": true, "MZ": true, "NI": true,
		"NP": true, "PA": true, "PE": true, "PH": true, "PK": true, "PR": true, "PT": true,
		"PY": true, "SA": true, "SG": true, "SV": true, "TH": true, "TT": true, "TW": true,
		"UM": true, "US": true, "VE": true, "VI": true, "WS": true, "YE": true, "ZA": true,
		"ZW": true,
	}
	saturdayFirstRegions = map[string]bool{
		"AE": true, "AF": true, "BH": true, "DJ": true, "DZ": true, "EG": true, "IQ": true,
		"IR": true, "JO": true, "KW": true, "LY": true, "OM": true, "QA": true, "SD": true,
		"SY": true,
	}
	fridayFirstRegions = map[string]bool{"MV": true}
)

// FirstWeekdayForLocale returns the conventional first day of the week for tag.
// When the tag carries no region, the most likely region for its language is used.
func FirstWeekdayForLocale(tag language.Tag) time.Weekday {
	region, _ := tag.Region()
	code := region.String()
	switch {
	case sundayFirstRegions[code]:
		return time.Sunday
	case saturdayFirstRegions[code]:
		return time.Saturday
	case fridayFirstRegions[code]:
		return time.Friday
	default:
		return time.Monday
	}
}

// WithLocale sets the first weekday from a BCP 47 language tag.
func WithLocale(tag language.Tag) GregorianOption {
	return WithFirstWeekday(FirstWeekdayForLocale(tag))
}
