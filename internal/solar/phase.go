package solar

// Phase is exhibited by grandchild objects in orbit, as the light from a
// planet's parent hits the planet's children. The eight values cover one
// full revolution starting from a fully lit disk.
type Phase int

const (
	Full Phase = iota
	WaningGibbous
	ThirdQuarter
	WaningCrescent
	New
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
)

var phaseDescriptions = [...]string{
	Full:           "a brilliant gleaming disk in the dark",
	WaningGibbous:  "in waning gibbous, beginning to retreat into darkness",
	ThirdQuarter:   "in the half-shadow of the third quarter",
	WaningCrescent: "in waning crescent, nearly covered in darkness",
	New:            "a silky hole in the starry sky",
	WaxingCrescent: "in waxing crescent, light creeping out",
	FirstQuarter:   "in the half-light of the first quarter",
	WaxingGibbous:  "in waxing gibbous, nearly fully lit",
}

var phaseGlyphs = [...]string{
	Full:           "🌕",
	WaningGibbous:  "🌖",
	ThirdQuarter:   "🌗",
	WaningCrescent: "🌘",
	New:            "🌑",
	WaxingCrescent: "🌒",
	FirstQuarter:   "🌓",
	WaxingGibbous:  "🌔",
}

// String returns a flavorful description of the phase.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseDescriptions) {
		return "unknown"
	}
	return phaseDescriptions[p]
}

// Unicode maps the phase to a moon glyph.
func (p Phase) Unicode() string {
	if p < 0 || int(p) >= len(phaseGlyphs) {
		return "?"
	}
	return phaseGlyphs[p]
}
