package site

// Icon is a glyph the presentation layer knows how to render. The set is
// closed; configuration refers to icons by their String name.
type Icon int

// Known icons. IconSmile is the fallback for unknown names.
const (
	IconSmile Icon = iota
	IconSparkles
	IconCircleDot
	IconSyringe
	IconScanLine
	IconStethoscope
	IconTooth
	IconShield
	IconAward
	IconHeart
	IconHeartHandshake
	IconStar
	IconUsers
	IconClock
	IconGlobe
	IconThumbsUp
	IconCalendar
	IconPhone
	IconMail
	IconMapPin
	IconCheckCircle
	IconMessageCircle
)

// DefaultIcon replaces any unknown icon name.
const DefaultIcon = IconSmile

var iconNames = [...]string{
	IconSmile:          "Smile",
	IconSparkles:       "Sparkles",
	IconCircleDot:      "CircleDot",
	IconSyringe:        "Syringe",
	IconScanLine:       "ScanLine",
	IconStethoscope:    "Stethoscope",
	IconTooth:          "Tooth",
	IconShield:         "Shield",
	IconAward:          "Award",
	IconHeart:          "Heart",
	IconHeartHandshake: "HeartHandshake",
	IconStar:           "Star",
	IconUsers:          "Users",
	IconClock:          "Clock",
	IconGlobe:          "Globe",
	IconThumbsUp:       "ThumbsUp",
	IconCalendar:       "Calendar",
	IconPhone:          "Phone",
	IconMail:           "Mail",
	IconMapPin:         "MapPin",
	IconCheckCircle:    "CheckCircle",
	IconMessageCircle:  "MessageCircle",
}

var iconsByName = func() map[string]Icon {
	m := make(map[string]Icon, len(iconNames))
	for i, name := range iconNames {
		m[name] = Icon(i)
	}
	return m
}()

func (i Icon) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return iconNames[DefaultIcon]
	}
	return iconNames[i]
}

// ParseIcon looks an icon up by its exact name.
func ParseIcon(name string) (Icon, bool) {
	icon, ok := iconsByName[name]
	return icon, ok
}

// Icons returns every known icon in declaration order.
func Icons() []Icon {
	out := make([]Icon, len(iconNames))
	for i := range iconNames {
		out[i] = Icon(i)
	}
	return out
}
