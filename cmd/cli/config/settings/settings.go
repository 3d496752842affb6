package settings

import "github.com/lucax88x/ordklocka/cmd/cli/config/settings/colors"

const (
	FifoPath    = "/tmp/ordklocka"
	PidFilePath = "/tmp/ordklocka.pid"

	FontLabel = "SF Pro"
	FontIcon  = "SF Pro"
)

type RegionSettings struct {
	Width      *int
	LineOffset *int
	FontSize   string
}

type Settings struct {
	BarBackgroundColor string
	BarHeight          *int
	BarMargin          *int
	ItemSpacing        *int
	IconPadding        *int
	LabelColor         string
	LabelFont          string
	LabelFontBold      string
	LabelFontRegular   string
	LabelFontSize      string
	IconColor          string
	Region             RegionSettings
}

//nolint:gochecknoglobals // ok
var Sketchybar = Settings{
	BarBackgroundColor: colors.Transparent,
	BarHeight:          pointer(35),
	BarMargin:          pointer(0),
	ItemSpacing:        pointer(2),
	IconPadding:        pointer(12),
	LabelColor:         colors.White,
	LabelFont:          FontLabel,
	LabelFontBold:      "Bold",
	LabelFontRegular:   "Regular",
	LabelFontSize:      "14.0",
	IconColor:          colors.White,
	Region: RegionSettings{
		Width:      pointer(64),
		LineOffset: pointer(10),
		FontSize:   "9.0",
	},
}

func pointer(i int) *int {
	return &i
}
