package sketchybar

import "strconv"

// https://felixkratz.github.io/SketchyBar/config/items
type PaddingOptions struct {
	Left  *int
	Right *int
}

type ColorOptions struct {
	Color string
}

type FontOptions struct {
	Font string
	Kind string
	Size string
}

type BackgroundOptions struct {
	Drawing string
	Color   ColorOptions
}

type ItemIconOptions struct {
	Value   string
	Drawing string
	Font    FontOptions
	Color   ColorOptions
	Padding PaddingOptions
}

type ItemLabelOptions struct {
	Value   string
	Drawing string
	Align   string
	Width   *int
	YOffset *int
	Font    FontOptions
	Color   ColorOptions
	Padding PaddingOptions
}

type ItemOptions struct {
	Display     string
	Drawing     string
	Width       *int
	YOffset     *int
	Updates     string
	UpdateFreq  *int
	Script      string
	ClickScript string
	Padding     PaddingOptions
	Icon        ItemIconOptions
	Label       ItemLabelOptions
	Background  BackgroundOptions
}

type BarOptions struct {
	Position      string
	Height        *int
	Margin        *int
	YOffset       *int
	Topmost       string
	Sticky        string
	Shadow        string
	FontSmoothing string
	Padding       PaddingOptions
	Color         ColorOptions
}

type args []string

func (a args) add(key string, value string) args {
	if value == "" {
		return a
	}
	return append(a, key+"="+value)
}

func (a args) addInt(key string, value *int) args {
	if value == nil {
		return a
	}
	return append(a, key+"="+strconv.Itoa(*value))
}

// addText keeps empty values, sketchybar needs them to clear a label.
func (a args) addText(key string, value *string) args {
	if value == nil {
		return a
	}
	return append(a, key+"="+*value)
}

func (a args) padding(prefix string, p PaddingOptions) args {
	a = a.addInt(prefix+"padding_left", p.Left)
	return a.addInt(prefix+"padding_right", p.Right)
}

func (f FontOptions) String() string {
	if f.Font == "" {
		return ""
	}

	font := f.Font
	if f.Kind != "" {
		font += ":" + f.Kind
	}
	if f.Size != "" {
		font += ":" + f.Size
	}
	return font
}

func (opts ItemOptions) ToArgs() []string {
	a := args{}

	a = a.add("display", opts.Display)
	a = a.add("drawing", opts.Drawing)
	a = a.addInt("width", opts.Width)
	a = a.addInt("y_offset", opts.YOffset)
	a = a.add("updates", opts.Updates)
	a = a.addInt("update_freq", opts.UpdateFreq)
	a = a.add("script", opts.Script)
	a = a.add("click_script", opts.ClickScript)
	a = a.padding("", opts.Padding)

	a = a.add("icon", opts.Icon.Value)
	a = a.add("icon.drawing", opts.Icon.Drawing)
	a = a.add("icon.font", opts.Icon.Font.String())
	a = a.add("icon.color", opts.Icon.Color.Color)
	a = a.padding("icon.", opts.Icon.Padding)

	a = a.add("label", opts.Label.Value)
	a = a.add("label.drawing", opts.Label.Drawing)
	a = a.add("label.align", opts.Label.Align)
	a = a.addInt("label.width", opts.Label.Width)
	a = a.addInt("label.y_offset", opts.Label.YOffset)
	a = a.add("label.font", opts.Label.Font.String())
	a = a.add("label.color", opts.Label.Color.Color)
	a = a.padding("label.", opts.Label.Padding)

	a = a.add("background.drawing", opts.Background.Drawing)
	a = a.add("background.color", opts.Background.Color.Color)

	return a
}

// LabelArgs sets only the label text, including the empty one.
func LabelArgs(value string) []string {
	return args{}.addText("label", &value)
}

func (opts BarOptions) ToArgs() []string {
	a := args{}

	a = a.add("position", opts.Position)
	a = a.addInt("height", opts.Height)
	a = a.addInt("margin", opts.Margin)
	a = a.addInt("y_offset", opts.YOffset)
	a = a.add("topmost", opts.Topmost)
	a = a.add("sticky", opts.Sticky)
	a = a.add("shadow", opts.Shadow)
	a = a.add("font_smoothing", opts.FontSmoothing)
	a = a.padding("", opts.Padding)
	a = a.add("color", opts.Color.Color)

	return a
}
