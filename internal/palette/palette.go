package palette

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is used once a palette has no unused color left.
const DefaultColor = "black"

const (
	V2  = "v2"
	BBS = "bbs"
)

type Color struct {
	Value string // as written into outputs: a CSS name or #rrggbb
	Name  string
}

// Hex returns the #rrggbb form of the color.
func (c Color) Hex() string {
	return Hex(c.Value)
}

// IsLight reports whether dark text reads better on top of the color.
func (c Color) IsLight() bool {
	return IsLight(c.Value)
}

type Palette struct {
	ID          string
	Name        string
	Description string
	Colors      []Color
}

func (p Palette) Values() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Value
	}
	return out
}

// Index returns the position of value in the palette, or -1.
func (p Palette) Index(value string) int {
	for i, c := range p.Colors {
		if strings.EqualFold(c.Value, value) {
			return i
		}
	}
	return -1
}

// Next returns the color after value, wrapping around. Values outside the
// palette step to the first color.
func (p Palette) Next(value string, step int) string {
	if len(p.Colors) == 0 {
		return value
	}
	i := p.Index(value)
	if i < 0 {
		return p.Colors[0].Value
	}
	n := len(p.Colors)
	return p.Colors[((i+step)%n+n)%n].Value
}

var palettes = []Palette{
	{
		ID:          V2,
		Name:        "色板v2",
		Description: "31 colors with strong contrast to each other and to a white background. Named colors only where the BBS form exists.",
		Colors: []Color{
			{"black", "黑色"},
			{"silver", "银灰"},
			{"#634200", "深褐"},
			{"#e39700", "暗橙"},
			{"#d4e300", "金色"},
			{"#1ee300", "草绿"},
			{"#26067d", "靛色"},
			{"#c20cf0", "蓝紫"},
			{"#fc6d0d", "阳橙"},
			{"#0dfccc", "蓝绿"},
			{"#095157", "暗岩灰"},
			{"#8a0e1e", "暗红"},
			{"#e31717", "鲜红"},
			{"#1717e3", "蓝色"},
			{"#fc1956", "樱桃红"},
			{"#bd1c72", "品红"},
			{"#b06635", "锗黄"},
			{"#315723", "暗绿"},
			{"#bda855", "暗卡其"},
			{"#9a55bd", "中蓝紫"},
			{"#5ebd5e", "叶绿"},
			{"#65a8c9", "灰蓝"},
			{"#6b88d6", "矢车菊蓝"},
			{"#68bdac", "中碧蓝"},
			{"#575034", "咖啡"},
			{"#d68c81", "玫瑰褐"},
			{"#3d4057", "普鲁士蓝"},
			{"#bd84a2", "火鹤红"},
			{"#574141", "暗灰"},
			{"#ebf0d8", "米黄"},
			{"#eae3fc", "薰衣草紫"},
		},
	},
	{
		ID:          BBS,
		Name:        "BBS颜色",
		Description: "Traditional named colors every BBS accepts. Contrast between them is not guaranteed.",
		Colors: []Color{
			{"black", "黑色"},
			{"silver", "灰色"},
			{"red", "红色"},
			{"green", "绿色"},
			{"orange", "橘色"},
			{"purple", "紫色"},
			{"teal", "蓝绿"},
			{"fuchsia", "桃红"},
			{"yellow", "黄色"},
			{"beige", "米色"},
			{"brown", "棕色"},
			{"navy", "深蓝"},
			{"maroon", "紫红"},
			{"limegreen", "莱姆"},
			{"white", "白色"},
			{"blue", "蓝色"},
			{"pink", "粉红"},
		},
	},
}

// named maps the CSS color names used by the palettes to their hex form.
var named = map[string]string{
	"black":     "#000000",
	"silver":    "#c0c0c0",
	"red":       "#ff0000",
	"green":     "#008000",
	"orange":    "#ffa500",
	"purple":    "#800080",
	"teal":      "#008080",
	"fuchsia":   "#ff00ff",
	"yellow":    "#ffff00",
	"beige":     "#f5f5dc",
	"brown":     "#a52a2a",
	"navy":      "#000080",
	"maroon":    "#800000",
	"limegreen": "#32cd32",
	"white":     "#ffffff",
	"blue":      "#0000ff",
	"pink":      "#ffc0cb",
}

func All() []Palette {
	out := make([]Palette, len(palettes))
	copy(out, palettes)
	return out
}

func IDs() []string {
	ids := make([]string, len(palettes))
	for i, p := range palettes {
		ids[i] = p.ID
	}
	return ids
}

func Lookup(id string) (Palette, bool) {
	for _, p := range palettes {
		if p.ID == id {
			return p, true
		}
	}
	return Palette{}, false
}

func Default() Palette {
	p, _ := Lookup(V2)
	return p
}

// Hex resolves a palette value or any #rgb/#rrggbb string to #rrggbb.
// Unknown values resolve to the hex form of DefaultColor.
func Hex(value string) string {
	if c, ok := parse(value); ok {
		return c.Hex()
	}
	return named[DefaultColor]
}

// IsLight uses YIQ brightness: (299r + 587g + 114b) / 1000 >= 128.
func IsLight(value string) bool {
	c, ok := parse(value)
	if !ok {
		return false
	}
	r, g, b := c.RGB255()
	yiq := (int(r)*299 + int(g)*587 + int(b)*114) / 1000
	return yiq >= 128
}

func parse(value string) (colorful.Color, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if hex, ok := named[v]; ok {
		v = hex
	}
	if !strings.HasPrefix(v, "#") {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
