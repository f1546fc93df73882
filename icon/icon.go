// Package icon renders UI symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/nasaimg/nasaimg/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants lists the supported icon variants.
func AvailableVariants() []string {
	return []string{emoji, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Image
	Video
	Audio
	Unknown
)

type iconDef struct {
	emoji   string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "💀", plain: "✗", squares: "🟥"},
	Progress: {emoji: "🛰️", plain: "…", squares: "🟦"},
	Image:    {emoji: "🖼️", plain: "img", squares: "🟨"},
	Video:    {emoji: "🎬", plain: "vid", squares: "🟪"},
	Audio:    {emoji: "🎧", plain: "aud", squares: "🟧"},
	Unknown:  {emoji: "❔", plain: "?", squares: "⬜"},
}

// Get returns the rendering of i for the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}

// ForMediaType maps an API media_type value to its icon.
func ForMediaType(mediaType string) Icon {
	switch mediaType {
	case "image":
		return Image
	case "video":
		return Video
	case "audio":
		return Audio
	default:
		return Unknown
	}
}
