package config

import "image/color"

// ArenaConfig is the root config for arena JSON files
type ArenaConfig struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Size        ArenaSizeConfig  `json:"size"`
	GroundY     float64          `json:"groundY"`
	PlayerSpawn PositionConfig   `json:"playerSpawn"`
	Background  BackgroundConfig `json:"background"`
}

type ArenaSizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type BackgroundConfig struct {
	Sky    RGB `json:"sky"`
	Ground RGB `json:"ground"`
	Grid   int `json:"grid"` // Spacing of the parallax grid lines, 0 disables
}

// RGB is a color stored as [r, g, b]
type RGB [3]uint8

// Color converts to an opaque color.RGBA
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
