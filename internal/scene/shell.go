// Package scene composes the renderable view of a room: the static shell, one
// node per placed furniture item, and the loading progress of their assets.
package scene

import (
	"math"

	"github.com/angelmondragon/hotelsuite/pkg/geometry"
)

// Surface is a textured face of the room shell. Repeat tiles the texture along
// the face's width and height.
type Surface struct {
	Texture string     `json:"texture"`
	Repeat  [2]float64 `json:"repeat"`
}

// RoomShell is the static box around the furniture. The floor is centred on the
// origin at y = 0.
type RoomShell struct {
	Width   float64 `json:"width"`
	Depth   float64 `json:"depth"`
	Height  float64 `json:"height"`
	Floor   Surface `json:"floor"`
	Walls   Surface `json:"walls"`
	Ceiling Surface `json:"ceiling"`
}

// Panel is one flat face of the shell placed in room space.
type Panel struct {
	Name     string         `json:"name"`
	Position geometry.Vec3  `json:"position"`
	Rotation geometry.Euler `json:"rotation"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Surface  Surface        `json:"surface"`
}

func DefaultShell() RoomShell {
	return RoomShell{
		Width:   20,
		Depth:   20,
		Height:  4,
		Floor:   Surface{Texture: "textures/parquet.jpg", Repeat: [2]float64{8, 8}},
		Walls:   Surface{Texture: "textures/plaster.jpg", Repeat: [2]float64{4, 1}},
		Ceiling: Surface{Texture: "textures/ceiling.jpg", Repeat: [2]float64{4, 4}},
	}
}

// Panels returns floor, four walls and ceiling, each facing into the room.
func (s RoomShell) Panels() []Panel {
	halfW, halfD, midH := s.Width/2, s.Depth/2, s.Height/2
	return []Panel{
		{Name: "floor", Rotation: geometry.Euler{X: -math.Pi / 2}, Width: s.Width, Height: s.Depth, Surface: s.Floor},
		{Name: "wall-north", Position: geometry.Vec3{Y: midH, Z: -halfD}, Width: s.Width, Height: s.Height, Surface: s.Walls},
		{Name: "wall-south", Position: geometry.Vec3{Y: midH, Z: halfD}, Rotation: geometry.Euler{Y: math.Pi}, Width: s.Width, Height: s.Height, Surface: s.Walls},
		{Name: "wall-east", Position: geometry.Vec3{X: halfW, Y: midH}, Rotation: geometry.Euler{Y: -math.Pi / 2}, Width: s.Depth, Height: s.Height, Surface: s.Walls},
		{Name: "wall-west", Position: geometry.Vec3{X: -halfW, Y: midH}, Rotation: geometry.Euler{Y: math.Pi / 2}, Width: s.Depth, Height: s.Height, Surface: s.Walls},
		{Name: "ceiling", Position: geometry.Vec3{Y: s.Height}, Rotation: geometry.Euler{X: math.Pi / 2}, Width: s.Width, Height: s.Depth, Surface: s.Ceiling},
	}
}

// Textures lists the distinct texture paths of the shell.
func (s RoomShell) Textures() []string {
	seen := map[string]bool{}
	var out []string
	for _, surface := range []Surface{s.Floor, s.Walls, s.Ceiling} {
		if surface.Texture == "" || seen[surface.Texture] {
			continue
		}
		seen[surface.Texture] = true
		out = append(out, surface.Texture)
	}
	return out
}
