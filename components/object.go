package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's hit box in the collision space.
// The box is centred on the entity's hit centre.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData holds the collision space shared by all hit boxes
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()

type PositionData struct {
	X, Y float64
}

var Position = donburi.NewComponentType[PositionData]()
