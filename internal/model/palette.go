package model

import "math/rand/v2"

// DeckColors is the palette a new deck's colour is drawn from.
var DeckColors = []string{
	"#FF6B6B", // red
	"#4ECDC4", // teal
	"#45B7D1", // blue
	"#FDCB82", // orange
	"#6C5CE7", // purple
	"#00B894", // green
	"#FF9FF3", // pink
}

func RandomDeckColor() string {
	return DeckColors[rand.IntN(len(DeckColors))]
}
