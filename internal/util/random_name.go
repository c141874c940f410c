package util

import (
	"fmt"

	"xidach-server/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Lucky", "Lazy", "Bold", "Gracious", "Happy", "Funny", "Sleepy",
	"Red", "Golden", "Green", "Jade", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Wise",
	"Humble", "Dancing", "Flying", "Jumping", "Charging", "Bouncing",
}

var animals = []string{
	"Buffalo", "Tiger", "Cat", "Dragon", "Snake", "Horse", "Goat", "Monkey", "Rooster", "Dog",
	"Pig", "Rat", "Crane", "Carp", "Turtle", "Phoenix", "Gecko", "Otter", "Panda", "Fox",
}

// GetRandomName returns a nickname made of an adjective and an animal
func GetRandomName(gen rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[gen.Intn(len(adjectives))], animals[gen.Intn(len(animals))])
}
