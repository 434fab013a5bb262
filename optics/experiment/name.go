package experiment

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"amber", "bright", "broken", "clear", "cold", "crimson", "curved", "dim",
		"distant", "faint", "fast", "flat", "glancing", "golden", "grazing",
		"hidden", "hollow", "keen", "late", "lone", "mirrored", "misty", "narrow",
		"pale", "patient", "polished", "quiet", "restless", "scattered", "sharp",
		"silent", "silver", "slanted", "soft", "still", "straight", "swift",
		"thin", "twilight", "violet", "wandering", "wide", "winter", "young",
	}

	nouns = []string{
		"arc", "beam", "beacon", "chord", "circle", "corner", "corridor", "echo",
		"edge", "fan", "flare", "glint", "gleam", "halo", "horizon", "lamp",
		"lantern", "lens", "line", "maze", "mirror", "orbit", "path", "pillar",
		"prism", "pulse", "ray", "ring", "road", "room", "shadow", "spark",
		"sweep", "trace", "tunnel", "wall", "wave", "window",
	}
)

// GenerateRunName creates a memorable run identifier in the format
// "adjective-noun"
func GenerateRunName(rng *rand.Rand) string {
	adj := adjectives[rng.Intn(len(adjectives))]
	noun := nouns[rng.Intn(len(nouns))]
	return adj + "-" + noun
}

// GenerateRunID combines a memorable name with the timestamp t, so IDs sort
// by creation time within a name
func GenerateRunID(t time.Time) string {
	rng := rand.New(rand.NewSource(t.UnixNano()))
	return GenerateRunName(rng) + "-" + t.UTC().Format("20060102-150405.000")
}
