// Package assets embeds the data files shipped with the game.
package assets

import "embed"

// Fleets holds the ship catalog definitions.
//
//go:embed fleets/*.json
var Fleets embed.FS

// DefaultFleet is the catalog loaded when no other fleet is configured.
const DefaultFleet = "fleets/classic.json"
