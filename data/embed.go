// Package data embeds the puzzle collection shipped with the game.
package data

import "embed"

// dataFS embeds all JSON files from the data directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing game data.
func FS() embed.FS {
	return dataFS
}

// PuzzlesFile is the name of the embedded puzzle collection.
const PuzzlesFile = "puzzles.json"
