package assets

import (
	"embed"
	"path"

	"github.com/automoto/dreadhall/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the level the game starts on.
const DefaultLevel = "manor"

// LoadLevel parses an embedded level by stem name.
func LoadLevel(name string) (*leveldata.Level, error) {
	return leveldata.Load(assetFS, path.Join("levels", name+".tmx"))
}
