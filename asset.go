package figyaml

import (
	"regexp"
	"strings"
)

var (
	unsafeCharsRe = regexp.MustCompile(`[^\w\s-]`)
	separatorsRe  = regexp.MustCompile(`[\s_]+`)
	nonAlnumRe    = regexp.MustCompile(`[^0-9A-Za-z]+`)
)

// Default Figma layer names carry no signal; asset paths built from them
// get a node-id suffix to avoid collisions.
var genericAssetNames = map[string]bool{
	"vector":    true,
	"rectangle": true,
	"ellipse":   true,
	"shape":     true,
	"image":     true,
	"unnamed":   true,
	"layer":     true,
}

// SanitizeName lowercases a layer name and collapses it into a token safe
// for file names and asset paths.
func SanitizeName(name string) string {
	name = strings.ToLower(name)
	name = unsafeCharsRe.ReplaceAllString(name, "")
	name = separatorsRe.ReplaceAllString(name, "_")
	return strings.Trim(name, "_")
}

// IconAssetPath returns the local asset path an icon node is expected to
// resolve to once assets are extracted.
func IconAssetPath(nodeID, name string) string {
	return "assets/icons/" + assetName(nodeID, name) + ".svg"
}

// ImageAssetPath returns the local asset path an image node is expected to
// resolve to once assets are extracted.
func ImageAssetPath(nodeID, name string) string {
	return "assets/images/" + assetName(nodeID, name) + ".png"
}

func assetName(nodeID, name string) string {
	safe := SanitizeName(name)
	if safe == "" || genericAssetNames[safe] {
		if safe == "" {
			safe = "asset"
		}
		safe += "_" + nonAlnumRe.ReplaceAllString(nodeID, "_")
	}
	return safe
}
