package asset

import "strings"

// DefaultArt is the built-in banner scrolled when no art file is given.
const DefaultArt = ` ____  ____  _        _    ____  _   _
/ ___||  _ \| |      / \  / ___|| | | |
\___ \| |_) | |     / _ \ \___ \| |_| |
 ___) |  __/| |___ / ___ \ ___) |  _  |
|____/|_|   |_____/_/   \_\____/|_| |_|`

// DefaultArtLines returns the built-in banner split into lines.
func DefaultArtLines() []string {
	return strings.Split(DefaultArt, "\n")
}
