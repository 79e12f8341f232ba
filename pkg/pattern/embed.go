package pattern

import "embed"

// builtinPatternsFS embeds the built-in patterns directory.
//
//go:embed patterns/*.yml
var builtinPatternsFS embed.FS
