package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// Banner is the ASCII art shown above the main menu.
//
//go:embed defaults/banner.txt
var Banner string
