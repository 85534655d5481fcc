// Package data embeds the currency word table and other data files.
package data

import _ "embed"

//go:embed currencies.yaml
var Currencies []byte
