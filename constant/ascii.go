package constant

import _ "embed"

// Banner is printed on bare startup and in the root help.
//
//go:embed ascii.txt
var Banner string
