package utils

import (
	"fmt"
	"image/color"
	"regexp"
)

var colourRe = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// ColourValidate reports whether c is an #RRGGBBAA hex colour.
func ColourValidate(c string) bool {
	return colourRe.MatchString(c)
}

func ColourParse(s string) (c color.RGBA) {
	fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	return
}
