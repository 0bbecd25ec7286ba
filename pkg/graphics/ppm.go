package graphics

import (
	"fmt"
	"math"
	"strings"
)

// ppmMaxLineLen is the longest pixel-data line the plain PPM format
// allows some viewers to read reliably.
const ppmMaxLineLen = 70

// ToPPM encodes the canvas in the plain-text PPM (P3) format: a
// three-line header, then one sequence of scaled pixel triples per
// canvas row, greedily wrapped so no line exceeds 70 characters. The
// output always ends with a newline.
func ToPPM(c *Canvas) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "P3\n%d %d\n255\n", c.Width(), c.Height())

	for y := 0; y < c.Height(); y++ {
		lineLen := 0
		for x := 0; x < c.Width(); x++ {
			px := c.PixelAt(x, y)
			for _, v := range [3]int{scaleChannel(px.R), scaleChannel(px.G), scaleChannel(px.B)} {
				s := fmt.Sprintf("%d", v)
				switch {
				case lineLen == 0:
					sb.WriteString(s)
					lineLen = len(s)
				case lineLen+1+len(s) <= ppmMaxLineLen:
					sb.WriteByte(' ')
					sb.WriteString(s)
					lineLen += 1 + len(s)
				default:
					sb.WriteByte('\n')
					sb.WriteString(s)
					lineLen = len(s)
				}
			}
		}
		if lineLen > 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// scaleChannel clamps a channel to [0, 1] and scales it to 0-255
func scaleChannel(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return int(math.Round(v * 255))
}
