package sectors

import (
	"image"
	"image/color"
	"math"
)

// minStripeShare is the minimum share of the image height a stripe has to
// cover to be kept. Narrower stripes are anti-aliasing artefacts.
const minStripeShare = 0.05

type stripe struct {
	color  Color
	height int
}

// FromFlag converts a horizontally striped flag image into n sector colours.
//
// The middle pixel column of the image is scanned top to bottom for runs of
// equal colour. Runs of at most 5% of the image height are discarded, at
// most n runs are kept, and run heights are scaled to add up to n sectors.
// If no run survives, FromFlag returns nil.
func FromFlag(img image.Image, n int) []Color {
	if n <= 0 {
		n = DefaultSectors
	}
	b := img.Bounds()
	height := b.Dy()
	if height == 0 || b.Dx() == 0 {
		return nil
	}
	x := b.Min.X + b.Dx()/2
	var stripes []stripe
	current := colorAt(img, x, b.Min.Y)
	run := 0
	for y := 0; y < height; y++ {
		c := colorAt(img, x, b.Min.Y+y)
		run++
		if c != current || y == height-1 {
			if float64(run)/float64(height) > minStripeShare {
				stripes = append(stripes, stripe{color: current, height: run})
			}
			current = c
			run = 0
		}
	}
	if len(stripes) > n {
		stripes = stripes[:n]
	}
	total := 0
	for _, s := range stripes {
		total += s.height
	}
	if total == 0 {
		tracer().Infof("flag has no stripes wide enough")
		return nil
	}
	sum := 0
	for i := range stripes {
		stripes[i].height = int(math.RoundToEven(float64(n*stripes[i].height) / float64(total)))
		sum += stripes[i].height
	}
	if sum != n {
		last := &stripes[len(stripes)-1]
		last.height = n - (sum - last.height)
	}
	colors := make([]Color, 0, n)
	for _, s := range stripes {
		for i := 0; i < s.height && len(colors) < n; i++ {
			colors = append(colors, s.color)
		}
	}
	tracer().Debugf("flag converted to %d stripes", len(stripes))
	return colors
}

func colorAt(img image.Image, x, y int) Color {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return Color(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}
