package field

import "math/rand"

// Category determines size, blink speed and effect eligibility of a star
type Category int

const (
	CategoryDust Category = iota // Tiny, fast blinking
	CategoryNormal
	CategoryBright // Larger, slow blinking, glow halo
	CategoryGiant  // Largest, glow halo, spikes, optional pulse
)

// Categories lists every category in table order
var Categories = []Category{CategoryDust, CategoryNormal, CategoryBright, CategoryGiant}

func (c Category) String() string {
	switch c {
	case CategoryDust:
		return "dust"
	case CategoryNormal:
		return "normal"
	case CategoryBright:
		return "bright"
	case CategoryGiant:
		return "giant"
	default:
		return "unknown"
	}
}

// span is a uniform random range
type span struct {
	Min, Max float64
}

func (s span) pick(rng *rand.Rand) float64 {
	return s.Min + rng.Float64()*(s.Max-s.Min)
}

// CategoryConfig holds the per-category star parameters
type CategoryConfig struct {
	Category    Category
	Weight      float64 // Selection probability
	Radius      span
	BlinkSpeed  span
	MoveSpeed   span
	Glow        bool
	PulseChance float64
}

var categoryTable = [...]CategoryConfig{
	CategoryDust: {
		Category:   CategoryDust,
		Weight:     0.50,
		Radius:     span{0.2, 0.8},
		BlinkSpeed: span{0.005, 0.013},
		MoveSpeed:  span{0.006, 0.016},
	},
	CategoryNormal: {
		Category:   CategoryNormal,
		Weight:     0.25,
		Radius:     span{0.6, 1.6},
		BlinkSpeed: span{0.003, 0.008},
		MoveSpeed:  span{0.010, 0.025},
	},
	CategoryBright: {
		Category:   CategoryBright,
		Weight:     0.17,
		Radius:     span{0.9, 2.3},
		BlinkSpeed: span{0.002, 0.006},
		MoveSpeed:  span{0.012, 0.032},
		Glow:       true,
	},
	CategoryGiant: {
		Category:    CategoryGiant,
		Weight:      0.08,
		Radius:      span{1.3, 3.3},
		BlinkSpeed:  span{0.001, 0.003},
		MoveSpeed:   span{0.015, 0.040},
		Glow:        true,
		PulseChance: 0.5,
	},
}

// GetCategoryConfig returns configuration for a category
func GetCategoryConfig(c Category) CategoryConfig {
	if c < CategoryDust || c > CategoryGiant {
		return categoryTable[CategoryDust]
	}
	return categoryTable[c]
}

// RandomCategory picks a category by the fixed weights (50/25/17/8)
func RandomCategory(rng *rand.Rand) Category {
	r := rng.Float64()
	acc := 0.0
	for _, c := range Categories {
		acc += categoryTable[c].Weight
		if r < acc {
			return c
		}
	}
	return CategoryGiant
}

// randomColor returns the category's color, with the occasional tint
func randomColor(c Category, rng *rand.Rand) RGB {
	white := RGB{255, 255, 255}
	switch c {
	case CategoryNormal:
		if rng.Float64() < 0.3 {
			return RGB{200 + rng.Float64()*55, 220 + rng.Float64()*35, 255}
		}
	case CategoryBright:
		if rng.Float64() < 0.4 {
			return RGB{255, 255 - rng.Float64()*55, 200 + rng.Float64()*55}
		}
	case CategoryGiant:
		r := rng.Float64()
		if r < 0.3 {
			return RGB{255, 200 + rng.Float64()*55, 150 + rng.Float64()*50} // warm
		} else if r < 0.6 {
			return RGB{150 + rng.Float64()*50, 200 + rng.Float64()*55, 255} // cool
		}
	}
	return white
}
