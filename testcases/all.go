package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"line":    lineCases,
	"polygon": polygonCases,
	"fill":    fillCases,
	"blend":   blendCases,
	"circle":  circleCases,
	"clip":    clipCases,
	"ctm":     ctmCases,
}
