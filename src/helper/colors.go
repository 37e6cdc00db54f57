package helper

import (
	"sort"
	"strings"
)

// DefaultTypeColor is used for any type name outside the known set.
const DefaultTypeColor = "bg-gray-200 text-gray-700"

var typeColors = map[string]string{
	"normal":   "bg-gray-300 text-gray-800",
	"fire":     "bg-red-500 text-white",
	"water":    "bg-blue-500 text-white",
	"grass":    "bg-green-500 text-white",
	"electric": "bg-yellow-400 text-yellow-900",
	"ice":      "bg-cyan-300 text-cyan-900",
	"fighting": "bg-orange-700 text-white",
	"poison":   "bg-purple-500 text-white",
	"ground":   "bg-yellow-600 text-white",
	"flying":   "bg-indigo-300 text-indigo-900",
	"psychic":  "bg-pink-500 text-white",
	"bug":      "bg-lime-600 text-white",
	"rock":     "bg-stone-500 text-white",
	"ghost":    "bg-violet-700 text-white",
	"dragon":   "bg-indigo-700 text-white",
	"dark":     "bg-gray-800 text-white",
	"steel":    "bg-gray-400 text-gray-900",
	"fairy":    "bg-pink-300 text-pink-900",
}

func LookupTypeColor(name string) (string, bool) {
	color, ok := typeColors[strings.ToLower(strings.TrimSpace(name))]
	return color, ok
}

func TypeColor(name string) string {
	if color, ok := LookupTypeColor(name); ok {
		return color
	}
	return DefaultTypeColor
}

func TypeNames() []string {
	names := make([]string, 0, len(typeColors))
	for name := range typeColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
