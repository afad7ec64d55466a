package registry

import "github.com/aalvaropc/unitconv/internal/domain"

var lengthUnits = []domain.Unit{
	{Symbol: "m", Family: domain.FamilyLength, Singular: "meter", Plural: "meters", Scale: 1.0,
		Aliases: []string{"m", "meter", "meters"}},
	{Symbol: "cm", Family: domain.FamilyLength, Singular: "centimeter", Plural: "centimeters", Scale: 0.01,
		Aliases: []string{"cm", "centimeter", "centimeters"}},
	{Symbol: "mm", Family: domain.FamilyLength, Singular: "millimeter", Plural: "millimeters", Scale: 0.001,
		Aliases: []string{"mm", "millimeter", "millimeters"}},
	{Symbol: "km", Family: domain.FamilyLength, Singular: "kilometer", Plural: "kilometers", Scale: 1000.0,
		Aliases: []string{"km", "kilometer", "kilometers"}},
	{Symbol: "in", Family: domain.FamilyLength, Singular: "inch", Plural: "inches", Scale: 0.0254,
		Aliases: []string{"in", "inch", "inches"}},
	{Symbol: "mi", Family: domain.FamilyLength, Singular: "mile", Plural: "miles", Scale: 1609.35,
		Aliases: []string{"mi", "mile", "miles"}},
	{Symbol: "yd", Family: domain.FamilyLength, Singular: "yard", Plural: "yards", Scale: 0.9144,
		Aliases: []string{"yd", "yard", "yards"}},
	{Symbol: "ft", Family: domain.FamilyLength, Singular: "foot", Plural: "feet", Scale: 0.3048,
		Aliases: []string{"ft", "foot", "feet"}},
}

var massUnits = []domain.Unit{
	{Symbol: "g", Family: domain.FamilyMass, Singular: "gram", Plural: "grams", Scale: 1.0,
		Aliases: []string{"g", "gram", "grams"}},
	{Symbol: "kg", Family: domain.FamilyMass, Singular: "kilogram", Plural: "kilograms", Scale: 1000.0,
		Aliases: []string{"kg", "kilogram", "kilograms"}},
	{Symbol: "mg", Family: domain.FamilyMass, Singular: "milligram", Plural: "milligrams", Scale: 0.001,
		Aliases: []string{"mg", "milligram", "milligrams"}},
	{Symbol: "lb", Family: domain.FamilyMass, Singular: "pound", Plural: "pounds", Scale: 453.592,
		Aliases: []string{"lb", "pound", "pounds"}},
	{Symbol: "oz", Family: domain.FamilyMass, Singular: "ounce", Plural: "ounces", Scale: 28.3495,
		Aliases: []string{"oz", "ounce", "ounces"}},
}

// Multi-word names ("degrees Celsius") reach the registry already joined
// and lowercased, hence "degreescelsius".
var temperatureUnits = []domain.Unit{
	{Symbol: "c", Family: domain.FamilyTemperature, Singular: "degree Celsius", Plural: "degrees Celsius",
		Aliases: []string{"degreecelsius", "celsius", "degreescelsius", "dc", "c"}},
	{Symbol: "f", Family: domain.FamilyTemperature, Singular: "degree Fahrenheit", Plural: "degrees Fahrenheit",
		Aliases: []string{"degreefahrenheit", "fahrenheit", "degreesfahrenheit", "df", "f"}},
	{Symbol: "k", Family: domain.FamilyTemperature, Singular: "kelvin", Plural: "kelvins",
		Aliases: []string{"kelvins", "kelvin", "k"}},
}
