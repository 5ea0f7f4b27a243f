// Package area resolves area names to the country rows they aggregate.
package area

// World is the area aggregating every row of a table.
const World = "World"

// Names of the built-in country groups.
const (
	EU                = "EU"
	EuropeanContinent = "European continent"
	Africa            = "Africa"
)

// Group is the set of country rows an area aggregates.
type Group struct {
	Name    string
	All     bool
	members map[string]struct{}
}

// Contains reports whether rows of country belong to the group.
func (g Group) Contains(country string) bool {
	if g.All {
		return true
	}
	_, ok := g.members[country]
	return ok
}

// Members returns the explicit member names. It is empty for World.
func (g Group) Members() []string {
	out := make([]string, 0, len(g.members))
	for m := range g.members {
		out = append(out, m)
	}
	return out
}

// Resolve maps an area to its group: World matches every row, a known group name its
// fixed membership, and anything else the single country of that name. Unknown
// countries are not an error; they simply match no row.
func Resolve(name string) Group {
	if name == World {
		return Group{Name: name, All: true}
	}
	if members, ok := groups[name]; ok {
		return Group{Name: name, members: members}
	}
	return Group{Name: name, members: map[string]struct{}{name: {}}}
}

// IsGroup reports whether name is World or a built-in group.
func IsGroup(name string) bool {
	if name == World {
		return true
	}
	_, ok := groups[name]
	return ok
}

// GroupNames returns the built-in group names, World included.
func GroupNames() []string {
	return []string{World, EU, EuropeanContinent, Africa}
}

var groups = map[string]map[string]struct{}{
	EU: set(
		"France", "Germany", "Spain", "Italy", "Netherlands", "Portugal", "Belgium",
		"Sweden", "Finland", "Greece", "Ireland", "Poland", "Luxembourg", "Malta",
		"Slovenia", "Austria", "Croatia", "Hungary", "Czechia", "Slovakia", "Romania",
		"Bulgaria", "Cyprus", "Lithuania", "Latvia", "Estonia",
	),
	EuropeanContinent: set(
		"France", "Germany", "Spain", "Italy", "Netherlands", "Portugal", "Belgium",
		"Sweden", "Finland", "Greece", "Ireland", "United Kingdom", "Norway",
		"Switzerland", "Poland", "Andorra", "Luxembourg", "Liechtenstein", "Malta",
		"San Marino", "Holy See", "Monaco", "Hungary", "Czechia", "Slovakia", "Slovenia",
		"Croatia", "Bosnia and Herzegovina", "Serbia", "Albania", "Romania", "Bulgaria",
		"Ukraine", "Belarus", "Latvia", "Estonia", "Lithuania", "Moldova",
		"North Macedonia", "Kosovo", "Montenegro", "Iceland", "Cyprus",
	),
	Africa: set(
		"Algeria", "Angola", "Benin", "Botswana", "Burkina Faso", "Burundi", "Cabo Verde",
		"Cameroon", "Central African Republic", "Chad", "Comoros", "Congo (Brazzaville)",
		"Congo (Kinshasa)", "Cote d'Ivoire", "Djibouti", "Egypt", "Equatorial Guinea",
		"Eritrea", "Eswatini", "Ethiopia", "Gabon", "Gambia", "Ghana", "Guinea",
		"Guinea-Bissau", "Kenya", "Lesotho", "Liberia", "Libya", "Madagascar", "Malawi",
		"Mali", "Mauritania", "Mauritius", "Morocco", "Mozambique", "Namibia", "Niger",
		"Nigeria", "Rwanda", "Sao Tome and Principe", "Senegal", "Seychelles",
		"Sierra Leone", "Somalia", "South Africa", "South Sudan", "Sudan", "Tanzania",
		"Togo", "Tunisia", "Uganda", "Western Sahara", "Zambia", "Zimbabwe",
	),
}

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}
