package pets

import "strings"

// FilterAll es el valor de filtro que deja pasar todas las especies.
const FilterAll = "All"

// MatchesFilter: "All" o el nombre exacto de la especie, sin distinguir mayúsculas.
// "Cats" (plural) no coincide con nada.
func MatchesFilter(p Pet, filter string) bool {
	if strings.EqualFold(filter, FilterAll) {
		return true
	}
	k := p.Kind()
	return k != "" && strings.EqualFold(filter, string(k))
}

// Filter conserva el orden de entrada.
func Filter(items []Pet, filter string) []Pet {
	out := make([]Pet, 0, len(items))
	for _, p := range items {
		if MatchesFilter(p, filter) {
			out = append(out, p)
		}
	}
	return out
}
