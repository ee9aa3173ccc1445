package clients

import "strings"

// Filter es la proyección de búsqueda: substring sin distinguir mayúsculas, solo sobre Animal.
// No modifica items.
func Filter(items []Client, term string) []Client {
	needle := strings.ToLower(term)
	out := make([]Client, 0, len(items))
	for _, c := range items {
		if strings.Contains(strings.ToLower(string(c.Animal)), needle) {
			out = append(out, c)
		}
	}
	return out
}
