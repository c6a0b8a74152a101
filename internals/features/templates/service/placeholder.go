package service

import "regexp"

// Token placeholder berbentuk {{ nama }}, toleran spasi di dalam kurung.
var placeholderRe = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// ExtractPlaceholders mengembalikan daftar nama placeholder unik dari isi
// template, urut kemunculan pertama.
func ExtractPlaceholders(text string) []string {
	seen := make(map[string]struct{})
	names := []string{}
	for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// RenderTemplate mengganti setiap kemunculan {{ nama }} (apapun spasinya)
// dengan nilai yang disuplai; placeholder tanpa nilai dibiarkan apa adanya.
func RenderTemplate(body string, values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(body, func(token string) string {
		name := placeholderRe.FindStringSubmatch(token)[1]
		if v, ok := values[name]; ok {
			return v
		}
		return token
	})
}
