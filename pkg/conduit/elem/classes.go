package elem

import (
	"sort"
	"strings"
)

// Classes merges class names. Each part is a string (may hold several
// space-separated classes), a []string, or a map[string]bool of conditional
// classes. Classes sharing a "prefix-" group conflict and the last occurrence
// wins; bare classes conflict only with themselves.
func Classes(parts ...any) string {
	var ordered []string
	add := func(s string) {
		ordered = append(ordered, strings.Fields(s)...)
	}

	for _, part := range parts {
		switch v := part.(type) {
		case string:
			add(v)
		case []string:
			for _, s := range v {
				add(s)
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if v[k] {
					add(k)
				}
			}
		}
	}

	seen := make(map[string]int, len(ordered))
	out := make([]string, 0, len(ordered))
	for _, cls := range ordered {
		g := classGroup(cls)
		if i, ok := seen[g]; ok {
			out[i] = cls
			continue
		}
		seen[g] = len(out)
		out = append(out, cls)
	}
	return strings.Join(out, " ")
}

// classGroup keys conflict resolution: "p-2" and "p-4" share the group "p-",
// while a dashless class forms its own group.
func classGroup(cls string) string {
	if i := strings.LastIndexByte(cls, '-'); i > 0 {
		return cls[:i+1]
	}
	return cls
}
