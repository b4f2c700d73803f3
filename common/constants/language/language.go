package language

import "fmt"

// Judge0 language IDs for the languages the platform supports. Reference
// solutions are keyed by the platform name, so both directions are needed.
var idByName = map[string]int{
	"C":          50,
	"C++":        54,
	"Java":       62,
	"JavaScript": 63,
	"Go":         60,
	"Python":     71,
	"TypeScript": 74,
}

var nameByID = make(map[int]string, len(idByName))

func init() {
	for name, id := range idByName {
		nameByID[id] = name
	}
}

func IDByName(name string) (int, error) {
	id, ok := idByName[name]
	if !ok {
		return 0, fmt.Errorf("unsupported language %q", name)
	}
	return id, nil
}

func NameByID(id int) (string, error) {
	name, ok := nameByID[id]
	if !ok {
		return "", fmt.Errorf("unknown language id %d", id)
	}
	return name, nil
}
