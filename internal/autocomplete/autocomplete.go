package autocomplete

import (
	"strings"

	"paircode/internal/models"
)

type rule struct {
	prefix     string
	suggestion string
}

var rulesByLanguage = map[string][]rule{
	"python": {
		{"def", "def function_name():"},
		{"for", "for item in iterable:"},
		{"if", "if condition:"},
		{"class", "class ClassName:"},
		{"import", "import module"},
		{"from", "from module import "},
	},
	"javascript": {
		{"fun", "function "},
		{"func", "function "},
		{"const", "const "},
		{"let", "let "},
		{"if", "if (condition) {}"},
		{"for", "for (let i = 0; i < length; i++) {}"},
	},
	"java": {
		{"pub", "public "},
		{"pri", "private "},
		{"class", "class "},
		{"if", "if (condition) {}"},
		{"for", "for (int i = 0; i < length; i++) {}"},
	},
}

var fallbackByLanguage = map[string]string{
	"python":     "# add code...",
	"javascript": "// add code...",
	"java":       "// add code...",
}

// Suggest completes the keyword under the cursor from per-language prefix
// tables, returning a comment stub when nothing matches. Stateless.
func Suggest(req models.AutocompleteRequest) models.AutocompleteResponse {
	language := strings.ToLower(req.Language)

	pos := req.CursorPosition
	if pos < 0 {
		pos = 0
	}
	if pos > len(req.Code) {
		pos = len(req.Code)
	}

	before := req.Code[:pos]
	lines := strings.Split(before, "\n")
	current := lines[len(lines)-1]

	i := len(current) - 1
	for i >= 0 && isWordByte(current[i]) {
		i--
	}
	token := current[i+1:]
	start := pos - len(token)

	rules, ok := rulesByLanguage[language]
	if !ok {
		rules = rulesByLanguage["python"]
	}

	suggestion := ""
	for _, r := range rules {
		if strings.HasPrefix(token, r.prefix) {
			suggestion = r.suggestion
			break
		}
	}
	if suggestion == "" {
		if suggestion, ok = fallbackByLanguage[language]; !ok {
			suggestion = "// add code..."
		}
	}

	return models.AutocompleteResponse{
		Suggestion:    suggestion,
		StartPosition: start,
		EndPosition:   pos,
	}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
