// ABOUTME: Parses generated script text into its named sections
// ABOUTME: Tolerant of markdown decoration and header aliases
package script

import (
	"strings"
)

// MaxCaptionLength is the platform caption limit in characters
const MaxCaptionLength = 125

// Sections holds the structured parts of a generated script
type Sections struct {
	Hook             string
	Body             string
	CTA              string
	Caption          string
	VisualDirections string
	Hashtags         string
}

// RequiredSections are the section names a complete script must contain.
// Visual directions are encouraged in the prompt but not scored as required.
var RequiredSections = []string{"HOOK", "BODY", "CTA", "CAPTION", "HASHTAGS"}

// sectionAliases maps normalized header names to section slots
var sectionAliases = map[string]string{
	"hook":              "hook",
	"body":              "body",
	"cta":               "cta",
	"call-to-action":    "cta",
	"call to action":    "cta",
	"caption":           "caption",
	"visual":            "visual",
	"visuals":           "visual",
	"visual directions": "visual",
	"hashtags":          "hashtags",
}

// ParseSections splits script text into sections by header lines. Headers
// are matched case-insensitively at the start of a line, with markdown
// decoration (#, *, numbering) stripped. Text before the first header is
// treated as body content.
func ParseSections(text string) Sections {
	content := map[string][]string{}
	current := ""

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if section, rest, ok := matchHeader(line); ok {
			current = section
			if rest != "" {
				content[current] = append(content[current], rest)
			}
			continue
		}

		key := current
		if key == "" {
			key = "body"
		}
		content[key] = append(content[key], line)
	}

	join := func(key string) string {
		return strings.Join(content[key], "\n")
	}
	return Sections{
		Hook:             join("hook"),
		Body:             join("body"),
		CTA:              join("cta"),
		Caption:          join("caption"),
		VisualDirections: join("visual"),
		Hashtags:         join("hashtags"),
	}
}

// matchHeader reports whether a line is a section header, returning the
// section slot and any content following the colon on the same line.
// A line counts as a header only when the section name is followed by a
// colon, or when the line is nothing but the section name. An ordinary
// sentence that happens to start with "body" is not a header.
func matchHeader(line string) (section, rest string, ok bool) {
	stripped := strings.TrimLeft(line, "#*-1234567890. ")
	stripped = strings.TrimSpace(stripped)

	normalize := func(s string) string {
		return strings.ToLower(strings.TrimSpace(strings.Trim(s, "*")))
	}

	if idx := strings.Index(stripped, ":"); idx >= 0 {
		if slot, found := sectionAliases[normalize(stripped[:idx])]; found {
			rest = strings.Trim(strings.TrimSpace(stripped[idx+1:]), "*")
			return slot, strings.TrimSpace(rest), true
		}
		return "", "", false
	}

	if slot, found := sectionAliases[normalize(stripped)]; found {
		return slot, "", true
	}
	return "", "", false
}

// section returns the content of a named required section
func (s Sections) section(name string) string {
	switch name {
	case "HOOK":
		return s.Hook
	case "BODY":
		return s.Body
	case "CTA":
		return s.CTA
	case "CAPTION":
		return s.Caption
	case "HASHTAGS":
		return s.Hashtags
	}
	return ""
}

// Missing returns the required section names with no content
func (s Sections) Missing() []string {
	var missing []string
	for _, name := range RequiredSections {
		if strings.TrimSpace(s.section(name)) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// CaptionWithinLimit reports whether the caption fits the platform limit.
// An empty caption counts as within limit; absence is scored separately.
func (s Sections) CaptionWithinLimit() bool {
	return len([]rune(s.Caption)) <= MaxCaptionLength
}
