// Package skills discovers skill definitions on disk. Skills are
// markdown files with YAML frontmatter, either a SKILL.md inside a
// skill directory or a standalone .md file at the top level.
package skills

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Skill is one discovered skill definition.
type Skill struct {
	Name        string
	Description string
	Path        string
}

// Discover scans dir for skill definitions and returns them sorted by
// name. A missing directory yields an empty catalog, not an error, and
// unreadable files are skipped.
func Discover(dir string) ([]Skill, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	fsys := os.DirFS(dir)

	nested, err := doublestar.Glob(fsys, "**/SKILL.md")
	if err != nil {
		return nil, err
	}

	topLevel, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, err
	}

	var out []Skill
	for _, rel := range nested {
		if s, ok := readSkill(dir, rel); ok {
			out = append(out, s)
		}
	}
	for _, rel := range topLevel {
		if rel == "SKILL.md" {
			continue // already picked up by the nested glob
		}
		if s, ok := readSkill(dir, rel); ok {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func readSkill(dir, rel string) (Skill, bool) {
	path := filepath.Join(dir, filepath.FromSlash(rel))
	content, err := os.ReadFile(path)
	if err != nil {
		return Skill{}, false
	}

	s := parseSkillFile(string(content), rel)
	s.Path = path
	return s, true
}

// parseSkillFile extracts the skill name and description. Format:
//
//	---
//	name: skill-name
//	description: What the skill does
//	---
//	Body text...
//
// The name falls back to the skill's directory (or the file base name
// for top-level files), the description to the first body line.
func parseSkillFile(content, rel string) Skill {
	s := Skill{Name: defaultName(rel)}

	body := content
	if strings.HasPrefix(content, "---") {
		parts := strings.SplitN(content, "---", 3)
		if len(parts) >= 3 {
			parseFrontmatter(parts[1], &s)
			body = parts[2]
		}
	}

	if s.Description == "" {
		s.Description = firstLine(body)
	}
	return s
}

func parseFrontmatter(block string, s *Skill) {
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		switch key {
		case "name":
			if value != "" {
				s.Name = value
			}
		case "description":
			s.Description = value
		}
	}
}

func defaultName(rel string) string {
	base := filepath.Base(filepath.FromSlash(rel))
	if base == "SKILL.md" {
		if parent := filepath.Base(filepath.Dir(filepath.FromSlash(rel))); parent != "." {
			return parent
		}
	}
	return strings.TrimSuffix(base, ".md")
}

func firstLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return line
		}
	}
	return ""
}
