package ignore

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bethropolis/concat-code/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
	gogitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
	regexpignore "github.com/sabhiram/go-gitignore"
)

const (
	// EngineGitignore evaluates patterns with git's own precedence rules:
	// a file below an excluded directory can not be re-included.
	EngineGitignore = "gitignore"
	// EngineGoGit uses go-git's matcher, with the same parent directory
	// rule as EngineGitignore.
	EngineGoGit = "go-git"
	// EngineRegexp compiles every pattern to a regular expression. The last
	// matching pattern wins and the parent directory rule applies.
	EngineRegexp = "regexp"
)

// ErrUnknownEngine is returned for an engine name not listed by Engines.
var ErrUnknownEngine = errors.New("ignore: unknown matcher engine")

type engineFactory func(content []byte, base string, log utils.Logger) Engine

var engines = map[string]engineFactory{
	EngineGitignore: newGitEngine,
	EngineGoGit:     newGoGitEngine,
	EngineRegexp:    newRegexpEngine,
}

// Engines lists the available engine names, sorted.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupEngine(name string) (engineFactory, error) {
	factory, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownEngine, name, strings.Join(Engines(), ", "))
	}
	return factory, nil
}

type gitEngine struct {
	rules gitignore.GitIgnore
}

func newGitEngine(content []byte, base string, log utils.Logger) Engine {
	rules := gitignore.New(bytes.NewReader(content), base, func(e gitignore.Error) bool {
		log.Warn("ignore: skipping invalid pattern: %v", e)
		return true
	})
	return &gitEngine{rules: rules}
}

func (e *gitEngine) Excludes(relativePath string) bool {
	// An excluded parent directory excludes everything below it.
	parts := strings.Split(relativePath, "/")
	for i := 1; i < len(parts); i++ {
		if match := e.rules.Relative(strings.Join(parts[:i], "/"), true); match != nil && match.Ignore() {
			return true
		}
	}
	if match := e.rules.Relative(relativePath, false); match != nil {
		return match.Ignore()
	}
	return false
}

type goGitEngine struct {
	matcher gogitignore.Matcher
}

func newGoGitEngine(content []byte, _ string, _ utils.Logger) Engine {
	var patterns []gogitignore.Pattern
	for _, line := range splitLines(content) {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		patterns = append(patterns, gogitignore.ParsePattern(line, nil))
	}
	return &goGitEngine{matcher: gogitignore.NewMatcher(patterns)}
}

func (e *goGitEngine) Excludes(relativePath string) bool {
	parts := strings.Split(relativePath, "/")
	for i := 1; i < len(parts); i++ {
		if e.matcher.Match(parts[:i], true) {
			return true
		}
	}
	return e.matcher.Match(parts, false)
}

// regexpRule is one compiled line. Negation and the directory-only suffix
// are tracked here so each rule can be tested against directories and files
// separately.
type regexpRule struct {
	re      *regexpignore.GitIgnore
	negate  bool
	dirOnly bool
}

type regexpEngine struct {
	rules []regexpRule
}

func newRegexpEngine(content []byte, _ string, _ utils.Logger) Engine {
	var rules []regexpRule
	for _, line := range splitLines(content) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rule := regexpRule{}
		if strings.HasPrefix(line, "!") {
			rule.negate = true
			line = line[1:]
		}
		rule.dirOnly = strings.HasSuffix(line, "/")
		rule.re = regexpignore.CompileIgnoreLines(regexpPattern(line))
		rules = append(rules, rule)
	}
	return &regexpEngine{rules: rules}
}

// regexpPattern rewrites a gitignore pattern into the syntax the regexp
// compiler handles: a slash before the last character anchors the pattern
// at the root, "?" matches one character other than "/" and "[!" opens a
// negated class.
func regexpPattern(p string) string {
	body := strings.TrimSuffix(p, "/")
	if strings.Contains(body, "/") && !strings.HasPrefix(body, "/") && !strings.HasPrefix(body, "**/") {
		p = "/" + p
	}
	p = strings.ReplaceAll(p, "[!", "[^")

	var b strings.Builder
	for i := 0; i < len(p); i++ {
		if p[i] == '?' && (i == 0 || p[i-1] != '\\') {
			b.WriteString(`[^\x2f]`)
			continue
		}
		b.WriteByte(p[i])
	}
	return b.String()
}

func (e *regexpEngine) match(path string, isDir bool) bool {
	excluded := false
	for _, r := range e.rules {
		candidate := path
		if r.dirOnly {
			if !isDir {
				continue
			}
			candidate += "/"
		}
		if r.re.MatchesPath(candidate) {
			excluded = !r.negate
		}
	}
	return excluded
}

func (e *regexpEngine) Excludes(relativePath string) bool {
	parts := strings.Split(relativePath, "/")
	for i := 1; i < len(parts); i++ {
		if e.match(strings.Join(parts[:i], "/"), true) {
			return true
		}
	}
	return e.match(relativePath, false)
}

func splitLines(content []byte) []string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
