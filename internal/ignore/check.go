package ignore

import (
	"github.com/bethropolis/concat-code/internal/utils"
)

// Classify decides whether the file at relativePath (relative to the
// matcher's root) is emitted. Host separators and a leading "./" are
// normalised away before matching. The ignore file itself is classified
// like any other path.
func (m *IgnoreMatcher) Classify(relativePath string) Decision {
	if m == nil || m.engine == nil {
		return Included
	}

	unixPath := utils.NormalizeRel(relativePath)
	if unixPath == "." {
		return Included // Never ignore the root itself
	}

	if m.engine.Excludes(unixPath) {
		m.logger.Debug("ignore.Classify: Excluded %q by %s rules", unixPath, m.engineName)
		return Excluded
	}

	m.logger.Debug("ignore.Classify: Path %q NOT excluded by any rule", unixPath)
	return Included
}
