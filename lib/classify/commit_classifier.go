package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v2"

	"github.com/pescuma/gitscore/lib/model"
	"github.com/pescuma/gitscore/lib/utils"
)

// CommitInfo is everything derivable from one commit's metadata and message.
// Message classification is pattern matching and explicitly fallible: a
// commit saying "fix typo in docs" counts as a bugfix.
type CommitInfo struct {
	IsMerge  bool
	IsBugfix bool

	// Reviewer and co-author emails from trailer lines, de-duplicated,
	// lowercased. Credit goes to them, not to the commit author.
	Reviewers []string
	Coauthors []string
}

var bugfixKeywords = []string{
	"fix", "bug", "hotfix", "patch", "repair", "correct", "defect",
}

var issueRefs = []string{
	"issue #", "closes #", "fixes #", "resolves #",
}

var reviewTrailerRE = regexp.MustCompile(`(?mi)^(?:Reviewed-by|Acked-by):\s*([^<\r\n]*)<([^>\r\n]+)>`)
var coauthorTrailerRE = regexp.MustCompile(`(?mi)^Co-authored-by:\s*([^<\r\n]*)<([^>\r\n]+)>`)

func Commit(c *model.Commit) *CommitInfo {
	result := &CommitInfo{
		IsMerge: c.IsMerge(),
	}

	// Merges represent integration work, not authorship of a fix, so they
	// are never classified on the bugfix/feature axis.
	if !result.IsMerge {
		result.IsBugfix = isBugfixMessage(c.Message)
	}

	result.Reviewers = trailerEmails(reviewTrailerRE, c.Message)
	result.Coauthors = trailerEmails(coauthorTrailerRE, c.Message)

	return result
}

func isBugfixMessage(message string) bool {
	message = strings.ToLower(message)

	for _, k := range bugfixKeywords {
		if strings.Contains(message, k) {
			return true
		}
	}
	for _, r := range issueRefs {
		if strings.Contains(message, r) {
			return true
		}
	}
	return false
}

func trailerEmails(re *regexp.Regexp, message string) []string {
	matches := re.FindAllStringSubmatch(message, -1)
	if len(matches) == 0 {
		return nil
	}

	emails := set.New[string](len(matches))
	for _, m := range matches {
		email := utils.NormalizeEmail(m[2])
		if utils.IsEmail(email) {
			emails.Insert(email)
		}
	}

	result := emails.Slice()
	if len(result) == 0 {
		return nil
	}

	sort.Strings(result)
	return result
}
