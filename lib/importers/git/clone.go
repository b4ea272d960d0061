package git

import (
	"os"
	"regexp"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"

	"github.com/pescuma/gitscore/lib/consoles"
)

var gitURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^https?://github\.com/[\w\-]+/[\w\-.]+(?:\.git)?$`),
	regexp.MustCompile(`(?i)^git@github\.com:[\w\-]+/[\w\-.]+(?:\.git)?$`),
	regexp.MustCompile(`(?i)^https?://gitlab\.com/[\w\-]+/[\w\-.]+(?:\.git)?$`),
	regexp.MustCompile(`(?i)^git@gitlab\.com:[\w\-]+/[\w\-.]+(?:\.git)?$`),
	regexp.MustCompile(`(?i)^https?://\S+\.git$`),
	regexp.MustCompile(`(?i)^git@\S+\.git$`),
}

func IsValidURL(url string) bool {
	for _, p := range gitURLPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

// CloneTemp clones a remote repository into a temp dir. The caller owns the
// returned path and should delete it when done.
func CloneTemp(console consoles.Console, url string) (string, error) {
	if !IsValidURL(url) {
		return "", errors.Errorf("invalid git repository URL: %v", url)
	}

	dir, err := os.MkdirTemp("", "gitscore-")
	if err != nil {
		return "", err
	}

	console.Printf("Cloning %v...\n", url)

	_, err = git.PlainClone(dir, false, &git.CloneOptions{URL: url})
	if err != nil {
		_ = os.RemoveAll(dir)
		return "", errors.Wrapf(err, "cloning %v", url)
	}

	return dir, nil
}
