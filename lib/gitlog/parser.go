package gitlog

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/pescuma/gitscore/lib/classify"
	"github.com/pescuma/gitscore/lib/model"
)

// Format is the git log invocation this parser understands:
//
//	git log --all --numstat --date=iso-strict --format=<Format>
//
// Records are separated by \x1e, the message is fenced by \x1f so its
// newlines and tabs can't be confused with header or numstat lines, and
// binary files show up in the stat block as "-\t-\tpath".
const Format = "%x1e%H%x09%an%x09%ae%x09%ad%x09%P%x1f%B%x1f"

type Result struct {
	Commits []*model.Commit

	// Entries missing an author or a parsable timestamp. Skipped, counted,
	// never fatal.
	ParseFailures int
}

// Parse decodes a raw commit log. Each entry is parsed on its own: a
// malformed entry poisons nothing around it, and a truncated log simply
// yields a smaller commit set.
func Parse(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading commit log")
	}

	result := &Result{}

	for _, record := range strings.Split(string(data), "\x1e") {
		if strings.TrimSpace(record) == "" {
			continue
		}

		commit, ok := parseRecord(record)
		if !ok {
			result.ParseFailures++
			continue
		}

		result.Commits = append(result.Commits, commit)
	}

	return result, nil
}

func parseRecord(record string) (*model.Commit, bool) {
	fields := strings.Split(record, "\x1f")
	if len(fields) != 3 {
		return nil, false
	}

	commit, ok := parseHeader(strings.TrimSpace(fields[0]))
	if !ok {
		return nil, false
	}

	commit.Message = strings.TrimSpace(fields[1])

	for _, line := range strings.Split(fields[2], "\n") {
		if strings.Count(line, "\t") != 2 {
			continue
		}

		if fc, ok := parseNumstat(line); ok {
			commit.Files = append(commit.Files, fc)
		}
	}

	return commit, true
}

func parseHeader(line string) (*model.Commit, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) != 5 {
		return nil, false
	}

	hash := strings.TrimSpace(parts[0])
	name := strings.TrimSpace(parts[1])
	email := strings.TrimSpace(parts[2])
	date, err := parseDate(strings.TrimSpace(parts[3]))

	if hash == "" || email == "" || err != nil {
		return nil, false
	}

	var parents []string
	if p := strings.TrimSpace(parts[4]); p != "" {
		parents = strings.Fields(p)
	}

	return &model.Commit{
		Hash:        hash,
		AuthorName:  name,
		AuthorEmail: email,
		Date:        date,
		Parents:     parents,
	}, true
}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05 -0700",
	"Mon Jan 2 15:04:05 2006 -0700",
}

func parseDate(s string) (time.Time, error) {
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unsupported date: %v", s)
}

func parseNumstat(line string) (*model.FileChange, bool) {
	parts := strings.SplitN(line, "\t", 3)

	path := normalizeRename(strings.TrimSpace(parts[2]))
	if path == "" {
		return nil, false
	}

	result := &model.FileChange{Path: path}

	// Binary files have no numeric stat but still count as touched.
	if parts[0] == "-" && parts[1] == "-" {
		result.Binary = true
	} else {
		result.LinesAdded, _ = strconv.Atoi(parts[0])
		result.LinesDeleted, _ = strconv.Atoi(parts[1])
		if result.LinesAdded < 0 || result.LinesDeleted < 0 {
			return nil, false
		}
	}

	result.Category = classify.File(result.Path)
	return result, true
}

// git prints renames as "dir/{old => new}/file" or "old => new". Only the
// post-rename path matters here.
func normalizeRename(path string) string {
	if !strings.Contains(path, " => ") {
		return path
	}

	open := strings.Index(path, "{")
	closing := strings.Index(path, "}")
	if open >= 0 && closing > open {
		inner := path[open+1 : closing]
		to := inner[strings.Index(inner, " => ")+4:]
		path = path[:open] + to + path[closing+1:]
		return strings.ReplaceAll(path, "//", "/")
	}

	return path[strings.Index(path, " => ")+4:]
}
