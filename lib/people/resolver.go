package people

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/gitscore/lib/utils"
)

// Resolver merges raw name/email identities into canonical contributor keys.
// With no mapping every lowercased email is its own contributor. With a
// mapping, mapped emails share the mapped contributor name as key; emails
// the mapping doesn't know still become standalone contributors, never
// dropped. Reviewer, co-author and survey attribution must resolve through
// the same table, so one Resolver is built per run and passed around.
type Resolver struct {
	mapping map[string]string
}

func NewResolver(mapping map[string]string) *Resolver {
	normalized := map[string]string{}
	for email, name := range mapping {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		normalized[utils.NormalizeEmail(email)] = name
	}

	return &Resolver{mapping: normalized}
}

// Resolve returns the canonical key for an identity and the display name to
// use when a contributor is first created under that key.
func (r *Resolver) Resolve(name string, email string) (key string, displayName string) {
	email = utils.NormalizeEmail(email)

	if mapped, ok := r.mapping[email]; ok {
		return mapped, mapped
	}

	name = strings.TrimSpace(name)
	return email, utils.IIf(name != "", name, email)
}

// ResolveEmail resolves an email-only identity (trailers carry no reliable
// display name).
func (r *Resolver) ResolveEmail(email string) string {
	key, _ := r.Resolve("", email)
	return key
}

// LoadMapping reads an identity table: one "email,contributor name" pair per
// line, header optional. Lines with less than 2 fields are skipped.
func LoadMapping(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening mapping file %v", path)
	}
	defer f.Close()

	return parseMapping(f)
}

func parseMapping(r io.Reader) (map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	result := map[string]string{}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading mapping file")
		}

		if len(record) < 2 || strings.EqualFold(record[0], "email") {
			continue
		}

		result[utils.NormalizeEmail(record[0])] = strings.TrimSpace(record[1])
	}

	return result, nil
}
