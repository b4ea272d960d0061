package survey

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/gitscore/lib/people"
	"github.com/pescuma/gitscore/lib/utils"
)

// A satisfaction survey is 14 Likert items (1-5) per identity, grouped into
// four blocks with fixed sub-weights. Two wellbeing items ask about
// exhaustion and stress, so they score reversed: a 5 there is bad news.
const Items = 14

const (
	jobSatisfactionWeight = 0.30
	wellbeingWeight       = 0.30
	growthWeight          = 0.20
	cultureWeight         = 0.20
)

// Item blocks, zero-based indexes into the 14 answers.
var (
	jobSatisfactionItems = []int{0, 1, 2, 3}
	wellbeingItems       = []int{4, 5, 6, 7}
	reverseScoredItems   = map[int]bool{5: true, 7: true}
	growthItems          = []int{8, 9, 10}
	cultureItems         = []int{11, 12, 13}
)

type Response struct {
	Email   string
	Answers [Items]int
}

// Results maps canonical contributor keys to raw satisfaction scores in
// [0, 1]. Identities resolve through the same mapping the aggregator used.
type Results map[string]float64

func Resolve(responses []*Response, resolver *people.Resolver) Results {
	result := Results{}
	for _, r := range responses {
		result[resolver.ResolveEmail(r.Email)] = score(r)
	}
	return result
}

func score(r *Response) float64 {
	blocks := []struct {
		items  []int
		weight float64
	}{
		{jobSatisfactionItems, jobSatisfactionWeight},
		{wellbeingItems, wellbeingWeight},
		{growthItems, growthWeight},
		{cultureItems, cultureWeight},
	}

	total := 0.0
	for _, b := range blocks {
		sum := 0.0
		for _, i := range b.items {
			answer := float64(utils.Min(5, utils.Max(1, r.Answers[i])))
			if reverseScoredItems[i] {
				answer = 6 - answer
			}
			sum += answer
		}
		avg := sum / float64(len(b.items))

		// 1..5 Likert to [0, 1]
		total += b.weight * (avg - 1) / 4
	}

	return utils.Clamp(total, 0, 1)
}

// Load reads a survey table: one "email,a1,...,a14" row per respondent,
// header optional. Rows with a wrong item count or non-numeric answers are
// skipped, consistent with how the rest of the pipeline treats bad input.
func Load(path string) ([]*Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening survey file %v", path)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) ([]*Response, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var result []*Response

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading survey file")
		}

		if len(record) != Items+1 || strings.EqualFold(record[0], "email") {
			continue
		}

		response := &Response{Email: record[0]}

		ok := true
		for i := 0; i < Items; i++ {
			response.Answers[i], err = strconv.Atoi(strings.TrimSpace(record[i+1]))
			if err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		result = append(result, response)
	}

	return result, nil
}
