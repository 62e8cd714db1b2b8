package runner

import (
	"bufio"
	"io"
	"strings"
)

// DefaultSearchPhrases is the fixed phrase list for the Companies House
// harvest. The phrases deliberately over-sample the truck/HGV space;
// the classifier does the actual filtering.
var DefaultSearchPhrases = []string{
	"truck tyre",
	"truck tyres",
	"truck tyre fitting",
	"truck tyre fitter",
	"truck tyre specialist",
	"truck tyre wholesale",
	"truck tyre service",
	"lorry tyre",
	"lorry tyres",
	"lorry tyre fitting",
	"hgv tyre",
	"hgv tyres",
	"hgv tyre fitting",
	"hgv tyre fitter",
	"commercial vehicle tyre",
	"commercial truck tyre",
	"fleet truck tyre",
	"trailer tyre fitting",
	"artic tyre",
	"truck tyre mobile",
	"truck tyre breakdown",
	"truck tyre 24 hour",
	"truck wheel service",
	"truck tyre retread",
	"commercial tyre fitting",
	"commercial tyre fitter",
	"heavy goods tyre",
}

// LoadPhrases reads search phrases from r, one per line, skipping blanks.
func LoadPhrases(r io.Reader) ([]string, error) {
	var phrases []string

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		phrase := strings.TrimSpace(scanner.Text())
		if phrase == "" {
			continue
		}

		phrases = append(phrases, phrase)
	}

	return phrases, scanner.Err()
}
