package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"traceback-explainer/internal/model"
)

// NestedExceptionMarker separates an outer traceback from one raised while handling it.
const NestedExceptionMarker = "During handling of the above exception"

var (
	// The marker runs to the end of its line; "." does not cross newlines here.
	sectionSplitRegex = regexp.MustCompile(regexp.QuoteMeta(NestedExceptionMarker) + `.*?\n`)

	// Groups: 1:File, 2:Line, 3:Function, 4:ErrorType, 5:ErrorMessage
	frameRegex = regexp.MustCompile(`(?s)File "(.*?)", line (\d+), in (.*?)\n(?:.*?)\n(\w+Error): (.*)`)
)

type TracebackParser interface {
	Parse(logText string) []model.ErrorRecord
}

type tracebackParser struct{}

func NewTracebackParser() TracebackParser {
	return &tracebackParser{}
}

func (p *tracebackParser) Parse(logText string) []model.ErrorRecord {
	return ParseLog(logText)
}

// ParseLog extracts at most one record per section, in section order.
// Returns nil when no section matches.
func ParseLog(logText string) []model.ErrorRecord {
	var records []model.ErrorRecord
	for i, section := range SplitSections(logText) {
		record, ok := ExtractError(section)
		if !ok {
			log.Trace().Int("section", i).Msg("Section did not contain a traceback frame, skipping")
			continue
		}
		records = append(records, *record)
	}
	return records
}

// SplitSections never returns an empty slice; an input without markers,
// including "", comes back as a single section.
func SplitSections(logText string) []string {
	return sectionSplitRegex.Split(logText, -1)
}

// ExtractError returns the first frame + error line found in section.
func ExtractError(section string) (*model.ErrorRecord, bool) {
	matches := frameRegex.FindStringSubmatch(section)
	if len(matches) != 6 {
		return nil, false
	}

	line, err := strconv.Atoi(matches[2])
	if err != nil {
		log.Debug().Err(err).Str("line", matches[2]).Msg("Traceback line number out of range")
		return nil, false
	}

	return &model.ErrorRecord{
		File:         matches[1],
		Line:         line,
		Function:     matches[3],
		ErrorType:    matches[4],
		ErrorMessage: strings.TrimSpace(matches[5]),
	}, true
}
