package tweets

import "strings"

const (
	trainingFields = 6
	testFields     = 5
)

// splitFields splits line on commas and returns the first want fields. Lines
// with fewer fields are malformed, and so is a line that ends right after the
// comma opening its last field. When a line has more, the last wanted field
// stops at the next comma and the rest of the line is ignored.
func splitFields(line string, lineNo, want int) ([]string, error) {
	fields := strings.SplitN(line, ",", want+1)
	if len(fields) < want {
		return nil, &MalformedRecordError{Line: lineNo, Want: want, Got: len(fields)}
	}
	if len(fields) == want && fields[want-1] == "" {
		return nil, &MalformedRecordError{Line: lineNo, Want: want, Got: want - 1}
	}
	return fields[:want], nil
}

// ParseTrainingRecord parses `label,id,timestamp,other,username,text`.
func ParseTrainingRecord(line string, lineNo int) (TrainingRecord, error) {
	f, err := splitFields(line, lineNo, trainingFields)
	if err != nil {
		return TrainingRecord{}, err
	}
	return TrainingRecord{
		Label:     f[0],
		ID:        f[1],
		Timestamp: f[2],
		Other:     f[3],
		Username:  f[4],
		Text:      f[5],
	}, nil
}

// ParseTestRecord parses `id,timestamp,other,username,text`.
func ParseTestRecord(line string, lineNo int) (TestRecord, error) {
	f, err := splitFields(line, lineNo, testFields)
	if err != nil {
		return TestRecord{}, err
	}
	return TestRecord{
		ID:        f[0],
		Timestamp: f[1],
		Other:     f[2],
		Username:  f[3],
		Text:      f[4],
	}, nil
}
