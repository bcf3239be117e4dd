package output

import (
	"encoding/json"

	"github.com/ukaji3/xlmtrace-go/pkg/xlmtrace/models"
)

// ToJSON serializes a trace.
func ToJSON(t *models.Trace, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(t, "", "  ")
	}
	return json.Marshal(t)
}

// TracesToJSON serializes the traces of several inputs as one array.
func TracesToJSON(traces []*models.Trace, pretty bool) ([]byte, error) {
	if traces == nil {
		traces = []*models.Trace{}
	}
	if pretty {
		return json.MarshalIndent(traces, "", "  ")
	}
	return json.Marshal(traces)
}
