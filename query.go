package cashbook

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the document, e.g.
// `$.settings.currency` or `$.entries[0].amount`. The document is queried
// through its JSON form, so paths use the serialized field names.
func (d *Document) Query(path string) (any, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("could not serialize document for query: %w", err)
	}
	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("could not deserialize document for query: %w", err)
	}
	val, err := jsonpath.Get(path, obj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return val, nil
}
