package typeguard

import "github.com/typeguard-go/typeguard/internal/jsonload"

// DecodeJSONValue parses data into the value tree CheckValueAgainstType
// expects, applying strict.OnDuplicateKey policy to duplicate object keys.
// Issues is non-empty only when OnDuplicateKey is Warn and at least one
// duplicate key was seen; when OnDuplicateKey is Error, a duplicate key
// surfaces as a non-nil error instead.
func DecodeJSONValue(data []byte, strict Strictness) (value any, issues []string, err error) {
	v, rawIssues, err := jsonload.Decode(data, jsonload.Options{
		OnDuplicateKey: jsonload.Severity(strict.OnDuplicateKey),
	})
	if err != nil {
		return nil, nil, err
	}
	for _, i := range rawIssues {
		issues = append(issues, i.Path+": "+i.Message)
	}
	return v, issues, nil
}

// CheckJSON parses data and checks it against typ in one step, per
// spec.md §5. A JSON parse error is returned as err; a schema/programming
// error from CheckValueAgainstType is also returned as err. A non-empty
// diagnostic string means the decoded value does not conform.
func CheckJSON(data []byte, typ *TypeNode, schema *Schema, strict Strictness) (string, error) {
	value, _, err := DecodeJSONValue(data, strict)
	if err != nil {
		return "", err
	}
	return CheckValueAgainstType(value, typ, schema)
}
