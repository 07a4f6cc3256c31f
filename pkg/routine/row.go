package routine

import (
	"fmt"
	"strconv"
	"time"
)

// Row maps column names to driver values.
type Row map[string]any

func (r Row) Int64(col string) (int64, error) {
	v, ok := r[col]
	if !ok {
		return 0, fmt.Errorf("column %q is missing", col)
	}

	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case []byte:
		return strconv.ParseInt(string(n), 10, 64)
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("column %q: unexpected type %T", col, v)
	}
}

func (r Row) String(col string) (string, error) {
	v, ok := r[col]
	if !ok {
		return "", fmt.Errorf("column %q is missing", col)
	}

	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("column %q: unexpected type %T", col, v)
	}
}

// Time accepts native timestamps, RFC 3339 text and integer unix microseconds.
func (r Row) Time(col string) (time.Time, error) {
	t, err := r.NullTime(col)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, fmt.Errorf("column %q is null", col)
	}

	return *t, nil
}

func (r Row) NullTime(col string) (*time.Time, error) {
	v, ok := r[col]
	if !ok {
		return nil, fmt.Errorf("column %q is missing", col)
	}

	var t time.Time
	switch x := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		t = x
	case int64:
		t = time.UnixMicro(x)
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, x)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col, err)
		}
		t = parsed
	default:
		return nil, fmt.Errorf("column %q: unexpected type %T", col, v)
	}

	t = t.UTC()

	return &t, nil
}
