package resource

import "time"

// Date is a calendar-date attribute value. It travels on the wire in the
// connection's date format.
type Date struct{ time.Time }

// DateOf builds a Date from the calendar fields of t.
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// DateTime is a timestamp attribute value. It travels on the wire in the
// connection's date-time format.
type DateTime struct{ time.Time }

func settingsOf(m Manager) *Settings {
	if m == nil {
		return nil
	}
	return m.Settings()
}

// Decode converts a single attribute from domain representation to wire
// representation. The returned name may differ from attr: type behaviors use
// the rename to support field aliasing.
func (t *Type) Decode(attr string, value any, m Manager) (string, any) {
	t.finalize()
	if t.Behavior != nil {
		name, v, done := t.Behavior.DecodeAttr(attr, value, m)
		if done {
			return name, v
		}
		attr, value = name, v
	}

	s := settingsOf(m)
	switch v := value.(type) {
	case Date:
		return attr, v.Format(s.dateFormat())
	case DateTime:
		return attr, v.Format(s.dateTimeFormat())
	case time.Time:
		return attr, v.Format(s.dateTimeFormat())
	}
	return attr, value
}

// Encode converts a single attribute from wire representation to domain
// representation: embedded fragments become resource instances, fragment
// arrays become collections, strings that parse as timestamps or dates
// become DateTime or Date values, everything else passes through unchanged.
// Encode never fails; malformed wire data falls through to pass-through.
func (t *Type) Encode(attr string, value any, m Manager) (string, any) {
	t.finalize()
	if t.Behavior != nil {
		v, done := t.Behavior.EncodeAttr(attr, value, m)
		if done {
			return attr, v
		}
		value = v
	}

	if t.unconvertible[attr] {
		return attr, value
	}
	if typeName, ok := embeddedResourceTypes[attr]; ok {
		return attr, wrapResource(m, typeName, value)
	}
	if typeName, ok := embeddedCollectionTypes[attr]; ok {
		return attr, wrapCollection(m, typeName, value)
	}
	if attr == "parent" {
		// A parent is always the same type as its child.
		return attr, wrapResource(m, t.Name, value)
	}

	if str, ok := value.(string); ok {
		s := settingsOf(m)
		if ts, err := time.Parse(s.dateTimeFormat(), str); err == nil {
			return attr, DateTime{ts}
		}
		if ts, err := time.Parse(s.dateFormat(), str); err == nil {
			return attr, Date{ts}
		}
	}
	return attr, value
}

// BulkDecode applies Decode to every attribute of a payload, producing a new
// payload.
func (t *Type) BulkDecode(attrs map[string]any, m Manager) map[string]any {
	out := make(map[string]any, len(attrs))
	for attr, value := range attrs {
		name, v := t.Decode(attr, value, m)
		out[name] = v
	}
	return out
}

// BulkEncode applies Encode to every attribute of a payload, producing a new
// payload.
func (t *Type) BulkEncode(attrs map[string]any, m Manager) map[string]any {
	out := make(map[string]any, len(attrs))
	for attr, value := range attrs {
		name, v := t.Encode(attr, value, m)
		out[name] = v
	}
	return out
}

func wrapResource(m Manager, typeName string, value any) any {
	fragment, ok := value.(map[string]any)
	if ok && m != nil {
		if sub, err := m.SubManager(typeName, nil); err == nil {
			return sub.ToResource(fragment)
		}
	}
	return value
}

func wrapCollection(m Manager, typeName string, value any) any {
	items, ok := asSlice(value)
	if ok && m != nil {
		if sub, err := m.SubManager(typeName, nil); err == nil {
			return sub.ToCollection(items)
		}
	}
	return value
}

// asSlice normalizes the two shapes fragment arrays arrive in.
func asSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []map[string]any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = item
		}
		return items, true
	}
	return nil, false
}
