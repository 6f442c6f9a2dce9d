package airtable

// Field access helpers. Airtable leaves fields with empty or default values
// out of the record entirely, and linked-record fields arrive as arrays of
// record IDs, so everything is read defensively.

func stringField(rec *Record, keys ...string) string {
	for _, key := range keys {
		if v, ok := rec.Fields[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func boolField(rec *Record, key string) bool {
	v, _ := rec.Fields[key].(bool)
	return v
}

func linkedIDs(rec *Record, key string) []string {
	raw, ok := rec.Fields[key].([]any)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func firstLinkedID(rec *Record, key string) string {
	ids := linkedIDs(rec, key)
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
