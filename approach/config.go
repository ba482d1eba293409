package approach

// Lenient config accessors. Approach option mappings come from YAML or
// hand-built maps, so values arrive with whatever dynamic types the decoder
// produced. Unrecognized keys are ignored by convention; these helpers report
// whether a recognized key was present and usable.

// StringSlice reads a list of strings from config.
func StringSlice(config map[string]interface{}, key string) ([]string, bool) {
	value, ok := config[key]
	if !ok {
		return nil, false
	}
	switch actual := value.(type) {
	case []string:
		return actual, true
	case []interface{}:
		var result []string
		for _, item := range actual {
			text, ok := item.(string)
			if !ok {
				return nil, false
			}
			result = append(result, text)
		}
		return result, true
	}
	return nil, false
}

// Float reads a numeric value from config.
func Float(config map[string]interface{}, key string) (float64, bool) {
	value, ok := config[key]
	if !ok {
		return 0, false
	}
	switch actual := value.(type) {
	case float64:
		return actual, true
	case float32:
		return float64(actual), true
	case int:
		return float64(actual), true
	case int64:
		return float64(actual), true
	}
	return 0, false
}

// Int64 reads an integer value from config.
func Int64(config map[string]interface{}, key string) (int64, bool) {
	value, ok := config[key]
	if !ok {
		return 0, false
	}
	switch actual := value.(type) {
	case int:
		return int64(actual), true
	case int64:
		return actual, true
	case float64:
		return int64(actual), true
	}
	return 0, false
}
