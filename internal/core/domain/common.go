package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// UniqueStrings returns values with duplicate entries removed, preserving the
// order of first occurrence. Comparison is by exact string match.
func UniqueStrings(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

func appendUnique(list []string, value string) ([]string, bool) {
	for _, v := range list {
		if v == value {
			return list, false
		}
	}
	return append(list, value), true
}

func removeValue(list []string, value string) ([]string, bool) {
	for i, v := range list {
		if v == value {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}
