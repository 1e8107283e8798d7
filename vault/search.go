package vault

import "strings"

// Search scans the latest snapshot's files. A file matches if its name
// or its content contains any keyword as a case-insensitive substring.
// Results are in file-insertion order; blank keywords are ignored.
func (s *Service) Search(keywords []string) []string {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		lowered = append(lowered, strings.ToLower(kw))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]string, 0)
	if len(lowered) == 0 {
		return matches
	}

	for _, rec := range s.tip().FilesInOrder() {
		name := strings.ToLower(rec.Name)
		content := strings.ToLower(string(rec.Content))
		for _, kw := range lowered {
			if strings.Contains(name, kw) || strings.Contains(content, kw) {
				matches = append(matches, rec.Name)
				break
			}
		}
	}
	return matches
}
