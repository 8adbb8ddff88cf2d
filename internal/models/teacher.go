package models

// Teacher represents a rated instructor. ID is a stable slug.
type Teacher struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

// TeachersByClass maps a class name to its teachers ordered by name.
type TeachersByClass map[string][]Teacher

// IDToName flattens the directory into an id -> display name lookup.
func (m TeachersByClass) IDToName() map[string]string {
	out := make(map[string]string)
	for _, teachers := range m {
		for _, t := range teachers {
			out[t.ID] = t.Name
		}
	}
	return out
}
