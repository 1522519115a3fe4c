package models

// IntPtr returns a pointer to id.
func IntPtr(id int) *int {
	return &id
}
