// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package convert

// ToPtr converts any value into a pointer to that value.
func ToPtr[T any](v T) *T {
	return &v
}

// DerefString accepts a string pointer and returns the value of the string, or "" if the pointer is nil.
func DerefString(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

// DerefInt32 accepts an int32 pointer and returns its value, or 0 if the pointer is nil.
func DerefInt32(i *int32) int32 {
	if i != nil {
		return *i
	}
	return 0
}
