package simple

import "strings"

// Shout upcases and punctuates a greeting.
func Shout(name string) string {
	if name == "" {
		return "HEY!"
	}
	return strings.ToUpper(name) + "!"
}
