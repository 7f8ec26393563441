package locomotion

import "fmt"

// unreachable builds the panic value for a tag that no switch case handles.
func unreachable(kind string, value any) string {
	return fmt.Sprintf("locomotion: unknown %s %v", kind, value)
}
