package game

import "fmt"

// InsufficientPointsError is returned when a dice roll is attempted
// below the point cost. It is a user-facing condition, not a fault.
type InsufficientPointsError struct {
	Cost    int
	Current int
}

func (e InsufficientPointsError) Error() string {
	return fmt.Sprintf("need %d points for a dice roll (have %d)", e.Cost, e.Current)
}
