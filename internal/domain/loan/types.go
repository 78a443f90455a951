package loan

// Status values are persisted as-is, so they never change spelling.
type Status string

const (
	StatusBorrowed Status = "BORROWED"
	StatusReturned Status = "RETURNED"
	StatusOverdue  Status = "OVERDUE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBorrowed, StatusReturned, StatusOverdue:
		return true
	default:
		return false
	}
}

// IsOutstanding reports whether the loan still occupies the user's loan slot.
// Overdue loans are outstanding: they were never returned.
func (s Status) IsOutstanding() bool {
	return s == StatusBorrowed || s == StatusOverdue
}
