package models

import "time"

const (
	wireDateLayout     = "2006-01-02"
	wireTimeLayout     = "15:04"
	wireDateTimeLayout = "2006-01-02 15:04"
)

// SessionView is the wire shape of a session: the start instant split into
// separate date and time fields, both rendered in UTC.
type SessionView struct {
	ID          int64  `json:"id"`
	StartDate   string `json:"startDate"`
	StartTime   string `json:"startTime"`
	Description string `json:"description"`
}

func NewSessionView(s Session) SessionView {
	start := s.StartAt.UTC()
	return SessionView{
		ID:          s.ID,
		StartDate:   start.Format(wireDateLayout),
		StartTime:   start.Format(wireTimeLayout),
		Description: s.Description,
	}
}

// AttemptView surfaces the storage-internal identifier as an opaque string.
type AttemptView struct {
	ID        string `json:"id"`
	SessionID int64  `json:"sessionId"`
	UserName  string `json:"userName"`
	Rate      int    `json:"rate"`
	DateTime  string `json:"dateTime"`
}

func NewAttemptView(a Attempt) AttemptView {
	return AttemptView{
		ID:        a.ObjectID.Hex(),
		SessionID: a.SessionID,
		UserName:  a.UserName,
		Rate:      a.Rate,
		DateTime:  a.CreatedAt.UTC().Format(wireDateTimeLayout),
	}
}

// ParseStartAt combines the split date and time fields back into a UTC
// instant. Both fields are required.
func ParseStartAt(date, clock string) (time.Time, error) {
	return time.ParseInLocation(wireDateTimeLayout, date+" "+clock, time.UTC)
}
