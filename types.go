package main

// User is one entry of the user store. The password field holds a bcrypt
// hash; stores migrated from older versions may still carry plain text,
// which Authenticate accepts for backward compatibility.
type User struct {
	Password   string  `yaml:"password"`
	DailyHours float64 `yaml:"daily_hours"`
}

// DayRecord is one row of a punch sheet. Punch times are wall-clock
// "HH:MM" strings, the date is "dd/mm/yyyy". TotalHours and Balance are
// only meaningful once the day is closed (both punches recorded).
type DayRecord struct {
	Date          string
	Weekday       string
	Month         string
	PunchIn       string
	PunchOut      string
	TotalHours    float64
	ExpectedHours float64
	Balance       float64
}

// Closed reports whether both punches of the day have been recorded.
func (r DayRecord) Closed() bool {
	return r.PunchIn != "" && r.PunchOut != ""
}

// Sheet is the in-memory copy of one user's punch history, ordered by
// insertion (append-only for new days).
type Sheet struct {
	User    string
	Path    string
	Records []DayRecord
}

// PunchResult is what a successful punch reports back to the front end.
type PunchResult struct {
	Path   string
	Record DayRecord
}

// Summary aggregates a whole sheet for the close operation.
type Summary struct {
	Path       string
	TotalHours float64
	Balance    float64
}
