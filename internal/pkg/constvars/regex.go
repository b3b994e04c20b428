package constvars

const (
	RegexEmail = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	// RegexClock matches a 24h wall clock such as 09:00 or 23:59.
	RegexClock = `^([01]\d|2[0-3]):[0-5]\d$`
)
