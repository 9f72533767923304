package mirror

import "fmt"

// Status is the last known health of a mirror.
type Status int

const (
	// Unknown is the state of a mirror that has never been probed.
	Unknown Status = iota
	Online
	Offline
)

var statusNames = map[Status]string{
	Unknown: "unknown",
	Online:  "online",
	Offline: "offline",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus converts the persisted text form back into a Status.
// An empty string is treated as Unknown so that seed-only entries load cleanly.
func ParseStatus(text string) (Status, error) {
	if text == "" {
		return Unknown, nil
	}
	for status, name := range statusNames {
		if name == text {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("unknown status %q", text)
}

func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
