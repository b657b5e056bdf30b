package rapidapi

import (
	"bytes"
	"encoding/json"
)

// Event is one raw game record from the provider. The payload shape varies
// by endpoint version, so every field of interest is read through an ordered
// list of extractors rather than a single path: try field A, else B, else C.
type Event struct {
	GameObj *struct {
		ID    flexString `json:"id"`
		AltID flexString `json:"game_id"`
		Week  flexString `json:"week"`
		Date  *eventDate `json:"date"`
	} `json:"game"`
	RawID   flexString `json:"id"`
	RawWeek flexString `json:"week"`
	Fixture *struct {
		ID        flexString `json:"id"`
		Week      flexString `json:"week"`
		Timestamp int64      `json:"timestamp"`
	} `json:"fixture"`
	Round   flexString `json:"round"`
	Date    *eventDate `json:"date"`
	TimeObj *struct {
		StartingAtTimestamp int64 `json:"starting_at_timestamp"`
	} `json:"time"`
	Teams *struct {
		Home *participant `json:"home"`
		Away *participant `json:"away"`
	} `json:"teams"`
	HomeObj      *participant  `json:"home"`
	AwayObj      *participant  `json:"away"`
	Participants []participant `json:"participants"`
	Scores       *scorePair    `json:"scores"`
	Score        *scorePair    `json:"score"`
	Goals        *goalPair     `json:"goals"`
	RawStatus    statusValue   `json:"status"`
}

type eventDate struct {
	Timestamp int64 `json:"timestamp"`
}

type participant struct {
	Name string `json:"name"`
}

type scorePair struct {
	Home scoreValue `json:"home"`
	Away scoreValue `json:"away"`
}

type goalPair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

var gameIDExtractors = []func(e *Event) (string, bool){
	func(e *Event) (string, bool) {
		if e.GameObj == nil {
			return "", false
		}
		return string(e.GameObj.ID), e.GameObj.ID != ""
	},
	func(e *Event) (string, bool) { return string(e.RawID), e.RawID != "" },
	func(e *Event) (string, bool) {
		if e.Fixture == nil {
			return "", false
		}
		return string(e.Fixture.ID), e.Fixture.ID != ""
	},
	func(e *Event) (string, bool) {
		if e.GameObj == nil {
			return "", false
		}
		return string(e.GameObj.AltID), e.GameObj.AltID != ""
	},
}

// GameID returns the provider's id for the event, or "" if no shape carried
// one.
func (e *Event) GameID() string {
	return firstString(e, gameIDExtractors)
}

var weekExtractors = []func(e *Event) (string, bool){
	func(e *Event) (string, bool) {
		if e.GameObj == nil {
			return "", false
		}
		return string(e.GameObj.Week), e.GameObj.Week != ""
	},
	func(e *Event) (string, bool) { return string(e.RawWeek), e.RawWeek != "" },
	func(e *Event) (string, bool) {
		if e.Fixture == nil {
			return "", false
		}
		return string(e.Fixture.Week), e.Fixture.Week != ""
	},
	func(e *Event) (string, bool) { return string(e.Round), e.Round != "" },
}

// WeekToken returns the raw week token, e.g. "Week 2" or "2". Callers
// normalize it to its leading integer.
func (e *Event) WeekToken() string {
	return firstString(e, weekExtractors)
}

var kickoffExtractors = []func(e *Event) (int64, bool){
	func(e *Event) (int64, bool) {
		if e.Date == nil {
			return 0, false
		}
		return e.Date.Timestamp, e.Date.Timestamp != 0
	},
	func(e *Event) (int64, bool) {
		if e.GameObj == nil || e.GameObj.Date == nil {
			return 0, false
		}
		return e.GameObj.Date.Timestamp, e.GameObj.Date.Timestamp != 0
	},
	func(e *Event) (int64, bool) {
		if e.Fixture == nil {
			return 0, false
		}
		return e.Fixture.Timestamp, e.Fixture.Timestamp != 0
	},
	func(e *Event) (int64, bool) {
		if e.TimeObj == nil {
			return 0, false
		}
		return e.TimeObj.StartingAtTimestamp, e.TimeObj.StartingAtTimestamp != 0
	},
}

// Kickoff returns the kickoff time as a unix epoch, or 0 when unknown.
func (e *Event) Kickoff() int64 {
	for _, f := range kickoffExtractors {
		if v, ok := f(e); ok {
			return v
		}
	}
	return 0
}

var homeNameExtractors = []func(e *Event) (string, bool){
	func(e *Event) (string, bool) {
		if e.Teams == nil || e.Teams.Home == nil {
			return "", false
		}
		return e.Teams.Home.Name, e.Teams.Home.Name != ""
	},
	func(e *Event) (string, bool) {
		if e.HomeObj == nil {
			return "", false
		}
		return e.HomeObj.Name, e.HomeObj.Name != ""
	},
	func(e *Event) (string, bool) {
		if len(e.Participants) < 1 {
			return "", false
		}
		return e.Participants[0].Name, e.Participants[0].Name != ""
	},
}

func (e *Event) HomeName() string {
	return firstString(e, homeNameExtractors)
}

var awayNameExtractors = []func(e *Event) (string, bool){
	func(e *Event) (string, bool) {
		if e.Teams == nil || e.Teams.Away == nil {
			return "", false
		}
		return e.Teams.Away.Name, e.Teams.Away.Name != ""
	},
	func(e *Event) (string, bool) {
		if e.AwayObj == nil {
			return "", false
		}
		return e.AwayObj.Name, e.AwayObj.Name != ""
	},
	func(e *Event) (string, bool) {
		if len(e.Participants) < 2 {
			return "", false
		}
		return e.Participants[1].Name, e.Participants[1].Name != ""
	},
}

func (e *Event) AwayName() string {
	return firstString(e, awayNameExtractors)
}

// HomeScore returns the home score, or nil when the event has none.
func (e *Event) HomeScore() *int {
	if e.Scores != nil && e.Scores.Home.Total != nil {
		return e.Scores.Home.Total
	}
	if e.Score != nil && e.Score.Home.Total != nil {
		return e.Score.Home.Total
	}
	if e.Goals != nil && e.Goals.Home != nil {
		return e.Goals.Home
	}
	return nil
}

func (e *Event) AwayScore() *int {
	if e.Scores != nil && e.Scores.Away.Total != nil {
		return e.Scores.Away.Total
	}
	if e.Score != nil && e.Score.Away.Total != nil {
		return e.Score.Away.Total
	}
	if e.Goals != nil && e.Goals.Away != nil {
		return e.Goals.Away
	}
	return nil
}

// StatusToken returns the raw status text, e.g. "FT" or "scheduled".
func (e *Event) StatusToken() string {
	return e.RawStatus.Token
}

func firstString(e *Event, fns []func(*Event) (string, bool)) string {
	for _, f := range fns {
		if v, ok := f(e); ok {
			return v
		}
	}
	return ""
}

// flexString accepts JSON strings and numbers, since some payload versions
// send week and id values as numbers.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// scoreValue accepts a bare number or an object with a total field.
type scoreValue struct {
	Total *int
}

func (s *scoreValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '{' {
		var obj struct {
			Total *int `json:"total"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		s.Total = obj.Total
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	s.Total = &n
	return nil
}

// statusValue accepts a bare string or an object with short/state fields.
type statusValue struct {
	Token string
}

func (s *statusValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &s.Token)
	}
	var obj struct {
		Short string `json:"short"`
		State string `json:"state"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	s.Token = obj.Short
	if s.Token == "" {
		s.Token = obj.State
	}
	return nil
}
