package domain

// PlaybackInput is a media duration and the speed it is played at.
type PlaybackInput struct {
	Hours   int     `json:"hours"`
	Minutes int     `json:"minutes"`
	Seconds int     `json:"seconds"`
	Speed   float64 `json:"speed"`
}

// PlaybackResult is the adjusted duration. TimeSavedSeconds is negative when
// playing slower than 1x.
type PlaybackResult struct {
	Hours              int     `json:"hours"`
	Minutes            int     `json:"minutes"`
	Seconds            int     `json:"seconds"`
	TimeSavedSeconds   float64 `json:"time_saved_seconds"`
	TimeSavedFormatted string  `json:"time_saved_formatted"`
}

// PlaybackExample is a reference row shown alongside the calculator.
type PlaybackExample struct {
	Time           string  `json:"time"`
	Speed          float64 `json:"speed"`
	CalculatedTime string  `json:"calculated_time"`
}
