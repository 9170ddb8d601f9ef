package club

import "time"

// Settings carries the club-wide defaults the UI prefills forms with.
type Settings struct {
	ClubName             string `json:"clubName"`
	DefaultMembershipFee int64  `json:"defaultMembershipFee"`
	DefaultAnnualFee     int64  `json:"defaultAnnualFee"`
	CurrentYear          int    `json:"currentYear"`
}

func DefaultSettings() Settings {
	return Settings{
		ClubName:             "Passion Hills Table Tennis Club",
		DefaultMembershipFee: 3000,
		DefaultAnnualFee:     500,
		CurrentYear:          time.Now().Year(),
	}
}

func (e *Engine) Settings() Settings {
	return e.settings
}

func (e *Engine) UpdateSettings(in SettingsInput) (Settings, error) {
	if err := validateInput(in); err != nil {
		return Settings{}, err
	}

	e.settings = Settings{
		ClubName:             in.ClubName,
		DefaultMembershipFee: in.DefaultMembershipFee,
		DefaultAnnualFee:     in.DefaultAnnualFee,
		CurrentYear:          in.CurrentYear,
	}
	e.record("Settings Updated", "Updated club settings")

	return e.settings, nil
}
