package devenv

// MvicVoter mirrors mvic.PersonQuery so state files can be decoded without
// importing the scraper.
type MvicVoter struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	BirthMonth string `json:"birth_month"`
	BirthYear  string `json:"birth_year"`
	Zip        string `json:"zip"`
}

// MvicTestConfig is read from dev/.state/mvic_config.json5 by live tests.
type MvicTestConfig struct {
	// empty means the real portal
	BaseUrl          string    `json:"base_url"`
	Voter            MvicVoter `json:"voter"`
	ExpectRegistered bool      `json:"expect_registered"`
}
