package entities

// JmxHost addresses a JMX agent
type JmxHost struct {
	Address  string `mapstructure:"host" json:"address"`
	User     string `mapstructure:"user" json:"user,omitempty"`
	Password string `mapstructure:"password" json:"-"`
}

// RestAPIHost addresses a REST API protected by OAuth2
type RestAPIHost struct {
	BaseURL      string `mapstructure:"base_url" json:"base_url"`
	User         string `mapstructure:"user" json:"user"`
	Password     string `mapstructure:"password" json:"-"`
	ClientID     string `mapstructure:"client_id" json:"client_id"`
	ClientSecret string `mapstructure:"client_secret" json:"-"`
	GrantType    string `mapstructure:"grant_type" json:"grant_type"`
}

// NewRestAPIHost returns a host with the default client credentials and
// password grant
func NewRestAPIHost(user, password, baseURL string) RestAPIHost {
	return RestAPIHost{
		BaseURL:      baseURL,
		User:         user,
		Password:     password,
		ClientID:     "client",
		ClientSecret: "secret",
		GrantType:    "password",
	}
}
