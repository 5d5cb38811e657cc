package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = 3000
	cfg.Server.Mode = "release"
	cfg.Providers.DeepSeek.APIKey = "sk-deepseek"
	cfg.Providers.Groq.APIKey = "gsk-groq"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	Convey("Config.Validate gates startup", t, func() {
		Convey("a complete config passes", func() {
			So(validConfig().Validate(), ShouldBeNil)
		})

		Convey("an invalid port fails", func() {
			cfg := validConfig()
			cfg.Server.Port = 0
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("an unknown mode fails", func() {
			cfg := validConfig()
			cfg.Server.Mode = "staging"
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("a missing DeepSeek key refuses startup", func() {
			cfg := validConfig()
			cfg.Providers.DeepSeek.APIKey = ""
			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "DEEPSEEK_API_KEY")
		})

		Convey("a missing Groq key refuses startup", func() {
			cfg := validConfig()
			cfg.Providers.Groq.APIKey = ""
			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "GROQ_API_KEY")
		})
	})
}
