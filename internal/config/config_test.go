package config_test

import (
	"testing"

	"github.com/okian/pucktally/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.OutputFile, convey.ShouldEqual, "olympics_nhl_rankings.html")
			convey.So(cfg.HTTPTimeoutSeconds, convey.ShouldEqual, 45)
			convey.So(cfg.MaxRetries, convey.ShouldEqual, 3)
			convey.So(cfg.TopContributors, convey.ShouldEqual, 3)
			convey.So(cfg.StatsBaseURL, convey.ShouldNotBeEmpty)
			convey.So(cfg.RosterBaseURL, convey.ShouldNotBeEmpty)
		})

		convey.Convey("Then it should carry all 32 team codes", func() {
			convey.So(cfg.TeamCodes, convey.ShouldHaveLength, 32)
			for _, code := range cfg.TeamCodes {
				convey.So(code, convey.ShouldHaveLength, 3)
			}
		})

		convey.Convey("Then it should carry the 12 tournament countries", func() {
			convey.So(cfg.Countries, convey.ShouldHaveLength, 12)
			convey.So(cfg.Countries, convey.ShouldContain, "canada")
			convey.So(cfg.Countries, convey.ShouldContain, "czech-republic")
		})
	})
}
