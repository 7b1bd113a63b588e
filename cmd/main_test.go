package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/pucktally/internal/app"
	"github.com/okian/pucktally/internal/config"
	"github.com/okian/pucktally/internal/domain/model"
	"github.com/okian/pucktally/pkg/logger"
	"github.com/okian/pucktally/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestMainComponents(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("PUCKTALLY_OUTPUT_FILE", "out.html")
			_ = os.Setenv("PUCKTALLY_MAX_RETRIES", "2")
			defer func() {
				_ = os.Unsetenv("PUCKTALLY_OUTPUT_FILE")
				_ = os.Unsetenv("PUCKTALLY_MAX_RETRIES")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.OutputFile, convey.ShouldEqual, "out.html")
				convey.So(cfg.MaxRetries, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When testing pipeline creation", func() {
			convey.Convey("Then a bare pipeline should be creatable", func() {
				p := app.New()
				convey.So(p, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestWriteHTMLFile(t *testing.T) {
	convey.Convey("Given a report", t, func() {
		rep := model.Report{
			RunID:       "test-run",
			GeneratedAt: time.Now(),
			Teams: []model.TeamAggregate{
				{
					TeamCode:     "COL",
					TotalPoints:  10,
					TotalGoals:   4,
					TotalAssists: 6,
					Contributors: []model.Contributor{
						{Name: "Nathan MacKinnon", Goals: 4, Assists: 6, Points: 10},
					},
				},
			},
			OlympicPlayers: 1,
		}

		convey.Convey("When writing the HTML file", func() {
			path := filepath.Join(t.TempDir(), "rankings.html")
			err := writeHTMLFile(path, rep)

			convey.Convey("Then the file should exist with page content", func() {
				convey.So(err, convey.ShouldBeNil)
				data, readErr := os.ReadFile(path)
				convey.So(readErr, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, "<!DOCTYPE html>")
				convey.So(string(data), convey.ShouldContainSubstring, "COL")
			})
		})

		convey.Convey("When the target directory does not exist", func() {
			err := writeHTMLFile("/nonexistent-dir/rankings.html", rep)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
