package nhl_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/pucktally/internal/adapters/fetch"
	"github.com/okian/pucktally/internal/adapters/nhl"
	"github.com/okian/pucktally/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

const rosterPayload = `{
  "forwards": [
    {"firstName": {"default": "Nathan"}, "lastName": {"default": "MacKinnon"}},
    {"firstName": {"default": "Gabriel"}, "lastName": {"default": "Landeskog"}}
  ],
  "defensemen": [
    {"firstName": {"default": "Cale"}, "lastName": {"default": "Makar"}},
    {"firstName": {"default": ""}, "lastName": {"default": "Unknown"}}
  ],
  "goalies": [
    {"firstName": {"default": "Mackenzie"}, "lastName": {"default": "Blackwood"}}
  ]
}`

func newClient(srvURL string) *nhl.Client {
	return nhl.New(fetch.New("nhl", fetch.WithMaxRetries(1)), srvURL)
}

func TestClientRoster(t *testing.T) {
	convey.Convey("Given a roster client", t, func() {
		ctx := context.Background()

		convey.Convey("When fetching a well-formed roster", func() {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(rosterPayload))
			}))
			defer srv.Close()

			entries, err := newClient(srv.URL).Roster(ctx, "COL")

			convey.Convey("Then it should request the team endpoint", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(gotPath, convey.ShouldEqual, "/v1/roster/COL/current")
			})

			convey.Convey("Then it should collect all position groups in order", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(entries, convey.ShouldHaveLength, 4)
				convey.So(entries[0].Name, convey.ShouldEqual, "Nathan MacKinnon")
				convey.So(entries[1].Name, convey.ShouldEqual, "Gabriel Landeskog")
				convey.So(entries[2].Name, convey.ShouldEqual, "Cale Makar")
				convey.So(entries[3].Name, convey.ShouldEqual, "Mackenzie Blackwood")
			})

			convey.Convey("Then every entry should carry the team code", func() {
				convey.So(err, convey.ShouldBeNil)
				for _, e := range entries {
					convey.So(e.TeamCode, convey.ShouldEqual, "COL")
				}
			})
		})

		convey.Convey("When the payload is empty", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"forwards": [], "defensemen": [], "goalies": []}`))
			}))
			defer srv.Close()

			entries, err := newClient(srv.URL).Roster(ctx, "SEA")

			convey.Convey("Then it should return no entries and no error", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(entries, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When the payload is not JSON", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>gateway error</html>"))
			}))
			defer srv.Close()

			entries, err := newClient(srv.URL).Roster(ctx, "COL")

			convey.Convey("Then it should return a decode error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, nhl.ErrDecodeFailed)
				convey.So(entries, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the fetch fails", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer srv.Close()

			entries, err := newClient(srv.URL).Roster(ctx, "XXX")

			convey.Convey("Then it should wrap the fetch error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, fetch.ErrFetchFailed), convey.ShouldBeTrue)
				convey.So(entries, convey.ShouldBeNil)
			})
		})
	})
}
