package names_test

import (
	"testing"

	"github.com/okian/pucktally/internal/domain/model"
	"github.com/okian/pucktally/internal/domain/names"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given the name normalizer", t, func() {
		Convey("When normalizing a plain name", func() {
			So(names.Normalize("Nathan MacKinnon"), ShouldEqual, "nathan mackinnon")
		})

		Convey("When the name carries diacritics", func() {
			So(names.Normalize("Martin Nečas"), ShouldEqual, "martin necas")
			So(names.Normalize("Aleš Hémský"), ShouldEqual, "ales hemsky")
			So(names.Normalize("Tomáš Tatar"), ShouldEqual, "tomas tatar")
		})

		Convey("When the name uses the 'Surname, Given' form", func() {
			So(names.Normalize("MacKinnon, Nathan"), ShouldEqual, names.Normalize("Nathan MacKinnon"))
		})

		Convey("When the name carries a generation suffix", func() {
			So(names.Normalize("Mikael Granlund Jr."), ShouldEqual, "mikael granlund")
			So(names.Normalize("William Smith III"), ShouldEqual, "william smith")
			So(names.Normalize("Tage Thompson Sr"), ShouldEqual, "tage thompson")
		})

		Convey("When the whole name is a suffix token", func() {
			// A single remaining token is never stripped.
			So(names.Normalize("Jr"), ShouldEqual, "jr")
		})

		Convey("When the name carries punctuation", func() {
			Convey("Then hyphens join rather than split", func() {
				So(names.Normalize("Oliver Ekman-Larsson"), ShouldEqual, "oliver ekmanlarsson")
				So(names.Normalize("Oliver EkmanLarsson"), ShouldEqual, "oliver ekmanlarsson")
			})

			Convey("Then apostrophes are removed", func() {
				So(names.Normalize("K'Andre Miller"), ShouldEqual, "kandre miller")
				So(names.Normalize("Logan O’Connor"), ShouldEqual, "logan oconnor")
			})
		})

		Convey("When whitespace is irregular", func() {
			So(names.Normalize("  Cale   Makar "), ShouldEqual, "cale makar")
			So(names.Normalize("Cale\tMakar"), ShouldEqual, "cale makar")
		})

		Convey("When normalizing twice", func() {
			once := names.Normalize("Gabriel Landeskog Jr.")
			So(names.Normalize(once), ShouldEqual, once)
		})
	})
}

func TestIndex(t *testing.T) {
	Convey("Given roster entries", t, func() {
		entries := []model.RosterEntry{
			{TeamCode: "COL", Name: "Nathan MacKinnon"},
			{TeamCode: "COL", Name: "Cale Makar"},
			{TeamCode: "NYR", Name: "K'Andre Miller"},
		}

		Convey("When building the index", func() {
			ix := names.NewIndex(entries)

			Convey("Then all distinct names are indexed", func() {
				So(ix.Len(), ShouldEqual, 3)
				So(ix.Collisions(), ShouldBeEmpty)
			})

			Convey("Then lookups go through the same normalization", func() {
				code, ok := ix.Match("MacKinnon, Nathan")
				So(ok, ShouldBeTrue)
				So(code, ShouldEqual, "COL")

				code, ok = ix.Match("KANDRE MILLER")
				So(ok, ShouldBeTrue)
				So(code, ShouldEqual, "NYR")
			})

			Convey("Then unknown names stay unmatched", func() {
				_, ok := ix.Match("Roman Červenka")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When two entries normalize to the same key", func() {
			colliding := append(entries, model.RosterEntry{TeamCode: "SJS", Name: "Nathan Mackinnon"})
			ix := names.NewIndex(colliding)

			Convey("Then the first-seen entry wins", func() {
				code, ok := ix.Match("Nathan MacKinnon")
				So(ok, ShouldBeTrue)
				So(code, ShouldEqual, "COL")
			})

			Convey("Then the dropped entry is recorded", func() {
				So(ix.Collisions(), ShouldHaveLength, 1)
				c := ix.Collisions()[0]
				So(c.Key, ShouldEqual, "nathan mackinnon")
				So(c.Kept.TeamCode, ShouldEqual, "COL")
				So(c.Dropped.TeamCode, ShouldEqual, "SJS")
			})
		})

		Convey("When an entry normalizes to the empty key", func() {
			ix := names.NewIndex([]model.RosterEntry{{TeamCode: "BOS", Name: "  "}})

			Convey("Then it is skipped", func() {
				So(ix.Len(), ShouldEqual, 0)
			})
		})
	})
}
