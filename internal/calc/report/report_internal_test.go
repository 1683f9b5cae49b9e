package report

import (
	"bytes"
	"testing"
	"time"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/dashboard"

	"github.com/phpdave11/gofpdf"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEncoded(t *testing.T) {
	Convey("Given free text outside ASCII", t, func() {
		in := Input{
			Project: "Fall Ångström",
			Author:  "Dr. Müller",
			Title:   "Kraftbericht",
			Notes:   "Kontrolle in 3 Wochen – Bögen prüfen",
		}
		tr := gofpdf.New("P", "mm", "A4", "").UnicodeTranslatorFromDescriptor("")

		Convey("Every text field is mapped to cp1252 bytes", func() {
			out := in.encoded(tr)
			So(out.Project, ShouldEqual, "Fall \xc5ngstr\xf6m")
			So(out.Author, ShouldEqual, "Dr. M\xfcller")
			So(out.Title, ShouldEqual, "Kraftbericht")
			So(out.Notes, ShouldEqual, "Kontrolle in 3 Wochen \x96 B\xf6gen pr\xfcfen")
		})

		Convey("The setup is left untouched", func() {
			in.Setup.Material = "NiTi"
			So(in.encoded(tr).Setup, ShouldResemble, in.Setup)
		})

		Convey("Render accepts it", func() {
			in.Setup = dashboard.Input{
				SlotSize:      "0.022",
				BracketSystem: "Conventional",
				Material:      "NiTi",
				CrossSection:  "Round",
				Size:          "0.016",
				DeflectionMM:  1.5,
			}
			v, err := dashboard.Calculate(curve.DefaultCalibration(), in.Setup)
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(Render(&buf, in, v, time.Now()), ShouldBeNil)
			So(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), ShouldBeTrue)
		})
	})
}
