package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nasaimg/nasaimg/filesystem"
	"github.com/nasaimg/nasaimg/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSearchQueryFrom(t *testing.T) {
	Convey("Given parsed search flags", t, func() {
		flags := searchCmd.Flags()
		So(flags.Parse([]string{"--center", "JPL", "--year-start", "1986"}), ShouldBeNil)

		q := searchQueryFrom(searchCmd, []string{"Uranus", " rings "})

		Convey("Text and changed flags become present filters", func() {
			So(q.Q.MustGet(), ShouldEqual, "Uranus  rings")
			So(q.Center.MustGet(), ShouldEqual, "JPL")
			So(q.YearStart.MustGet(), ShouldEqual, "1986")
		})

		Convey("Untouched flags stay absent", func() {
			So(q.Title.IsAbsent(), ShouldBeTrue)
			So(q.MediaType.IsAbsent(), ShouldBeTrue)
		})

		Convey("queryParams lists the present filters", func() {
			So(queryParams(q), ShouldResemble, map[string]string{
				"q":          "Uranus  rings",
				"center":     "JPL",
				"year_start": "1986",
			})
		})
	})

	Convey("Given no text", t, func() {
		So(searchQueryFrom(albumCmd, nil).IsEmpty(), ShouldBeTrue)
	})
}

func TestClosestKey(t *testing.T) {
	Convey("closestKey suggests the nearest registered key", t, func() {
		So(closestKey("api.page_dealy"), ShouldEqual, key.APIPageDelay)
		So(closestKey("logs.wirte"), ShouldEqual, key.LogsWrite)
	})
}

func TestAlbumCommand(t *testing.T) {
	Convey("Given a fake API serving one album page", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"collection": map[string]any{
					"metadata": map[string]any{"total_hits": 1},
					"items": []map[string]any{{
						"href": "https://x/collection.json",
						"data": []map[string]any{{"nasa_id": "PIA00407", "album": []string{"Mars"}}},
					}},
				},
			})
		}))
		Reset(server.Close)

		viper.Set(key.APIBaseURL, server.URL)
		viper.Set(key.APIPageDelay, 0)
		viper.Set(key.CliProgress, false)

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		albumCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"album", "Mars", "--json"})

		Convey("The JSON envelope holds the items without the album field", func() {
			So(rootCmd.Execute(), ShouldBeNil)

			var env struct {
				Operation string           `json:"operation"`
				Count     int              `json:"count"`
				Result    []map[string]any `json:"result"`
			}
			So(json.Unmarshal(out.Bytes(), &env), ShouldBeNil)
			So(env.Operation, ShouldEqual, "album")
			So(env.Count, ShouldEqual, 1)
			So(env.Result[0], ShouldNotContainKey, "album")
			So(env.Result[0]["href"], ShouldEqual, "https://x/collection.json")
		})
	})
}

func TestWriteFile(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		var target io.Writer
		render := func(fail error) func(io.Writer) error {
			return func(w io.Writer) error {
				target = w
				_, _ = io.WriteString(w, "partial")
				return fail
			}
		}

		Convey("A successful render is written and closed", func() {
			So(writeFile("out.txt", render(nil)), ShouldBeNil)
			So(lo.Must(filesystem.API().ReadFile("out.txt")), ShouldResemble, []byte("partial"))

			_, err := io.WriteString(target, "more")
			So(err, ShouldNotBeNil)
		})

		Convey("A failed render still closes the file and reports the error", func() {
			boom := errors.New("boom")
			So(writeFile("out.txt", render(boom)), ShouldEqual, boom)
			So(lo.Must(filesystem.API().ReadFile("out.txt")), ShouldResemble, []byte("partial"))

			_, err := io.WriteString(target, "more")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPageDelayFlag(t *testing.T) {
	Convey("The page delay flag defaults to one second", t, func() {
		So(rootCmd.PersistentFlags().Lookup("page-delay").DefValue, ShouldEqual, "1s")
	})
}
