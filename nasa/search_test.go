package nasa

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSearch(t *testing.T) {
	Convey("Given a single short page", t, func() {
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, hitsPage(3, 3, 0, ""))
		})
		Reset(api.Close)

		items, err := api.client().Search(context.Background(), SearchQuery{Q: mo.Some("Uranus")})

		Convey("It returns every item and stops after one request", func() {
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 3)
			So(api.calls(), ShouldHaveLength, 1)
		})

		Convey("Each item carries the source href", func() {
			for i, item := range items {
				So(item.Href(), ShouldEqual, "https://images-assets.example/ID0000"+strconv.Itoa(i)+"/collection.json")
				So(item.NasaID(), ShouldEqual, "ID0000"+strconv.Itoa(i))
			}
		})

		Convey("The request carries page, page_size and only the present filters", func() {
			q := api.calls()[0].Query()
			So(api.calls()[0].Path, ShouldEqual, "/search")
			So(q.Get("q"), ShouldEqual, "Uranus")
			So(q.Get("page"), ShouldEqual, "1")
			So(q.Get("page_size"), ShouldEqual, "100")
			So(q.Has("center"), ShouldBeFalse)
			So(q.Has("year_start"), ShouldBeFalse)
			So(len(q), ShouldEqual, 3)
		})
	})

	Convey("Given three pages where the last is short", t, func() {
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			n := 100
			if page == 3 {
				n = 20
			}
			writeJSON(w, http.StatusOK, hitsPage(220, n, (page-1)*100, ""))
		})
		Reset(api.Close)

		var reports []Progress
		items, err := api.client(WithProgress(func(p Progress) {
			reports = append(reports, p)
		})).Search(context.Background(), SearchQuery{Q: mo.Some("mars"), MediaType: mo.Some("image")})

		Convey("Items are concatenated in page order", func() {
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 220)
			So(items[0].NasaID(), ShouldEqual, "ID00000")
			So(items[100].NasaID(), ShouldEqual, "ID00100")
			So(items[219].NasaID(), ShouldEqual, "ID00219")
		})

		Convey("Pages are requested in order and paging halts on the short page", func() {
			calls := api.calls()
			So(calls, ShouldHaveLength, 3)
			for i, u := range calls {
				So(u.Query().Get("page"), ShouldEqual, strconv.Itoa(i+1))
				So(u.Query().Get("media_type"), ShouldEqual, "image")
			}
		})

		Convey("Progress is reported once per page", func() {
			So(reports, ShouldHaveLength, 3)
			So(reports[0].Page, ShouldEqual, 1)
			So(reports[0].Retrieved, ShouldEqual, 100)
			So(reports[2].Retrieved, ShouldEqual, 220)
			So(reports[2].Fraction(), ShouldEqual, 1.0)
			So(reports[2].Operation, ShouldEqual, "search")
			So(len(items), ShouldBeLessThanOrEqualTo, reports[0].TotalHits)
		})
	})

	Convey("Given a server that never returns a short page", t, func() {
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, hitsPage(1_000_000, 100, 0, ""))
		})
		Reset(api.Close)

		items, err := api.client().Search(context.Background(), SearchQuery{Q: mo.Some("earth")})

		Convey("Paging stops after 100 pages", func() {
			So(err, ShouldBeNil)
			So(api.calls(), ShouldHaveLength, 100)
			So(items, ShouldHaveLength, 100*100)
			So(api.calls()[99].Query().Get("page"), ShouldEqual, "100")
		})
	})

	Convey("Given the API rejects the query", t, func() {
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"reason": "Invalid page_size or page"})
		})
		Reset(api.Close)

		items, err := api.client().Search(context.Background(), SearchQuery{})

		Convey("The error carries the API reason and no items are returned", func() {
			So(items, ShouldBeNil)
			So(err, ShouldHaveSameTypeAs, &APIError{})
			So(Reason(err), ShouldEqual, "Invalid page_size or page")
			So(err.(*APIError).StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})

	Convey("Given a failure on the second page", t, func() {
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") == "2" {
				writeJSON(w, http.StatusTooManyRequests, map[string]any{"reason": "Slow down"})
				return
			}
			writeJSON(w, http.StatusOK, hitsPage(150, 100, 0, ""))
		})
		Reset(api.Close)

		items, err := api.client().Search(context.Background(), SearchQuery{Q: mo.Some("moon")})

		Convey("Items gathered from the first page are discarded", func() {
			So(items, ShouldBeNil)
			So(Reason(err), ShouldEqual, "Slow down")
		})
	})

	Convey("Given an item with more than one data record", t, func() {
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"collection": map[string]any{
					"metadata": map[string]any{"total_hits": 1},
					"items": []map[string]any{{
						"href": "https://x/collection.json",
						"data": []map[string]any{{"nasa_id": "A"}, {"nasa_id": "B"}},
					}},
				},
			})
		})
		Reset(api.Close)

		items, err := api.client().Search(context.Background(), SearchQuery{Q: mo.Some("x")})

		Convey("The call fails without an APIError", func() {
			So(items, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(Reason(err), ShouldBeEmpty)
		})
	})

	Convey("Given a page delay and a cancelled context", t, func() {
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, hitsPage(1, 1, 0, ""))
		})
		Reset(api.Close)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		items, err := api.client(WithPageDelay(time.Hour)).Search(ctx, SearchQuery{Q: mo.Some("x")})

		Convey("No request is sent", func() {
			So(items, ShouldBeNil)
			So(err, ShouldEqual, context.Canceled)
			So(api.calls(), ShouldBeEmpty)
		})
	})
}

func TestPageDelay(t *testing.T) {
	Convey("A new client waits one second between pages", t, func() {
		So(New().pageDelay, ShouldEqual, time.Second)
	})

	Convey("Given three pages and a short page delay", t, func() {
		const delay = 20 * time.Millisecond

		var (
			mu    sync.Mutex
			stamp []time.Time
		)
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			stamp = append(stamp, time.Now())
			mu.Unlock()

			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			n := 100
			if page == 3 {
				n = 1
			}
			writeJSON(w, http.StatusOK, hitsPage(201, n, (page-1)*100, ""))
		})
		Reset(api.Close)

		start := time.Now()
		items, err := api.client(WithPageDelay(delay)).Search(context.Background(), SearchQuery{Q: mo.Some("x")})
		elapsed := time.Since(start)

		Convey("The delay is slept before every page", func() {
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 201)
			So(elapsed, ShouldBeGreaterThanOrEqualTo, 3*delay)

			So(stamp, ShouldHaveLength, 3)
			So(stamp[0].Sub(start), ShouldBeGreaterThanOrEqualTo, delay)
			for i := 1; i < len(stamp); i++ {
				So(stamp[i].Sub(stamp[i-1]), ShouldBeGreaterThanOrEqualTo, delay)
			}
		})
	})

	Convey("Given a page delay and a context cancelled mid-wait", t, func() {
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, hitsPage(1, 1, 0, ""))
		})
		Reset(api.Close)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		Reset(cancel)

		items, err := api.client(WithPageDelay(time.Hour)).Search(ctx, SearchQuery{Q: mo.Some("x")})

		Convey("The wait ends with the context error", func() {
			So(items, ShouldBeNil)
			So(err, ShouldEqual, context.DeadlineExceeded)
			So(api.calls(), ShouldBeEmpty)
		})
	})
}

func TestAlbum(t *testing.T) {
	Convey("Given an album spanning two pages", t, func() {
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			n := 50
			if page == 2 {
				n = 7
			}
			writeJSON(w, http.StatusOK, hitsPage(57, n, (page-1)*50, "Apollo 11"))
		})
		Reset(api.Close)

		items, err := api.client().Album(context.Background(), "Apollo 11")

		Convey("Every item is returned without the album field", func() {
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 57)
			for _, item := range items {
				So(item, ShouldNotContainKey, "album")
				So(item.Href(), ShouldNotBeEmpty)
			}
		})

		Convey("Requests use page_size 50 and the escaped album path", func() {
			calls := api.calls()
			So(calls, ShouldHaveLength, 2)
			So(calls[0].Path, ShouldEqual, "/album/Apollo 11")
			So(calls[0].EscapedPath(), ShouldEqual, "/album/Apollo%2011")
			So(calls[0].Query().Get("page_size"), ShouldEqual, "50")
			So(calls[1].Query().Get("page"), ShouldEqual, "2")
		})
	})

	Convey("Given an unknown album", t, func() {
		api := newFakeAPI(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"reason": "Album not found"})
		})
		Reset(api.Close)

		items, err := api.client().Album(context.Background(), "Nope")

		Convey("The API reason is returned", func() {
			So(items, ShouldBeNil)
			So(Reason(err), ShouldEqual, "Album not found")
		})
	})
}

func TestSearchQuery(t *testing.T) {
	Convey("SearchQuery", t, func() {
		Convey("An empty query encodes nothing", func() {
			So(SearchQuery{}.IsEmpty(), ShouldBeTrue)
			So(SearchQuery{}.Values(), ShouldBeEmpty)
		})

		Convey("Every filter maps to its API parameter", func() {
			q := SearchQuery{
				Q:                mo.Some("a"),
				Center:           mo.Some("JPL"),
				Description:      mo.Some("b"),
				Description508:   mo.Some("c"),
				Keywords:         mo.Some("d,e"),
				Location:         mo.Some("f"),
				MediaType:        mo.Some("image,video"),
				NasaID:           mo.Some("PIA01535"),
				Photographer:     mo.Some("g"),
				SecondaryCreator: mo.Some("h"),
				Title:            mo.Some("i"),
				YearStart:        mo.Some("1990"),
				YearEnd:          mo.Some("2000"),
			}
			v := q.Values()
			So(q.IsEmpty(), ShouldBeFalse)
			So(len(v), ShouldEqual, 13)
			So(v.Get("description_508"), ShouldEqual, "c")
			So(v.Get("secondary_creator"), ShouldEqual, "h")
			So(v.Get("year_end"), ShouldEqual, "2000")
		})
	})
}

func TestProgress(t *testing.T) {
	Convey("Progress", t, func() {
		So(Progress{Retrieved: 50, TotalHits: 200}.Fraction(), ShouldEqual, 0.25)
		So(Progress{Retrieved: 0, TotalHits: 0}.Fraction(), ShouldEqual, 1.0)
		So(Progress{Page: 3, Retrieved: 1, TotalHits: 4}.String(), ShouldEqual, "Extracting items @ Page.003...  25.00%")
	})
}
